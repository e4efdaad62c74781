package auth

import (
	"net/http"
	"strings"

	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const userIDKey = "fintrack-user-id"

// Middleware rejects requests without a valid bearer token and stores the
// user ID from the token in the context.
//
// The user is not looked up, a token for an unknown user passes.
// OPTIONS requests do not need a token.
func Middleware(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			httputil.AbortWithError(c, http.StatusUnauthorized, ErrTokenMissing)
			return
		}

		id, _, err := issuer.Verify(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("token verification failed")
			httputil.AbortWithError(c, http.StatusUnauthorized, ErrTokenInvalid)
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user. It returns uuid.Nil
// for requests that did not pass Middleware.
func UserID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil
	}

	id, _ := v.(uuid.UUID)
	return id
}
