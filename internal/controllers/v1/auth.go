package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/fintrack-api/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const providerGoogle = "google"

type AuthURLResponse struct {
	URL string `json:"url" example:"https://accounts.google.com/o/oauth2/auth?access_type=offline"` // Google consent page
}

type GoogleLogin struct {
	IDToken string `json:"idToken" binding:"required" example:"eyJhbGciOiJSUzI1NiIsImtpZCI6Ij..."` // ID token issued by Google
}

type User struct {
	ID    uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Email string    `json:"email" example:"jane@example.com"`
	Name  string    `json:"name" example:"Jane Doe"`
	Role  string    `json:"role" example:"user"`
}

type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // API token to send as bearer token
	User  User   `json:"user"`
}

type CallbackResponse struct {
	IDToken string `json:"idToken" example:"eyJhbGciOiJSUzI1NiIsImtpZCI6Ij..."` // ID token issued by Google
	LoginResponse
}

type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/google/url", OptionsGet)
	r.GET("/google/url", co.GetGoogleURL)

	r.OPTIONS("/google", OptionsPost)
	r.POST("/google", co.LoginGoogle)

	r.OPTIONS("/google/callback", OptionsGet)
	r.GET("/google/callback", co.GoogleCallback)

	r.OPTIONS("/logout", OptionsPost)
	r.POST("/logout", Logout)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/auth/google/url [options]
// @Router			/auth/google/callback [options]
func OptionsGet(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/auth/google [options]
// @Router			/auth/logout [options]
func OptionsPost(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Google consent URL
// @Description	Returns the URL of the Google consent page to start the login
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	AuthURLResponse
// @Router			/auth/google/url [get]
func (co Controller) GetGoogleURL(c *gin.Context) {
	c.JSON(http.StatusOK, AuthURLResponse{URL: co.google.AuthCodeURL()})
}

// @Summary		Log in with Google
// @Description	Verifies a Google ID token and returns an API token. Users are created on their first login.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	LoginResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			login	body		GoogleLogin	true	"ID token"
// @Router			/auth/google [post]
func (co Controller) LoginGoogle(c *gin.Context) {
	var data GoogleLogin
	if err := httputil.BindData(c, &data); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	identity, err := co.google.Verify(c.Request.Context(), data.IDToken)
	if err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("google login")
		httputil.NewError(c, http.StatusUnauthorized, auth.ErrIDTokenInvalid)
		return
	}

	user, err := findOrCreateUser(identity, false)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	response, err := co.login(user)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary		Google OAuth callback
// @Description	Exchanges the authorization code, updates the user profile and returns an API token
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	CallbackResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			code	query		string	true	"Authorization code"
// @Router			/auth/google/callback [get]
func (co Controller) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		httputil.NewError(c, http.StatusBadRequest, errCodeMissing)
		return
	}

	idToken, err := co.google.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("google code exchange")
		httputil.NewError(c, http.StatusUnauthorized, auth.ErrNoIDToken)
		return
	}

	identity, err := co.google.Verify(c.Request.Context(), idToken)
	if err != nil {
		httputil.NewError(c, http.StatusUnauthorized, auth.ErrIDTokenInvalid)
		return
	}

	user, err := findOrCreateUser(identity, true)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	response, err := co.login(user)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, CallbackResponse{
		IDToken:       idToken,
		LoginResponse: response,
	})
}

// @Summary		Log out
// @Description	Tokens are not stored on the server, clients discard their token
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Router			/auth/logout [post]
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

func (co Controller) login(user models.User) (LoginResponse, error) {
	token, err := co.issuer.Sign(user)
	if err != nil {
		log.Error().Err(err).Msg("signing token")
		return LoginResponse{}, models.ErrGeneral
	}

	return LoginResponse{
		Token: token,
		User: User{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

// findOrCreateUser returns the user for the identity, creating it if
// it does not exist yet. With update, the profile of an existing user
// is replaced with the one from the identity.
func findOrCreateUser(identity auth.Identity, update bool) (models.User, error) {
	var user models.User
	err := models.DB.Where("auth_provider = ? AND auth_id = ?", providerGoogle, identity.Subject).First(&user).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		user = models.User{
			AuthProvider: providerGoogle,
			AuthID:       identity.Subject,
			Email:        identity.Email,
			Name:         identity.Name,
			AvatarURL:    identity.Picture,
		}

		return user, models.DB.Create(&user).Error
	}

	if err != nil {
		return models.User{}, err
	}

	if update {
		user.Email = identity.Email
		user.Name = identity.Name
		user.AvatarURL = identity.Picture

		if err := models.DB.Save(&user).Error; err != nil {
			return models.User{}, err
		}
	}

	return user, nil
}
