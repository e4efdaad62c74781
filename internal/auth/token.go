// Package auth issues and verifies API tokens and talks to Google
// for the OAuth login flow.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/fintrack-api/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("access token invalid or expired")
	ErrTokenMissing = errors.New("authorization header with bearer token is required")
)

// Claims are the claims of an API token.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer returns an Issuer for the secret. Tokens expire after ttl.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Sign returns a signed token for the user.
func (i *Issuer) Sign(user models.User) (string, error) {
	now := i.now()
	claims := Claims{
		UserID: user.ID.String(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

// Verify parses the token and returns the ID of the user it was issued for.
func (i *Issuer) Verify(token string) (uuid.UUID, Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return uuid.Nil, Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return id, claims, nil
}
