package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

var (
	ErrNoIDToken      = errors.New("failed to obtain idToken from Google")
	ErrIDTokenInvalid = errors.New("invalid Google id token")
)

// Identity is the verified identity of a Google account.
type Identity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Provider is an OAuth identity provider.
type Provider interface {
	// AuthCodeURL returns the consent page URL.
	AuthCodeURL() string

	// Exchange trades an authorization code for an ID token.
	Exchange(ctx context.Context, code string) (string, error)

	// Verify validates an ID token and returns the identity in it.
	Verify(ctx context.Context, idToken string) (Identity, error)
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Google implements Provider for Google accounts.
type Google struct {
	config   *oauth2.Config
	validate validateFunc
}

// NewGoogle returns a Google provider for the OAuth client.
func NewGoogle(clientID, clientSecret, redirectURL string) *Google {
	return &Google{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

func (g *Google) AuthCodeURL() string {
	return g.config.AuthCodeURL("", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

func (g *Google) Exchange(ctx context.Context, code string) (string, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchanging authorization code: %w", err)
	}

	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		return "", ErrNoIDToken
	}

	return idToken, nil
}

func (g *Google) Verify(ctx context.Context, idToken string) (Identity, error) {
	payload, err := g.validate(ctx, idToken, g.config.ClientID)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrIDTokenInvalid, err)
	}

	return identityFromClaims(payload.Subject, payload.Claims), nil
}

func identityFromClaims(subject string, claims map[string]interface{}) Identity {
	str := func(key string) string {
		s, _ := claims[key].(string)
		return s
	}

	name := str("name")
	if name == "" {
		name = str("given_name")
	}
	if name == "" {
		name = "Google User"
	}

	return Identity{
		Subject: subject,
		Email:   str("email"),
		Name:    name,
		Picture: str("picture"),
	}
}
