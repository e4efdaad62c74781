package test

import (
	"context"

	"github.com/fintrack-api/backend/internal/auth"
)

// FakeGoogle is an auth.Provider for tests.
//
// Exchange accepts the code "valid" and returns IDToken. Verify accepts
// IDToken and returns Identity.
type FakeGoogle struct {
	IDToken  string
	Identity auth.Identity
}

func (f *FakeGoogle) AuthCodeURL() string {
	return "https://accounts.google.com/o/oauth2/auth?access_type=offline&prompt=consent"
}

func (f *FakeGoogle) Exchange(_ context.Context, code string) (string, error) {
	if code != "valid" || f.IDToken == "" {
		return "", auth.ErrNoIDToken
	}
	return f.IDToken, nil
}

func (f *FakeGoogle) Verify(_ context.Context, idToken string) (auth.Identity, error) {
	if f.IDToken == "" || idToken != f.IDToken {
		return auth.Identity{}, auth.ErrIDTokenInvalid
	}
	return f.Identity, nil
}
