package v1_test

import (
	"net/http"

	"github.com/fintrack-api/backend/internal/auth"
	v1 "github.com/fintrack-api/backend/internal/controllers/v1"
	"github.com/fintrack-api/backend/internal/models"
	"github.com/fintrack-api/backend/test"
)

const authURL = "http://example.com/api/auth"

func google() *test.FakeGoogle {
	return &test.FakeGoogle{
		IDToken: "google-id-token",
		Identity: auth.Identity{
			Subject: "1234567890",
			Email:   "jane@example.com",
			Name:    "Jane Doe",
			Picture: "https://example.com/jane.png",
		},
	}
}

func (suite *TestSuiteStandard) TestAuthGoogleURL() {
	r := test.Request(suite.T(), http.MethodGet, authURL+"/google/url", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AuthURLResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(response.URL, "access_type=offline")
}

func (suite *TestSuiteStandard) TestAuthOptions() {
	for path, allow := range map[string]string{
		"/google/url":      "OPTIONS, GET",
		"/google":          "OPTIONS, POST",
		"/google/callback": "OPTIONS, GET",
		"/logout":          "OPTIONS, POST",
	} {
		r := test.Request(suite.T(), http.MethodOptions, authURL+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal(allow, r.Header().Get("allow"), path)
	}
}

func (suite *TestSuiteStandard) TestAuthLoginGoogle() {
	services := test.Services(google())

	r := test.RequestWith(suite.T(), services, http.MethodPost, authURL+"/google", v1.GoogleLogin{IDToken: "google-id-token"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotEmpty(response.Token)
	suite.Assert().Equal("jane@example.com", response.User.Email)
	suite.Assert().Equal("Jane Doe", response.User.Name)
	suite.Assert().Equal("user", response.User.Role)

	// The token identifies the created user
	id, _, err := services.Issuer.Verify(response.Token)
	suite.Require().Nil(err)
	suite.Assert().Equal(response.User.ID, id)

	// A second login returns the same user
	r = test.RequestWith(suite.T(), services, http.MethodPost, authURL+"/google", v1.GoogleLogin{IDToken: "google-id-token"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var second v1.LoginResponse
	test.DecodeResponse(suite.T(), &r, &second)
	suite.Assert().Equal(response.User.ID, second.User.ID)

	var count int64
	models.DB.Model(&models.User{}).Count(&count)
	suite.Assert().Equal(int64(1), count)

	// The token grants access to the protected endpoints
	r = test.RequestWith(suite.T(), services, http.MethodGet, categoriesURL, "", map[string]string{"Authorization": "Bearer " + response.Token})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAuthLoginGoogleFails() {
	services := test.Services(google())

	r := test.RequestWith(suite.T(), services, http.MethodPost, authURL+"/google", v1.GoogleLogin{IDToken: "forged"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	suite.Assert().Equal(auth.ErrIDTokenInvalid.Error(), test.DecodeError(suite.T(), &r))

	r = test.RequestWith(suite.T(), services, http.MethodPost, authURL+"/google", `{}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.RequestWith(suite.T(), services, http.MethodPost, authURL+"/google", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAuthGoogleCallback() {
	provider := google()
	services := test.Services(provider)

	r := test.RequestWith(suite.T(), services, http.MethodGet, authURL+"/google/callback?code=valid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CallbackResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("google-id-token", response.IDToken)
	suite.Assert().NotEmpty(response.Token)
	suite.Assert().Equal("Jane Doe", response.User.Name)

	// The callback updates the profile of existing users
	provider.Identity.Name = "Jane Roe"
	provider.Identity.Picture = "https://example.com/new.png"

	r = test.RequestWith(suite.T(), services, http.MethodGet, authURL+"/google/callback?code=valid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CallbackResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(response.User.ID, updated.User.ID)
	suite.Assert().Equal("Jane Roe", updated.User.Name)

	var user models.User
	suite.Require().Nil(models.DB.First(&user, "id = ?", updated.User.ID).Error)
	suite.Assert().Equal("https://example.com/new.png", user.AvatarURL)
}

func (suite *TestSuiteStandard) TestAuthGoogleCallbackFails() {
	services := test.Services(google())

	r := test.RequestWith(suite.T(), services, http.MethodGet, authURL+"/google/callback", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.RequestWith(suite.T(), services, http.MethodGet, authURL+"/google/callback?code=expired", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	suite.Assert().Equal(auth.ErrNoIDToken.Error(), test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestAuthLoginDatabaseError() {
	services := test.Services(google())
	suite.CloseDB()

	r := test.RequestWith(suite.T(), services, http.MethodPost, authURL+"/google", v1.GoogleLogin{IDToken: "google-id-token"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestAuthLogout() {
	r := test.Request(suite.T(), http.MethodPost, authURL+"/logout", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Logged out successfully", response.Message)
}
