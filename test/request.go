package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/config"
	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/fintrack-api/backend/internal/models"
	"github.com/fintrack-api/backend/internal/report"
	"github.com/fintrack-api/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// JWTSecret signs the tokens of test requests.
const JWTSecret = "test-secret"

// Config returns the configuration used for test requests.
func Config(t *testing.T) config.Config {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://example.com/api"
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		assert.FailNow(t, "environment variable API_URL must be a valid URL")
	}

	return config.Config{
		APIURL:        baseURL,
		JWTSecret:     JWTSecret,
		JWTExpiresIn:  time.Hour,
		ReportTimeout: 5 * time.Second,
	}
}

// Services returns the services for test requests. Google logins are
// answered by the passed provider.
func Services(provider auth.Provider) router.Services {
	return router.Services{
		Issuer:  auth.NewIssuer(JWTSecret, time.Hour),
		Google:  provider,
		Reports: report.NewService(report.NewGormStore(models.DB), report.WithTimeout(5*time.Second)),
	}
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	return RequestWith(t, Services(&FakeGoogle{}), method, reqURL, body, headers...)
}

// RequestWith sends the request to a router using the passed services.
func RequestWith(t *testing.T, services router.Services, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch {
	case body == nil:
		byteBuffer = new(bytes.Buffer)
	case reflect.TypeOf(body).Kind() == reflect.String:
		byteBuffer = bytes.NewBufferString(body.(string))
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.Fail(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	cfg := Config(t)
	r, teardown, err := router.Config(cfg)
	defer teardown()

	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	router.AttachRoutes(r.Group(cfg.APIURL.Path), services)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// Bearer returns the Authorization header for the user.
func Bearer(t *testing.T, user models.User) map[string]string {
	token, err := auth.NewIssuer(JWTSecret, time.Hour).Sign(user)
	require.Nil(t, err)

	return map[string]string{"Authorization": "Bearer " + token}
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the message of an error response.
func DecodeError(t *testing.T, r *httptest.ResponseRecorder) string {
	var e httputil.HTTPError
	if err := json.Unmarshal(r.Body.Bytes(), &e); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", r.Body.String())
	}

	assert.True(t, e.Error, "error field is not true in %s", r.Body.String())
	return e.Message
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
