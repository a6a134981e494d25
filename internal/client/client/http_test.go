package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path      string
	Method    string
	CT        string
	RequestID string
	Body      models.Credentials
}

func fakeAPI(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	got := &capturedRequest{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Path = r.URL.Path
		got.Method = r.Method
		got.CT = r.Header.Get("Content-Type")
		got.RequestID = r.Header.Get("X-Request-ID")
		_ = json.NewDecoder(r.Body).Decode(&got.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts, got
}

func newTestClient(baseURL string) *HTTPClient {
	c := NewHTTPClient(baseURL, 0, nil)
	c.newRequestID = func() string { return "req-42" }
	return c
}

var creds = models.Credentials{Email: "alice@example.org", Password: "secret1"}

func TestSignup_Success(t *testing.T) {
	ts, got := fakeAPI(t, http.StatusCreated, `{"status":"success","data":{"token":"abc123"}}`)

	token, err := newTestClient(ts.URL+"/").Signup(context.Background(), creds)
	require.NoError(t, err)

	assert.Equal(t, "abc123", token)
	assert.Equal(t, "/users/signup", got.Path)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "application/json", got.CT)
	assert.Equal(t, "req-42", got.RequestID)
	assert.Equal(t, creds, got.Body)
}

func TestLogin_Success(t *testing.T) {
	ts, got := fakeAPI(t, http.StatusOK, `{"status":"success","data":{"token":"xyz"}}`)

	token, err := newTestClient(ts.URL).Login(context.Background(), creds)
	require.NoError(t, err)

	assert.Equal(t, "xyz", token)
	assert.Equal(t, "/users/login", got.Path)
}

func TestSignup_ServerRejects(t *testing.T) {
	ts, _ := fakeAPI(t, http.StatusBadRequest, `{"status":"error","message":"Email already exists"}`)

	_, err := newTestClient(ts.URL).Signup(context.Background(), creds)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "error", apiErr.Status)
	assert.Equal(t, "Email already exists", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
}

func TestSignup_HTTPStatusIgnoredForSuccessEnvelope(t *testing.T) {
	ts, _ := fakeAPI(t, http.StatusInternalServerError, `{"status":"success","data":{"token":"t"}}`)

	token, err := newTestClient(ts.URL).Signup(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "t", token)
}

func TestSignup_BadResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>502 Bad Gateway</html>`},
		{"success without data", `{"status":"success"}`},
		{"success with empty token", `{"status":"success","data":{"token":""}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts, _ := fakeAPI(t, http.StatusOK, tc.body)
			_, err := newTestClient(ts.URL).Signup(context.Background(), creds)
			require.ErrorIs(t, err, ErrBadResponse)
		})
	}
}

func TestSignup_Unavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := newTestClient(url).Signup(context.Background(), creds)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSignup_TimeoutIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	c := NewHTTPClient(ts.URL, 50*time.Millisecond, nil)
	_, err := c.Signup(context.Background(), creds)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestAPIError_Message(t *testing.T) {
	assert.Equal(t, `api status "fail" (http 409): taken`,
		(&APIError{Status: "fail", Message: "taken", HTTPStatus: 409}).Error())
	assert.Equal(t, `api status "fail" (http 500)`,
		(&APIError{Status: "fail", HTTPStatus: 500}).Error())
}
