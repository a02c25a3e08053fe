package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foreskyapp/foresky-cli/internal/errors"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL:  server.URL,
		RPS:      1000,
		Burst:    1000,
		ClientID: "test-install",
	}, staticTokens{token: token}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client, server
}

func TestLogin_SendsFormAndParsesToken(t *testing.T) {
	var gotContentType, gotUsername, gotPassword, gotAuth string
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotUsername = r.PostFormValue("username")
		gotPassword = r.PostFormValue("password")
		w.Write([]byte(`{"access_token":"tok123","token_type":"bearer"}`))
	})

	token, err := client.Login(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "tok123", token)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "user@example.com", gotUsername)
	assert.Equal(t, "hunter2", gotPassword)
	assert.Empty(t, gotAuth, "anonymous call must not carry a bearer header")
}

func TestLogin_WrongPassword(t *testing.T) {
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	})

	hookFired := false
	client.SetAuthFailureHook(func(error) { hookFired = true })

	_, err := client.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)

	assert.True(t, errors.Is(err, errors.ErrUnauthorized))
	assert.EqualError(t, err, "Incorrect email or password")
	assert.False(t, hookFired, "a credentials failure without a token is not a session expiry")
}

func TestDo_AttachesBearerAndIdentityHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotClientID string
	client, _ := newTestClient(t, "tok123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotClientID = r.Header.Get("X-Client-ID")
		w.Write([]byte(`[]`))
	})

	_, err := client.ListNotes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "test-install", gotClientID)
}

func TestDo_ExpiredTokenFiresAuthFailureHook(t *testing.T) {
	client, _ := newTestClient(t, "stale", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	})

	var hookErr error
	client.SetAuthFailureHook(func(err error) { hookErr = err })

	_, err := client.ListNotes(context.Background())
	require.Error(t, err)

	assert.True(t, errors.Is(err, errors.ErrTokenExpired))
	assert.EqualError(t, err, "Could not validate credentials")
	require.Error(t, hookErr)
	assert.True(t, errors.Is(hookErr, errors.ErrTokenExpired))
}

func TestDo_UnverifiedAccountDoesNotFireHook(t *testing.T) {
	client, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Email not verified"}`))
	})

	hookFired := false
	client.SetAuthFailureHook(func(error) { hookFired = true })

	_, err := client.Me(context.Background())
	require.Error(t, err)

	assert.True(t, errors.Is(err, errors.ErrUnverified))
	assert.EqualError(t, err, "Email not verified")
	assert.False(t, hookFired)
}

func TestClassify_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  *errors.Error
		wantMsg  string
		hadToken bool
	}{
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"detail":"Note not found"}`,
			wantErr: errors.ErrNotFound,
			wantMsg: "Note not found",
		},
		{
			name:    "duplicate reported as 400",
			status:  http.StatusBadRequest,
			body:    `{"detail":"Email already registered"}`,
			wantErr: errors.ErrConflict,
			wantMsg: "Email already registered",
		},
		{
			name:    "referential conflict",
			status:  http.StatusConflict,
			body:    `{"detail":"Tag is in use by existing notes"}`,
			wantErr: errors.ErrConflict,
			wantMsg: "Tag is in use by existing notes",
		},
		{
			name:    "unprocessable entity",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":"field required"}`,
			wantErr: errors.ErrValidation,
			wantMsg: "field required",
		},
		{
			name:    "server error without envelope",
			status:  http.StatusInternalServerError,
			body:    `boom`,
			wantErr: errors.ErrUnavailable,
			wantMsg: "server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := client.classify(tt.status, []byte(tt.body), tt.hadToken)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestDo_NetworkFailureIsUnavailable(t *testing.T) {
	client, server := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnavailable))
}
