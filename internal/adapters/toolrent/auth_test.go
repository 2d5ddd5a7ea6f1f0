package toolrent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	apperrors "github.com/toolrent/admin-gateway/internal/errors"
	"github.com/toolrent/admin-gateway/internal/ports"
)

func newTestAuthClient(t *testing.T, handler http.Handler) *AuthClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := New(Options{BaseURL: server.URL})
	require.NoError(t, err)
	return NewAuthClient(client)
}

func TestAuthClient_SystemInfo(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/system-info", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keycloakEnabled": true,
			"keycloakUrl":     "https://idp.example.com",
		})
	}))

	info, err := auth.SystemInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, info.KeycloakEnabled)
	assert.Equal(t, "https://idp.example.com", info.KeycloakURL)
}

func TestAuthClient_SystemInfo_NetworkError(t *testing.T) {
	client, err := New(Options{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	auth := NewAuthClient(client)

	_, err = auth.SystemInfo(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))
}

func TestAuthClient_LoginURL(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login-url", r.URL.Path)
		assert.Equal(t, "state-123", r.URL.Query().Get("state"))
		assert.Equal(t, "http://localhost:8090/auth/callback", r.URL.Query().Get("redirect_uri"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"loginUrl": "https://idp.example.com/auth?state=state-123",
		})
	}))

	loginURL, err := auth.LoginURL(context.Background(), "state-123", "http://localhost:8090/auth/callback")
	require.NoError(t, err)
	assert.Contains(t, loginURL, "state=state-123")
}

func TestAuthClient_LoginURL_MissingField(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))

	_, err := auth.LoginURL(context.Background(), "s", "r")
	require.Error(t, err)
	assert.True(t, apperrors.IsMalformedResponse(err))
}

func TestAuthClient_ExchangeCode_Success(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/callback", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "one-time-code", body["code"])
		assert.Equal(t, "state-123", body["state"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-abc",
			"user": map[string]string{
				"username": "operator",
				"role":     "administrator",
				"email":    "op@example.com",
			},
		})
	}))

	creds, err := auth.ExchangeCode(context.Background(), ports.ExchangeInput{
		Code:        "one-time-code",
		State:       "state-123",
		RedirectURI: "http://localhost:8090/auth/callback",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", creds.Token)
	assert.Equal(t, "operator", creds.User.Username)
	assert.Equal(t, domainauth.RoleAdministrator, creds.User.Role)
}

func TestAuthClient_ExchangeCode_RejectedCode(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Code not valid"})
	}))

	_, err := auth.ExchangeCode(context.Background(), ports.ExchangeInput{Code: "used-code"})
	require.Error(t, err)
	assert.True(t, apperrors.IsExchangeFailed(err))
	assert.Contains(t, err.Error(), "Code not valid")
}

func TestAuthClient_ExchangeCode_MissingToken(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"username": "operator"},
		})
	}))

	_, err := auth.ExchangeCode(context.Background(), ports.ExchangeInput{Code: "c"})
	require.Error(t, err)
	assert.True(t, apperrors.IsMalformedResponse(err))
}

func TestAuthClient_ExchangeCode_MissingUser(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok"})
	}))

	_, err := auth.ExchangeCode(context.Background(), ports.ExchangeInput{Code: "c"})
	require.Error(t, err)
	assert.True(t, apperrors.IsMalformedResponse(err))
}

func TestAuthClient_ExchangeCode_UnknownRoleDegrades(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"user":         map[string]string{"username": "guest", "role": "intern"},
		})
	}))

	creds, err := auth.ExchangeCode(context.Background(), ports.ExchangeInput{Code: "c"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleNone, creds.User.Role)
}

func TestAuthClient_LegacyLogin_BadCredentials(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"})
	}))

	_, err := auth.LegacyLogin(context.Background(), "user", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthClient_Logout(t *testing.T) {
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"logoutUrl": "https://idp.example.com/logout",
		})
	}))

	logoutURL, err := auth.Logout(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "https://idp.example.com/logout", logoutURL)
}

func TestAuthClient_Logout_NoToken(t *testing.T) {
	called := false
	auth := newTestAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	logoutURL, err := auth.Logout(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, logoutURL)
	assert.False(t, called)
}
