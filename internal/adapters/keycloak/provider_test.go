package keycloak

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
)

// newDiscoveryServer serves a minimal OIDC discovery document whose
// issuer matches the server's own URL.
func newDiscoveryServer(t *testing.T) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":                 server.URL,
			"authorization_endpoint": server.URL + "/auth",
			"token_endpoint":         server.URL + "/token",
			"jwks_uri":               server.URL + "/jwks",
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	server := newDiscoveryServer(t)
	provider, err := NewProvider(context.Background(), Config{
		ClientID:  "toolrent-admin",
		IssuerURL: server.URL,
	})
	require.NoError(t, err)
	return provider
}

func TestNewProvider_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		errMsg string
	}{
		{
			name:   "missing client ID",
			config: Config{IssuerURL: "http://example.com"},
			errMsg: "client ID is required",
		},
		{
			name:   "missing issuer URL",
			config: Config{ClientID: "client"},
			errMsg: "issuer URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(context.Background(), tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvider_SystemInfo(t *testing.T) {
	provider := newTestProvider(t)

	info, err := provider.SystemInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, info.KeycloakEnabled)
	assert.NotEmpty(t, info.KeycloakURL)
}

func TestProvider_LoginURL(t *testing.T) {
	provider := newTestProvider(t)

	loginURL, err := provider.LoginURL(context.Background(), "state-123", "http://localhost:8090/auth/callback")
	require.NoError(t, err)
	assert.Contains(t, loginURL, "/auth")
	assert.Contains(t, loginURL, "client_id=toolrent-admin")
	assert.Contains(t, loginURL, "state=state-123")
	assert.Contains(t, loginURL, "response_type=code")
}

func TestProvider_LoginURL_RequiresRedirect(t *testing.T) {
	provider := newTestProvider(t)

	_, err := provider.LoginURL(context.Background(), "s", "")
	require.Error(t, err)
}

func TestProvider_LegacyLoginUnsupported(t *testing.T) {
	provider := newTestProvider(t)

	_, err := provider.LegacyLogin(context.Background(), "user", "pass")
	require.Error(t, err)
}

func TestProvider_LogoutURL(t *testing.T) {
	provider := newTestProvider(t)

	logoutURL, err := provider.Logout(context.Background(), "tok")
	require.NoError(t, err)
	assert.Contains(t, logoutURL, "/protocol/openid-connect/logout")
	assert.Contains(t, logoutURL, "client_id=toolrent-admin")
}

func TestMapClaims(t *testing.T) {
	user := mapClaims(idTokenClaims{
		Sub:               "abc-123",
		PreferredUsername: "operator",
		Email:             "op@example.com",
		GivenName:         "Olga",
		FamilyName:        "Pereira",
		RealmAccess: struct {
			Roles []string `json:"roles"`
		}{Roles: []string{"offline_access", "administrator"}},
	})

	assert.Equal(t, "operator", user.Username)
	assert.Equal(t, domainauth.RoleAdministrator, user.Role)
	assert.Equal(t, "op@example.com", user.Email)
	assert.Equal(t, "Olga", user.FirstName)
	assert.Equal(t, "Pereira", user.LastName)
}

func TestMapClaims_SubjectFallback(t *testing.T) {
	user := mapClaims(idTokenClaims{Sub: "abc-123"})
	assert.Equal(t, "abc-123", user.Username)
	assert.Equal(t, domainauth.RoleNone, user.Role)
}

func TestPickRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  domainauth.Role
	}{
		{name: "empty", roles: nil, want: domainauth.RoleNone},
		{name: "unrecognized only", roles: []string{"offline_access", "uma_authorization"}, want: domainauth.RoleNone},
		{name: "employee", roles: []string{"employee"}, want: domainauth.RoleEmployee},
		{name: "administrator wins", roles: []string{"employee", "administrator"}, want: domainauth.RoleAdministrator},
		{name: "admin alias", roles: []string{"admin"}, want: domainauth.RoleAdministrator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickRole(tt.roles))
		})
	}
}
