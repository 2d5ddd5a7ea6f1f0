package config

import (
	"fmt"
	"strings"
)

// AuthMode selects which AuthGateway implementation the gateway runs with.
type AuthMode string

const (
	// AuthModeBackend routes the whole login flow through the ToolRent
	// backend's auth endpoints. This is the default deployment.
	AuthModeBackend AuthMode = "backend"
	// AuthModeKeycloak talks to the identity provider directly.
	AuthModeKeycloak AuthMode = "keycloak"
	// AuthModeMock uses a config-driven fake provider (development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "backend", "keycloak", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: backend, keycloak, mock)", v)
	}
}

// KeycloakConfig configures the direct identity-provider mode.
type KeycloakConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"toolrent-admin"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:""`
	IssuerURL    string `env:"ISSUER_URL"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls the mock provider identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	Username string `env:"USERNAME" envDefault:"dev-admin"`
	Role     string `env:"ROLE"     envDefault:"administrator"`
	Email    string `env:"EMAIL"    envDefault:"dev@example.com"`
	Password string `env:"PASSWORD" envDefault:""`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which auth gateway to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"backend"`

	// RedirectURI is the exact address the identity provider redirects
	// back to. It must match the provider's client registration.
	RedirectURI string `env:"AUTH_REDIRECT_URI" envDefault:"http://localhost:8090/auth/callback"`

	// Keycloak configuration (used when Mode=keycloak).
	Keycloak KeycloakConfig `envPrefix:"KEYCLOAK_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}
