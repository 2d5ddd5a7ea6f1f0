package ports

// Package ports defines interfaces (hexagonal ports) for the gateway.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
)

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code        string
	State       string
	RedirectURI string
}

// AuthGateway talks to whatever completes login flows: the ToolRent
// backend's auth endpoints in the default deployment, or the identity
// provider directly in direct mode.
type AuthGateway interface {
	// SystemInfo reports whether identity-provider login is available.
	SystemInfo(ctx context.Context) (domainauth.SystemInfo, error)

	// LoginURL returns the URL to navigate the user to, carrying the
	// anti-replay state and the exact address the provider should
	// redirect back to.
	LoginURL(ctx context.Context, state, redirectURI string) (string, error)

	// ExchangeCode swaps a one-time authorization code for credentials.
	ExchangeCode(ctx context.Context, in ExchangeInput) (domainauth.Credentials, error)

	// LegacyLogin validates a username/password pair server-side.
	LegacyLogin(ctx context.Context, username, password string) (domainauth.Credentials, error)

	// Logout invalidates the token server-side, best effort. The returned
	// URL, when non-empty, is a provider-side logout redirect target.
	Logout(ctx context.Context, token string) (logoutURL string, err error)
}

// StateVault is the persistent key-value store that survives process
// restarts: session token, serialized user profile, and the transient
// anti-replay state. It is a plain map with no transactional guarantees;
// callers treat stale or partial data defensively.
type StateVault interface {
	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// Vault key layout. The three keys are owned exclusively by the session
// store; no other component writes them.
const (
	VaultKeySessionToken = "session.token"
	VaultKeySessionUser  = "session.user"
	VaultKeyOAuthState   = "oauth.state"
)
