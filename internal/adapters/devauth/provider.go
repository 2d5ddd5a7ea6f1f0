package devauth

// Package devauth provides a config-driven AuthGateway for local
// development. It short-circuits the provider flow by redirecting
// straight back to the gateway's own callback; the exchange ignores the
// code and returns the configured identity.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/url"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// Config controls the dev gateway's fixed identity.
type Config struct {
	Username string
	Role     string
	Email    string
	// Password, when set, is what LegacyLogin accepts for Username.
	Password string
}

// Provider implements ports.AuthGateway for local development.
type Provider struct {
	user     domainauth.User
	password string
}

var _ ports.AuthGateway = (*Provider)(nil)

// NewProvider constructs a dev gateway from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.Username == "" {
		return nil, errors.New("dev auth: Username is required")
	}
	return &Provider{
		user: domainauth.User{
			Username: cfg.Username,
			Role:     domainauth.ParseRole(cfg.Role),
			Email:    cfg.Email,
		},
		password: cfg.Password,
	}, nil
}

// SystemInfo always reports the provider as enabled.
func (p *Provider) SystemInfo(_ context.Context) (domainauth.SystemInfo, error) {
	return domainauth.SystemInfo{KeycloakEnabled: true, KeycloakURL: "dev://local"}, nil
}

// LoginURL returns a relative URL into the gateway's own callback,
// echoing the caller's state so the anti-replay check passes.
func (p *Provider) LoginURL(_ context.Context, state, _ string) (string, error) {
	return "/auth/callback?" + url.Values{
		"code":  []string{"dev"},
		"state": []string{state},
	}.Encode(), nil
}

// ExchangeCode ignores the code and returns the configured identity
// with a fresh random token.
func (p *Provider) ExchangeCode(_ context.Context, _ ports.ExchangeInput) (domainauth.Credentials, error) {
	token, err := randomToken()
	if err != nil {
		return domainauth.Credentials{}, err
	}
	return domainauth.Credentials{Token: token, User: p.user}, nil
}

// LegacyLogin accepts the configured username/password pair only.
func (p *Provider) LegacyLogin(_ context.Context, username, password string) (domainauth.Credentials, error) {
	if p.password == "" || username != p.user.Username || password != p.password {
		return domainauth.Credentials{}, errors.New("dev auth: invalid credentials")
	}
	token, err := randomToken()
	if err != nil {
		return domainauth.Credentials{}, err
	}
	return domainauth.Credentials{Token: token, User: p.user}, nil
}

// Logout has nothing to revoke.
func (p *Provider) Logout(_ context.Context, _ string) (string, error) {
	return "", nil
}

func randomToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "dev-" + base64.RawURLEncoding.EncodeToString(b), nil
}
