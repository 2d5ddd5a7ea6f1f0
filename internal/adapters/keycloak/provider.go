package keycloak

// Package keycloak implements ports.AuthGateway directly against a
// Keycloak-compatible identity provider. Deployments that cannot route
// the exchange through the backend use this mode instead of the
// toolrent adapter.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	apperrors "github.com/toolrent/admin-gateway/internal/errors"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// Provider implements ports.AuthGateway against the provider's OIDC
// endpoints, discovered once at construction.
type Provider struct {
	clientID     string
	clientSecret string
	scopes       []string
	issuer       string
	logoutURL    string

	oidcProvider *gooidc.Provider
	verifier     *gooidc.IDTokenVerifier
}

// Config holds configuration for the direct provider.
type Config struct {
	ClientID     string
	ClientSecret string
	// IssuerURL is the realm root, e.g. "https://idp.example.com/realms/toolrent".
	IssuerURL string
	// Scope is a space-separated scope list; "openid profile email" by default.
	Scope string
	// LogoutURL overrides the provider's end-session endpoint. Optional.
	LogoutURL string
	// HTTPClient is optional; a 30s-timeout client is used by default.
	HTTPClient *http.Client
}

var _ ports.AuthGateway = (*Provider)(nil)

// NewProvider discovers the provider's endpoints and builds the gateway.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if config.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	scope := config.Scope
	if scope == "" {
		scope = "openid profile email"
	}

	issuer := strings.TrimSuffix(config.IssuerURL, "/")
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}

	return &Provider{
		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
		scopes:       strings.Fields(scope),
		issuer:       issuer,
		logoutURL:    config.LogoutURL,
		oidcProvider: op,
		verifier:     op.Verifier(&gooidc.Config{ClientID: config.ClientID}),
	}, nil
}

// SystemInfo reports the provider as enabled; discovery already
// succeeded at construction, so no network call is needed here.
func (p *Provider) SystemInfo(_ context.Context) (domainauth.SystemInfo, error) {
	return domainauth.SystemInfo{KeycloakEnabled: true, KeycloakURL: p.issuer}, nil
}

// LoginURL builds the authorization URL carrying the caller's state and
// redirect address.
func (p *Provider) LoginURL(_ context.Context, state, redirectURI string) (string, error) {
	if redirectURI == "" {
		return "", errors.New("redirect URI is required")
	}
	cfg := p.oauthConfig(redirectURI)
	return cfg.AuthCodeURL(state,
		oauth2.SetAuthURLParam("response_type", "code"),
	), nil
}

// ExchangeCode swaps the authorization code for tokens and maps the ID
// token claims to a user profile. A provider rejection (used or expired
// code) surfaces as exchange_failed.
func (p *Provider) ExchangeCode(ctx context.Context, in ports.ExchangeInput) (domainauth.Credentials, error) {
	if in.Code == "" {
		return domainauth.Credentials{}, apperrors.Validation("authorization code is required")
	}

	cfg := p.oauthConfig(in.RedirectURI)
	token, err := cfg.Exchange(ctx, in.Code)
	if err != nil {
		return domainauth.Credentials{}, apperrors.Wrap(err,
			apperrors.ErrCodeExchangeFailed, "code exchange rejected by provider")
	}

	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return domainauth.Credentials{}, apperrors.MalformedResponse("token response missing id_token")
	}
	idToken, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return domainauth.Credentials{}, apperrors.Wrap(err,
			apperrors.ErrCodeMalformedResponse, "verify id_token")
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return domainauth.Credentials{}, apperrors.Wrap(err,
			apperrors.ErrCodeMalformedResponse, "parse id_token claims")
	}

	user := mapClaims(claims)
	if !user.Valid() {
		return domainauth.Credentials{}, apperrors.MalformedResponse("id_token missing a username claim")
	}
	return domainauth.Credentials{Token: token.AccessToken, User: user}, nil
}

// LegacyLogin is not available in direct mode; only the backend can
// validate passwords.
func (p *Provider) LegacyLogin(_ context.Context, _, _ string) (domainauth.Credentials, error) {
	return domainauth.Credentials{}, apperrors.LoginUnavailable(
		"password login is not supported in direct identity-provider mode")
}

// Logout returns the provider's end-session URL. No token revocation
// call is made; the session store clears local state either way.
func (p *Provider) Logout(_ context.Context, _ string) (string, error) {
	if p.logoutURL != "" {
		return p.logoutURL, nil
	}
	return p.issuer + "/protocol/openid-connect/logout?" + url.Values{
		"client_id": []string{p.clientID},
	}.Encode(), nil
}

func (p *Provider) oauthConfig(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.clientID,
		ClientSecret: p.clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       p.scopes,
		Endpoint:     p.oidcProvider.Endpoint(),
	}
}

// idTokenClaims is the Keycloak claim shape the gateway cares about.
type idTokenClaims struct {
	Sub               string `json:"sub"`
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
	GivenName         string `json:"given_name"`
	FamilyName        string `json:"family_name"`
	RealmAccess       struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
}

// mapClaims maps ID token claims to a user profile. The username falls
// back to the subject when preferred_username is absent.
func mapClaims(c idTokenClaims) domainauth.User {
	username := c.PreferredUsername
	if username == "" {
		username = c.Sub
	}
	return domainauth.User{
		Username:  username,
		Role:      pickRole(c.RealmAccess.Roles),
		Email:     c.Email,
		FirstName: c.GivenName,
		LastName:  c.FamilyName,
	}
}

// pickRole selects the strongest recognized realm role. Unrecognized
// role lists degrade to none rather than failing the login.
func pickRole(roles []string) domainauth.Role {
	best := domainauth.RoleNone
	for _, r := range roles {
		switch domainauth.ParseRole(r) {
		case domainauth.RoleAdministrator:
			return domainauth.RoleAdministrator
		case domainauth.RoleEmployee:
			best = domainauth.RoleEmployee
		}
	}
	return best
}
