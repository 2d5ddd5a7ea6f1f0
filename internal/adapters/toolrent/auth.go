package toolrent

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	apperrors "github.com/toolrent/admin-gateway/internal/errors"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// AuthClient implements ports.AuthGateway against the backend's auth
// endpoints. In this mode the backend brokers the identity-provider
// exchange; the gateway never talks to the provider directly.
type AuthClient struct {
	client *Client
}

// NewAuthClient wraps a backend client.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

var _ ports.AuthGateway = (*AuthClient)(nil)

type systemInfoResponse struct {
	KeycloakEnabled bool   `json:"keycloakEnabled"`
	KeycloakURL     string `json:"keycloakUrl"`
	Error           string `json:"error"`
}

// SystemInfo fetches the backend's capability descriptor. Errors
// propagate; the session store decides how to degrade.
func (a *AuthClient) SystemInfo(ctx context.Context) (domainauth.SystemInfo, error) {
	var resp systemInfoResponse
	err := a.client.do(ctx, call{method: http.MethodGet, path: "/api/auth/system-info"}, &resp)
	if err != nil {
		return domainauth.SystemInfo{}, mapStatus(err)
	}
	return domainauth.SystemInfo{
		KeycloakEnabled: resp.KeycloakEnabled,
		KeycloakURL:     resp.KeycloakURL,
		Error:           resp.Error,
	}, nil
}

// LoginURL asks the backend to build the provider authorization URL
// carrying the state token and redirect address.
func (a *AuthClient) LoginURL(ctx context.Context, state, redirectURI string) (string, error) {
	var resp struct {
		LoginURL string `json:"loginUrl"`
	}
	err := a.client.do(ctx, call{
		method: http.MethodGet,
		path:   "/api/auth/login-url",
		query: url.Values{
			"state":        []string{state},
			"redirect_uri": []string{redirectURI},
		},
	}, &resp)
	if err != nil {
		return "", mapStatus(err)
	}
	if resp.LoginURL == "" {
		return "", apperrors.MalformedResponse("login URL response missing loginUrl")
	}
	return resp.LoginURL, nil
}

// userPayload is the backend's user shape; the role string degrades to
// "none" when unrecognized rather than failing the login.
type userPayload struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u userPayload) toDomain() domainauth.User {
	return domainauth.User{
		Username:  u.Username,
		Role:      domainauth.ParseRole(u.Role),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type credentialsResponse struct {
	AccessToken string       `json:"access_token"`
	User        *userPayload `json:"user"`
}

// validate turns a structurally incomplete success response into
// malformed_response. A 200 without both token and username is useless
// to the session store.
func (r credentialsResponse) validate() error {
	if r.AccessToken == "" {
		return apperrors.MalformedResponse("exchange response missing access_token")
	}
	if r.User == nil || r.User.Username == "" {
		return apperrors.MalformedResponse("exchange response missing user profile")
	}
	return nil
}

func (r credentialsResponse) toCredentials() domainauth.Credentials {
	return domainauth.Credentials{Token: r.AccessToken, User: r.User.toDomain()}
}

// ExchangeCode swaps the one-time authorization code for credentials.
// Any non-success status becomes exchange_failed carrying the backend's
// message (e.g. "Code not valid" for replayed codes).
func (a *AuthClient) ExchangeCode(ctx context.Context, in ports.ExchangeInput) (domainauth.Credentials, error) {
	body := map[string]string{
		"code":        in.Code,
		"state":       in.State,
		"redirectUri": in.RedirectURI,
	}
	var resp credentialsResponse
	err := a.client.do(ctx, call{method: http.MethodPost, path: "/api/auth/callback", body: body}, &resp)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return domainauth.Credentials{}, apperrors.Wrapf(apiErr,
				apperrors.ErrCodeExchangeFailed, "code exchange rejected: %s", apiErr.Message)
		}
		return domainauth.Credentials{}, err
	}
	if err := resp.validate(); err != nil {
		return domainauth.Credentials{}, err
	}
	return resp.toCredentials(), nil
}

// LegacyLogin validates a username/password pair against the backend's
// form-login endpoint. Rejected credentials come back as a validation
// error so the handler can show them as user input problems.
func (a *AuthClient) LegacyLogin(ctx context.Context, username, password string) (domainauth.Credentials, error) {
	body := map[string]string{"username": username, "password": password}
	var resp credentialsResponse
	err := a.client.do(ctx, call{method: http.MethodPost, path: "/api/auth/login", body: body}, &resp)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
				return domainauth.Credentials{}, apperrors.Validation("invalid username or password")
			}
			return domainauth.Credentials{}, mapStatus(apiErr)
		}
		return domainauth.Credentials{}, err
	}
	if err := resp.validate(); err != nil {
		return domainauth.Credentials{}, err
	}
	return resp.toCredentials(), nil
}

// Logout invalidates the token server-side. The response may carry an
// optional provider-side logout redirect; absence is fine.
func (a *AuthClient) Logout(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", nil
	}
	c := a.client.withToken(token)
	var resp struct {
		LogoutURL string `json:"logoutUrl"`
	}
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/auth/logout", auth: true}, &resp)
	if err != nil {
		return "", mapStatus(err)
	}
	return resp.LogoutURL, nil
}
