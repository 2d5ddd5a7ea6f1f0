package devauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	"github.com/toolrent/admin-gateway/internal/ports"
)

func TestNewProvider_RequiresUsername(t *testing.T) {
	_, err := NewProvider(Config{})
	require.Error(t, err)
}

func TestProvider_LoginURLEchoesState(t *testing.T) {
	p, err := NewProvider(Config{Username: "dev", Role: "administrator"})
	require.NoError(t, err)

	loginURL, err := p.LoginURL(context.Background(), "state-xyz", "ignored")
	require.NoError(t, err)
	assert.Contains(t, loginURL, "/auth/callback?")
	assert.Contains(t, loginURL, "state=state-xyz")
	assert.Contains(t, loginURL, "code=dev")
}

func TestProvider_ExchangeReturnsConfiguredIdentity(t *testing.T) {
	p, err := NewProvider(Config{Username: "dev", Role: "employee", Email: "dev@example.com"})
	require.NoError(t, err)

	creds, err := p.ExchangeCode(context.Background(), ports.ExchangeInput{Code: "anything"})
	require.NoError(t, err)
	assert.NotEmpty(t, creds.Token)
	assert.Equal(t, "dev", creds.User.Username)
	assert.Equal(t, domainauth.RoleEmployee, creds.User.Role)

	// Tokens are unique per exchange.
	again, err := p.ExchangeCode(context.Background(), ports.ExchangeInput{Code: "anything"})
	require.NoError(t, err)
	assert.NotEqual(t, creds.Token, again.Token)
}

func TestProvider_LegacyLogin(t *testing.T) {
	p, err := NewProvider(Config{Username: "dev", Password: "hunter2"})
	require.NoError(t, err)

	_, err = p.LegacyLogin(context.Background(), "dev", "wrong")
	require.Error(t, err)

	creds, err := p.LegacyLogin(context.Background(), "dev", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "dev", creds.User.Username)
}

func TestProvider_LegacyLoginDisabledWithoutPassword(t *testing.T) {
	p, err := NewProvider(Config{Username: "dev"})
	require.NoError(t, err)

	_, err = p.LegacyLogin(context.Background(), "dev", "")
	require.Error(t, err)
}
