package vault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolrent/admin-gateway/internal/testutil"
)

func TestRedisVault_RoundTrip(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	v := NewRedisVault(client)
	ctx := context.Background()

	_, ok, err := v.Get(ctx, "session.token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, v.Set(ctx, "session.token", "tok-abc"))

	val, ok, err := v.Get(ctx, "session.token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", val)

	require.NoError(t, v.Delete(ctx, "session.token"))
	_, ok, err = v.Get(ctx, "session.token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisVault_PrefixIsolation(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	ctx := context.Background()
	a := NewRedisVaultWithPrefix(client, "a:")
	b := NewRedisVaultWithPrefix(client, "b:")

	require.NoError(t, a.Set(ctx, "oauth.state", "state-a"))

	_, ok, err := b.Get(ctx, "oauth.state")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisVault_DeleteNoKeys(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	v := NewRedisVault(client)
	require.NoError(t, v.Delete(context.Background()))
}
