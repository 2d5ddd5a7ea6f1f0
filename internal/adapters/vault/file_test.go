package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileVault_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	v, err := NewFileVault(path)
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := v.Get(ctx, "session.token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, v.Set(ctx, "session.token", "tok-abc"))

	val, ok, err := v.Get(ctx, "session.token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", val)
}

func TestFileVault_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	ctx := context.Background()

	v, err := NewFileVault(path)
	require.NoError(t, err)
	require.NoError(t, v.Set(ctx, "session.token", "tok-abc"))
	require.NoError(t, v.Set(ctx, "session.user", `{"username":"op"}`))

	reopened, err := NewFileVault(path)
	require.NoError(t, err)

	val, ok, err := reopened.Get(ctx, "session.token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", val)

	val, ok, err = reopened.Get(ctx, "session.user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"username":"op"}`, val)
}

func TestFileVault_DeleteMultiple(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	v, err := NewFileVault(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, v.Set(ctx, "a", "1"))
	require.NoError(t, v.Set(ctx, "b", "2"))

	// Deleting present and absent keys together is not an error.
	require.NoError(t, v.Delete(ctx, "a", "b", "missing"))

	_, ok, err := v.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = v.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileVault_DeleteAbsentIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	v, err := NewFileVault(path)
	require.NoError(t, err)

	require.NoError(t, v.Delete(context.Background(), "missing"))
	// No file write should have happened for a no-op delete.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileVault_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileVault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse vault file")
}

func TestFileVault_EmptyFileIsEmptyVault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	v, err := NewFileVault(path)
	require.NoError(t, err)

	_, ok, err := v.Get(context.Background(), "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewFileVault_RequiresPath(t *testing.T) {
	_, err := NewFileVault("")
	require.Error(t, err)
}
