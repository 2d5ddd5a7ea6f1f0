package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	apperrors "github.com/toolrent/admin-gateway/internal/errors"
	mockauth "github.com/toolrent/admin-gateway/internal/mocks/auth"
	"github.com/toolrent/admin-gateway/internal/ports"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(gateway *mockauth.MockAuthGateway, vault *mockauth.MemoryVault) *SessionStore {
	return NewSessionStore(SessionStoreOptions{
		Gateway:     gateway,
		Vault:       vault,
		RedirectURI: "http://localhost:8090/auth/callback",
		Logger:      testLogger(),
	})
}

func TestBeginLogin_PersistsStateAndReturnsURL(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	loginURL, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, loginURL)

	state := vault.Value(ports.VaultKeyOAuthState)
	assert.NotEmpty(t, state)
	assert.Contains(t, loginURL, state)
}

func TestBeginLogin_FreshStatePerAttempt(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	first := vault.Value(ports.VaultKeyOAuthState)

	_, err = store.BeginLogin(context.Background())
	require.NoError(t, err)
	second := vault.Value(ports.VaultKeyOAuthState)

	assert.NotEqual(t, first, second)
}

func TestBeginLogin_SingleFlight(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	entered := make(chan struct{})
	release := make(chan struct{})
	gateway.LoginURLFunc = func(_ context.Context, state, _ string) (string, error) {
		close(entered)
		<-release
		return "https://mock-idp/auth?state=" + state, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := store.BeginLogin(context.Background())
		assert.NoError(t, err)
	}()

	<-entered
	_, err := store.BeginLogin(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsLoginInProgress(err))
	// The rejected attempt never reached the gateway.
	assert.Equal(t, 1, gateway.LoginURLCalls())

	close(release)
	wg.Wait()

	// The latch is released; a new attempt goes through.
	gateway.LoginURLFunc = nil
	_, err = store.BeginLogin(context.Background())
	require.NoError(t, err)
}

func TestBeginLogin_DisabledProviderNoSideEffects(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	gateway.SystemInfoFunc = func(_ context.Context) (domainauth.SystemInfo, error) {
		return domainauth.SystemInfo{KeycloakEnabled: false}, nil
	}
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsLoginUnavailable(err))
	assert.Equal(t, 0, gateway.LoginURLCalls())
	assert.Equal(t, 0, vault.Len())

	// Failing fast does not jam the latch.
	_, err = store.BeginLogin(context.Background())
	assert.True(t, apperrors.IsLoginUnavailable(err))
}

func TestBeginLogin_GatewayErrorReleasesLatch(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	gateway.LoginURLFunc = func(_ context.Context, _, _ string) (string, error) {
		return "", apperrors.Network(errors.New("connection refused"), "login url")
	}
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))

	gateway.LoginURLFunc = nil
	_, err = store.BeginLogin(context.Background())
	require.NoError(t, err)
}

func TestLoadSystemInfo_CachedAfterFirstFetch(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	store := newTestStore(gateway, mockauth.NewMemoryVault())

	first := store.LoadSystemInfo(context.Background())
	second := store.LoadSystemInfo(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gateway.SystemInfoCalls())
}

func TestLoadSystemInfo_FetchFailureDegradesToDisabled(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	gateway.SystemInfoFunc = func(_ context.Context) (domainauth.SystemInfo, error) {
		return domainauth.SystemInfo{}, apperrors.Network(errors.New("dial tcp: refused"), "system info")
	}
	store := newTestStore(gateway, mockauth.NewMemoryVault())

	info := store.LoadSystemInfo(context.Background())
	assert.False(t, info.KeycloakEnabled)
	assert.NotEmpty(t, info.Error)

	// The failed result is cached too; no retry storm.
	store.LoadSystemInfo(context.Background())
	assert.Equal(t, 1, gateway.SystemInfoCalls())
}

func TestCompleteLogin_EstablishesAndPersistsSession(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	state := vault.Value(ports.VaultKeyOAuthState)

	result, err := store.CompleteLogin(context.Background(), CompleteLoginInput{Code: "one-time", State: state})
	require.NoError(t, err)
	assert.False(t, result.StateMismatch)
	assert.Equal(t, "mock-token", result.Session.Token)
	assert.Equal(t, "mock-admin", result.Session.User.Username)

	// Session snapshot matches.
	current, ok := store.Current()
	assert.True(t, ok)
	assert.Equal(t, result.Session, current)

	// Both keys persisted, state consumed.
	assert.Equal(t, "mock-token", vault.Value(ports.VaultKeySessionToken))
	var user domainauth.User
	require.NoError(t, json.Unmarshal([]byte(vault.Value(ports.VaultKeySessionUser)), &user))
	assert.Equal(t, "mock-admin", user.Username)
	assert.False(t, vault.Has(ports.VaultKeyOAuthState))
}

func TestCompleteLogin_SecondCallShortCircuits(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	state := vault.Value(ports.VaultKeyOAuthState)

	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{Code: "one-time", State: state})
	require.NoError(t, err)

	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{Code: "one-time", State: state})
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyProcessed(err))
	// The replay never reached the network.
	assert.Equal(t, 1, gateway.ExchangeCalls())
}

func TestCompleteLogin_GuardStaysClosedAfterFailure(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	gateway.ExchangeFunc = func(_ context.Context, _ ports.ExchangeInput) (domainauth.Credentials, error) {
		return domainauth.Credentials{}, apperrors.ExchangeFailed("Code not valid")
	}
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	state := vault.Value(ports.VaultKeyOAuthState)

	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{Code: "bad", State: state})
	require.Error(t, err)
	assert.True(t, apperrors.IsExchangeFailed(err))

	// A retry within the same attempt is refused, not re-exchanged.
	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{Code: "bad", State: state})
	assert.True(t, apperrors.IsAlreadyProcessed(err))
	assert.Equal(t, 1, gateway.ExchangeCalls())
}

func TestCompleteLogin_NewAttemptReArmsGuard(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "first", State: vault.Value(ports.VaultKeyOAuthState),
	})
	require.NoError(t, err)

	_, err = store.BeginLogin(context.Background())
	require.NoError(t, err)
	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "second", State: vault.Value(ports.VaultKeyOAuthState),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, gateway.ExchangeCalls())
}

func TestCompleteLogin_StateMismatchIsWarningOnly(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)

	result, err := store.CompleteLogin(context.Background(), CompleteLoginInput{Code: "one-time", State: "forged"})
	require.NoError(t, err)
	assert.True(t, result.StateMismatch)
	assert.True(t, result.Session.Authenticated())
	// The stored token is consumed either way.
	assert.False(t, vault.Has(ports.VaultKeyOAuthState))
}

func TestCompleteLogin_MissingCode(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)

	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{State: "s"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, gateway.ExchangeCalls())
}

func TestRestore_RoundTrip(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	result, err := store.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "one-time", State: vault.Value(ports.VaultKeyOAuthState),
	})
	require.NoError(t, err)

	// A new store over the same vault simulates a process restart.
	restarted := newTestStore(mockauth.NewMockAuthGateway(), vault)
	sess, ok := restarted.Restore(context.Background())
	require.True(t, ok)
	assert.Equal(t, result.Session, sess)

	current, ok := restarted.Current()
	assert.True(t, ok)
	assert.Equal(t, result.Session, current)
}

func TestRestore_NothingPersisted(t *testing.T) {
	store := newTestStore(mockauth.NewMockAuthGateway(), mockauth.NewMemoryVault())

	_, ok := store.Restore(context.Background())
	assert.False(t, ok)
	_, ok = store.Current()
	assert.False(t, ok)
}

func TestRestore_PartialDataLeftUntouched(t *testing.T) {
	vault := mockauth.NewMemoryVault()
	vault.Put(ports.VaultKeySessionToken, "orphan-token")
	store := newTestStore(mockauth.NewMockAuthGateway(), vault)

	_, ok := store.Restore(context.Background())
	assert.False(t, ok)
	// The orphan entry survives; a later login overwrites it.
	assert.True(t, vault.Has(ports.VaultKeySessionToken))
}

func TestRestore_CorruptUserClearsBothKeys(t *testing.T) {
	vault := mockauth.NewMemoryVault()
	vault.Put(ports.VaultKeySessionToken, "tok")
	vault.Put(ports.VaultKeySessionUser, "{corrupt")
	store := newTestStore(mockauth.NewMockAuthGateway(), vault)

	_, ok := store.Restore(context.Background())
	assert.False(t, ok)
	assert.False(t, vault.Has(ports.VaultKeySessionToken))
	assert.False(t, vault.Has(ports.VaultKeySessionUser))
}

func TestRestore_UserWithoutUsernameClearsBothKeys(t *testing.T) {
	vault := mockauth.NewMemoryVault()
	vault.Put(ports.VaultKeySessionToken, "tok")
	vault.Put(ports.VaultKeySessionUser, `{"role":"administrator"}`)
	store := newTestStore(mockauth.NewMockAuthGateway(), vault)

	_, ok := store.Restore(context.Background())
	assert.False(t, ok)
	assert.False(t, vault.Has(ports.VaultKeySessionToken))
	assert.False(t, vault.Has(ports.VaultKeySessionUser))
}

func TestRestore_VaultReadErrorIsAbsence(t *testing.T) {
	vault := mockauth.NewMemoryVault()
	vault.GetErr = errors.New("disk gone")
	store := newTestStore(mockauth.NewMockAuthGateway(), vault)

	_, ok := store.Restore(context.Background())
	assert.False(t, ok)
}

func TestLogout_ClearsEverything(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "one-time", State: vault.Value(ports.VaultKeyOAuthState),
	})
	require.NoError(t, err)

	target := store.Logout(context.Background())
	assert.Equal(t, "/", target)

	_, ok := store.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, vault.Len())
}

func TestLogout_Idempotent(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	assert.Equal(t, "/", store.Logout(context.Background()))
	assert.Equal(t, "/", store.Logout(context.Background()))
}

func TestLogout_BackendFailureStillClears(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	gateway.LogoutFunc = func(_ context.Context, _ string) (string, error) {
		return "", apperrors.Network(errors.New("connection reset"), "logout")
	}
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "one-time", State: vault.Value(ports.VaultKeyOAuthState),
	})
	require.NoError(t, err)

	target := store.Logout(context.Background())
	assert.Equal(t, "/", target)
	_, ok := store.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, vault.Len())
}

func TestLogout_ProviderRedirect(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	gateway.LogoutFunc = func(_ context.Context, _ string) (string, error) {
		return "https://idp.example.com/logout", nil
	}
	store := newTestStore(gateway, mockauth.NewMemoryVault())

	assert.Equal(t, "https://idp.example.com/logout", store.Logout(context.Background()))
}

func TestLogout_ReArmsCallbackGuard(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	_, err := store.BeginLogin(context.Background())
	require.NoError(t, err)
	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "one-time", State: vault.Value(ports.VaultKeyOAuthState),
	})
	require.NoError(t, err)
	store.Logout(context.Background())

	// After logout a fresh callback can be processed again, provided a
	// new state was persisted by a new login initiation.
	_, err = store.BeginLogin(context.Background())
	require.NoError(t, err)
	_, err = store.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "fresh", State: vault.Value(ports.VaultKeyOAuthState),
	})
	require.NoError(t, err)
}

func TestLegacyLogin_EstablishesSession(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	store := newTestStore(gateway, vault)

	sess, err := store.LegacyLogin(context.Background(), "operator", "secret")
	require.NoError(t, err)
	assert.Equal(t, "operator", sess.User.Username)

	current, ok := store.Current()
	assert.True(t, ok)
	assert.Equal(t, sess, current)
	assert.Equal(t, "mock-token", vault.Value(ports.VaultKeySessionToken))
}

func TestLegacyLogin_RequiresCredentials(t *testing.T) {
	store := newTestStore(mockauth.NewMockAuthGateway(), mockauth.NewMemoryVault())

	_, err := store.LegacyLogin(context.Background(), "", "secret")
	assert.True(t, apperrors.IsValidation(err))
	_, err = store.LegacyLogin(context.Background(), "operator", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestEstablish_PersistFailureKeepsInMemorySession(t *testing.T) {
	gateway := mockauth.NewMockAuthGateway()
	vault := mockauth.NewMemoryVault()
	vault.SetErr = errors.New("disk full")
	store := newTestStore(gateway, vault)

	sess, err := store.LegacyLogin(context.Background(), "operator", "secret")
	require.NoError(t, err)
	assert.True(t, sess.Authenticated())

	current, ok := store.Current()
	assert.True(t, ok)
	assert.Equal(t, sess, current)
}
