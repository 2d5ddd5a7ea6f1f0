package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	apperrors "github.com/toolrent/admin-gateway/internal/errors"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// SessionStoreOptions groups dependencies for SessionStore.
type SessionStoreOptions struct {
	Gateway ports.AuthGateway
	Vault   ports.StateVault
	// RedirectURI is the exact return address the identity provider sends
	// the user back to. It is passed unchanged on both legs of the flow.
	RedirectURI string
	Logger      *slog.Logger
}

// SessionStore is the single source of truth for the authenticated
// session. It owns the login single-flight latch, the callback
// processing guard, and the persisted session/state keys; consumers
// read snapshots and call its operations, never the vault directly.
//
// All failures are returned as values. No operation panics or retries
// on its own.
type SessionStore struct {
	gateway     ports.AuthGateway
	vault       ports.StateVault
	redirectURI string
	logger      *slog.Logger

	mu        sync.Mutex
	current   domainauth.Session
	sysInfo   *domainauth.SystemInfo
	loginBusy bool
	callback  guardState
}

// guardState tracks the callback processing guard. Once a code exchange
// has started, the guard never returns to idle within the same login
// attempt; only BeginLogin or Logout re-arm it.
type guardState int

const (
	guardIdle guardState = iota
	guardProcessing
	guardDone
)

// NewSessionStore constructs a SessionStore.
func NewSessionStore(opts SessionStoreOptions) *SessionStore {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		gateway:     opts.Gateway,
		vault:       opts.Vault,
		redirectURI: opts.RedirectURI,
		logger:      logger,
	}
}

// LoadSystemInfo performs at most one network read per process and
// caches the result. On any failure it degrades to "external login
// disabled" with the reason attached; it never returns an error and
// never retries.
func (s *SessionStore) LoadSystemInfo(ctx context.Context) domainauth.SystemInfo {
	s.mu.Lock()
	if s.sysInfo != nil {
		info := *s.sysInfo
		s.mu.Unlock()
		return info
	}
	s.mu.Unlock()

	info, err := s.gateway.SystemInfo(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "system info fetch failed, external login disabled", "error", err)
		info = domainauth.SystemInfo{KeycloakEnabled: false, Error: err.Error()}
	}

	s.mu.Lock()
	s.sysInfo = &info
	s.mu.Unlock()
	return info
}

// Restore reads the persisted token and user profile and, when both are
// present and the profile parses, establishes the in-memory session
// from them. The restored token is trusted without a server round-trip;
// the backend's behavior on an invalid restored token is unspecified
// (see DESIGN.md). A corrupt profile deletes both entries; a single
// missing entry reports "no session" and leaves the vault untouched.
func (s *SessionStore) Restore(ctx context.Context) (domainauth.Session, bool) {
	token, haveToken := s.vaultGet(ctx, ports.VaultKeySessionToken)
	rawUser, haveUser := s.vaultGet(ctx, ports.VaultKeySessionUser)

	if !haveToken && !haveUser {
		return domainauth.Session{}, false
	}
	if haveToken != haveUser {
		// Partial data is not a valid session, but it is also not ours to
		// destroy; a later successful login overwrites it.
		s.logger.WarnContext(ctx, "partial persisted session ignored",
			"have_token", haveToken, "have_user", haveUser)
		return domainauth.Session{}, false
	}

	var user domainauth.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || !user.Valid() {
		if err == nil {
			err = apperrors.New(apperrors.ErrCodeCorruptedState, "persisted user profile has no username")
		} else {
			err = apperrors.Wrap(err, apperrors.ErrCodeCorruptedState, "parse persisted user profile")
		}
		s.logger.WarnContext(ctx, "corrupted persisted session, clearing", "error", err)
		if delErr := s.vault.Delete(ctx, ports.VaultKeySessionToken, ports.VaultKeySessionUser); delErr != nil {
			s.logger.WarnContext(ctx, "clearing corrupted session failed", "error", delErr)
		}
		return domainauth.Session{}, false
	}

	sess := domainauth.Session{Token: token, User: user}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return sess, true
}

// BeginLogin initiates the redirect to the identity provider: it
// generates and persists a fresh anti-replay state token, asks the
// gateway for the login URL, and returns it for the caller to navigate
// to. Concurrent calls while one is in flight fail fast with
// login_in_progress and cause no side effects. The latch is released on
// every path before returning, so the caller's navigation can never
// deadlock a later attempt.
func (s *SessionStore) BeginLogin(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.loginBusy {
		s.mu.Unlock()
		return "", apperrors.LoginInProgress("a login initiation is already in flight")
	}
	s.loginBusy = true
	s.mu.Unlock()
	defer s.releaseLoginLatch()

	info := s.LoadSystemInfo(ctx)
	if !info.KeycloakEnabled {
		return "", apperrors.LoginUnavailable("identity provider login is not enabled")
	}

	// The state token is a CSRF correlation value, not a security
	// boundary by itself; the single-use authorization code is.
	state := uuid.NewString()
	if err := s.vault.Set(ctx, ports.VaultKeyOAuthState, state); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "persist state token")
	}

	loginURL, err := s.gateway.LoginURL(ctx, state, s.redirectURI)
	if err != nil {
		return "", err
	}

	// A fresh navigation cycle starts; re-arm the callback guard.
	s.mu.Lock()
	s.callback = guardIdle
	s.mu.Unlock()

	return loginURL, nil
}

// CompleteLoginInput groups the query parameters delivered by the
// provider redirect.
type CompleteLoginInput struct {
	Code  string
	State string
}

// CompleteLoginResult is the outcome of a successful code exchange.
type CompleteLoginResult struct {
	Session domainauth.Session
	// StateMismatch records that the anti-replay check did not pass.
	// Deliberately a warning rather than a hard failure; see DESIGN.md.
	StateMismatch bool
}

// CompleteLogin exchanges the one-time authorization code for a session
// exactly once per login attempt. A second call while one is in flight,
// or after one has finished (either way), returns already_processed
// without touching the network. The stored state token is consumed --
// read and deleted -- regardless of whether it matches.
func (s *SessionStore) CompleteLogin(ctx context.Context, in CompleteLoginInput) (CompleteLoginResult, error) {
	s.mu.Lock()
	if s.callback != guardIdle {
		s.mu.Unlock()
		return CompleteLoginResult{}, apperrors.AlreadyProcessed(
			"authorization code exchange already performed for this login attempt")
	}
	s.callback = guardProcessing
	s.mu.Unlock()
	// Terminal states are sticky: success and failure both leave the
	// guard closed until a new login attempt re-arms it.
	defer func() {
		s.mu.Lock()
		s.callback = guardDone
		s.mu.Unlock()
	}()

	if in.Code == "" {
		return CompleteLoginResult{}, apperrors.Validation("authorization code is required")
	}

	mismatch := s.consumeStateToken(ctx, in.State)

	creds, err := s.gateway.ExchangeCode(ctx, ports.ExchangeInput{
		Code:        in.Code,
		State:       in.State,
		RedirectURI: s.redirectURI,
	})
	if err != nil {
		return CompleteLoginResult{}, err
	}

	sess := domainauth.Session{Token: creds.Token, User: creds.User}
	s.establish(ctx, sess)
	return CompleteLoginResult{Session: sess, StateMismatch: mismatch}, nil
}

// LegacyLogin validates a username/password pair against the backend.
// It shares the single-flight latch with BeginLogin and establishes the
// session the same way a callback exchange does.
func (s *SessionStore) LegacyLogin(ctx context.Context, username, password string) (domainauth.Session, error) {
	if username == "" || password == "" {
		return domainauth.Session{}, apperrors.Validation("username and password are required")
	}

	s.mu.Lock()
	if s.loginBusy {
		s.mu.Unlock()
		return domainauth.Session{}, apperrors.LoginInProgress("a login is already in flight")
	}
	s.loginBusy = true
	s.mu.Unlock()
	defer s.releaseLoginLatch()

	creds, err := s.gateway.LegacyLogin(ctx, username, password)
	if err != nil {
		return domainauth.Session{}, err
	}

	sess := domainauth.Session{Token: creds.Token, User: creds.User}
	s.establish(ctx, sess)
	return sess, nil
}

// Logout tears the session down. The backend call is best effort and
// only consulted for an optional provider-side logout redirect; the
// in-memory session, both guards, and all persisted keys are cleared
// unconditionally. Calling Logout twice is harmless.
func (s *SessionStore) Logout(ctx context.Context) string {
	s.mu.Lock()
	token := s.current.Token
	s.mu.Unlock()

	logoutURL, err := s.gateway.Logout(ctx, token)
	if err != nil {
		s.logger.WarnContext(ctx, "backend logout failed", "error", err)
		logoutURL = ""
	}

	s.mu.Lock()
	s.current = domainauth.Session{}
	s.loginBusy = false
	s.callback = guardIdle
	s.mu.Unlock()

	if delErr := s.vault.Delete(ctx,
		ports.VaultKeySessionToken, ports.VaultKeySessionUser, ports.VaultKeyOAuthState); delErr != nil {
		s.logger.WarnContext(ctx, "clearing persisted session failed", "error", delErr)
	}

	if logoutURL == "" {
		logoutURL = "/"
	}
	return logoutURL
}

// Current returns a snapshot of the session, if any.
func (s *SessionStore) Current() (domainauth.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current.Authenticated()
}

func (s *SessionStore) releaseLoginLatch() {
	s.mu.Lock()
	s.loginBusy = false
	s.mu.Unlock()
}

// consumeStateToken reads and deletes the persisted anti-replay token
// and reports whether the incoming value failed to match. The token may
// be consulted at most once; it is deleted on every path.
func (s *SessionStore) consumeStateToken(ctx context.Context, state string) bool {
	stored, ok := s.vaultGet(ctx, ports.VaultKeyOAuthState)
	if delErr := s.vault.Delete(ctx, ports.VaultKeyOAuthState); delErr != nil {
		s.logger.WarnContext(ctx, "deleting state token failed", "error", delErr)
	}

	if !ok || stored != state {
		s.logger.WarnContext(ctx, "anti-replay state check failed",
			"code", apperrors.ErrCodeStateMismatch, "stored_present", ok)
		return true
	}
	return false
}

// establish atomically sets the in-memory session and persists both
// keys. A persist failure keeps the in-memory session and is logged;
// Restore treats the resulting partial data as absence.
func (s *SessionStore) establish(ctx context.Context, sess domainauth.Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	raw, err := json.Marshal(sess.User)
	if err != nil {
		s.logger.WarnContext(ctx, "serializing user profile failed", "error", err)
		return
	}
	if err := s.vault.Set(ctx, ports.VaultKeySessionToken, sess.Token); err != nil {
		s.logger.WarnContext(ctx, "persisting session token failed", "error", err)
		return
	}
	if err := s.vault.Set(ctx, ports.VaultKeySessionUser, string(raw)); err != nil {
		s.logger.WarnContext(ctx, "persisting user profile failed", "error", err)
	}
}

// vaultGet reads a key, folding read errors into absence with a warning.
func (s *SessionStore) vaultGet(ctx context.Context, key string) (string, bool) {
	val, ok, err := s.vault.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "vault read failed", "key", key, "error", err)
		return "", false
	}
	return val, ok
}
