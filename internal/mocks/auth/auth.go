package auth

// Package auth contains simple hand-written test doubles for the auth
// ports. These are lightweight and suitable for unit tests without
// codegen.

import (
	"context"
	"sync"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthGateway = (*MockAuthGateway)(nil)
	_ ports.StateVault  = (*MemoryVault)(nil)
)

// MockAuthGateway simulates the backend auth endpoints with
// per-operation override funcs and call counting.
type MockAuthGateway struct {
	SystemInfoFunc  func(ctx context.Context) (domainauth.SystemInfo, error)
	LoginURLFunc    func(ctx context.Context, state, redirectURI string) (string, error)
	ExchangeFunc    func(ctx context.Context, in ports.ExchangeInput) (domainauth.Credentials, error)
	LegacyLoginFunc func(ctx context.Context, username, password string) (domainauth.Credentials, error)
	LogoutFunc      func(ctx context.Context, token string) (string, error)

	mu               sync.Mutex
	systemInfoCalls  int
	loginURLCalls    int
	exchangeCalls    int
	legacyLoginCalls int
	logoutCalls      int
}

// NewMockAuthGateway creates a gateway whose defaults report an enabled
// provider and exchange any code for a fixed administrator session.
func NewMockAuthGateway() *MockAuthGateway {
	return &MockAuthGateway{}
}

func (m *MockAuthGateway) SystemInfo(ctx context.Context) (domainauth.SystemInfo, error) {
	m.count(&m.systemInfoCalls)
	if m.SystemInfoFunc != nil {
		return m.SystemInfoFunc(ctx)
	}
	return domainauth.SystemInfo{KeycloakEnabled: true, KeycloakURL: "https://mock-idp"}, nil
}

func (m *MockAuthGateway) LoginURL(ctx context.Context, state, redirectURI string) (string, error) {
	m.count(&m.loginURLCalls)
	if m.LoginURLFunc != nil {
		return m.LoginURLFunc(ctx, state, redirectURI)
	}
	return "https://mock-idp/auth?state=" + state, nil
}

func (m *MockAuthGateway) ExchangeCode(ctx context.Context, in ports.ExchangeInput) (domainauth.Credentials, error) {
	m.count(&m.exchangeCalls)
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}
	return domainauth.Credentials{
		Token: "mock-token",
		User:  domainauth.User{Username: "mock-admin", Role: domainauth.RoleAdministrator},
	}, nil
}

func (m *MockAuthGateway) LegacyLogin(ctx context.Context, username, password string) (domainauth.Credentials, error) {
	m.count(&m.legacyLoginCalls)
	if m.LegacyLoginFunc != nil {
		return m.LegacyLoginFunc(ctx, username, password)
	}
	return domainauth.Credentials{
		Token: "mock-token",
		User:  domainauth.User{Username: username, Role: domainauth.RoleEmployee},
	}, nil
}

func (m *MockAuthGateway) Logout(ctx context.Context, token string) (string, error) {
	m.count(&m.logoutCalls)
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return "", nil
}

func (m *MockAuthGateway) count(field *int) {
	m.mu.Lock()
	*field++
	m.mu.Unlock()
}

// ExchangeCalls reports how many times ExchangeCode was invoked.
func (m *MockAuthGateway) ExchangeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exchangeCalls
}

// LoginURLCalls reports how many times LoginURL was invoked.
func (m *MockAuthGateway) LoginURLCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginURLCalls
}

// SystemInfoCalls reports how many times SystemInfo was invoked.
func (m *MockAuthGateway) SystemInfoCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.systemInfoCalls
}

// LogoutCalls reports how many times Logout was invoked.
func (m *MockAuthGateway) LogoutCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logoutCalls
}

// MemoryVault is an in-memory StateVault with optional per-operation
// error injection.
type MemoryVault struct {
	GetErr    error
	SetErr    error
	DeleteErr error

	mu   sync.Mutex
	data map[string]string
}

// NewMemoryVault creates an empty MemoryVault.
func NewMemoryVault() *MemoryVault {
	return &MemoryVault{data: map[string]string{}}
}

func (v *MemoryVault) Get(_ context.Context, key string) (string, bool, error) {
	if v.GetErr != nil {
		return "", false, v.GetErr
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	val, ok := v.data[key]
	return val, ok, nil
}

func (v *MemoryVault) Set(_ context.Context, key, value string) error {
	if v.SetErr != nil {
		return v.SetErr
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data[key] = value
	return nil
}

func (v *MemoryVault) Delete(_ context.Context, keys ...string) error {
	if v.DeleteErr != nil {
		return v.DeleteErr
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, key := range keys {
		delete(v.data, key)
	}
	return nil
}

// Put seeds a key without going through Set's error injection.
func (v *MemoryVault) Put(key, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data[key] = value
}

// Has reports whether a key is present.
func (v *MemoryVault) Has(key string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.data[key]
	return ok
}

// Value returns a key's raw value, or "" when absent.
func (v *MemoryVault) Value(key string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data[key]
}

// Len reports how many keys are stored.
func (v *MemoryVault) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.data)
}
