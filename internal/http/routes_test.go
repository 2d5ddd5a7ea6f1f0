package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	"github.com/toolrent/admin-gateway/internal/domain/model"
	"github.com/toolrent/admin-gateway/internal/mocks"
	mockauth "github.com/toolrent/admin-gateway/internal/mocks/auth"
	"github.com/toolrent/admin-gateway/internal/service"
)

type routerFixture struct {
	gateway *mockauth.MockAuthGateway
	store   *service.SessionStore
	tools   *mocks.MockToolDirectory
	router  http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mockauth.NewMockAuthGateway()
	store := service.NewSessionStore(service.SessionStoreOptions{
		Gateway:     gateway,
		Vault:       mockauth.NewMemoryVault(),
		RedirectURI: "http://localhost:8090/auth/callback",
		Logger:      testLogger(),
	})
	tools := mocks.NewMockToolDirectory(ctrl)
	catalog := service.NewCatalogService(service.CatalogServiceOptions{Tools: tools})

	return &routerFixture{
		gateway: gateway,
		store:   store,
		tools:   tools,
		router: NewRouter(Services{
			Store:   store,
			Catalog: catalog,
			Logger:  testLogger(),
		}),
	}
}

func (f *routerFixture) loginAs(t *testing.T, role domainauth.Role) {
	t.Helper()
	f.gateway.LegacyLoginFunc = func(_ context.Context, username, _ string) (domainauth.Credentials, error) {
		return domainauth.Credentials{
			Token: "tok",
			User:  domainauth.User{Username: username, Role: role},
		}, nil
	}
	_, err := f.store.LegacyLogin(context.Background(), "operator", "secret")
	require.NoError(t, err)
}

func TestRouter_HealthIsOpen(t *testing.T) {
	f := newRouterFixture(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ResourcesRequireSession(t *testing.T) {
	f := newRouterFixture(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_EmployeeCanReadButNotCreate(t *testing.T) {
	f := newRouterFixture(t)
	f.loginAs(t, domainauth.RoleEmployee)
	f.tools.EXPECT().List(gomock.Any()).Return([]model.Tool{}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tools",
		strings.NewReader(`{"name":"Drill","category":"Power Tools","replacementValue":45000,"initialStock":3}`)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_AdministratorCanCreate(t *testing.T) {
	f := newRouterFixture(t)
	f.loginAs(t, domainauth.RoleAdministrator)
	f.tools.EXPECT().Create(gomock.Any(), model.CreateToolRequest{
		Name: "Drill", Category: "Power Tools", ReplacementValue: 45000, InitialStock: 3,
	}).Return(model.Tool{ID: 10, Name: "Drill"}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tools",
		strings.NewReader(`{"name":"Drill","category":"Power Tools","replacementValue":45000,"initialStock":3}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":10`)
}

func TestRouter_AuthEndpointsAreOpen(t *testing.T) {
	f := newRouterFixture(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
