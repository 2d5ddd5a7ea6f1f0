package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/toolrent/admin-gateway/internal/domain/auth"
	"github.com/toolrent/admin-gateway/internal/service"
)

// Services groups everything the router needs.
type Services struct {
	Store   *service.SessionStore
	Catalog *service.CatalogService
	Reports *service.ReportService
	Logger  *slog.Logger
}

// NewRouter builds the gateway's HTTP handler. Auth endpoints are open;
// resource endpoints require at least an employee session, and the
// destructive/tariff operations require an administrator.
func NewRouter(services Services) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", Health)
	mux.HandleFunc("HEAD /healthz", Health)

	auth := &AuthHandlers{Store: services.Store, Logger: logger}
	mux.HandleFunc("GET /auth/login", auth.Login)
	mux.HandleFunc("GET /auth/callback", auth.Callback)
	mux.HandleFunc("POST /auth/login", auth.LegacyLogin)
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("GET /auth/status", auth.Status)
	mux.HandleFunc("POST /auth/restore", auth.Restore)

	staff := RequireRole(services.Store, domainauth.RoleEmployee)
	adminOnly := RequireRole(services.Store, domainauth.RoleAdministrator)

	tools := &ToolHandlers{Svc: services.Catalog, Logger: logger}
	mux.Handle("GET /api/tools", staff(http.HandlerFunc(tools.List)))
	mux.Handle("GET /api/tools/{id}", staff(http.HandlerFunc(tools.Get)))
	mux.Handle("POST /api/tools", adminOnly(http.HandlerFunc(tools.Create)))
	mux.Handle("PATCH /api/tools/{id}", adminOnly(http.HandlerFunc(tools.Update)))
	mux.Handle("DELETE /api/tools/{id}", adminOnly(http.HandlerFunc(tools.Delete)))

	clients := &ClientHandlers{Svc: services.Catalog, Logger: logger}
	mux.Handle("GET /api/clients", staff(http.HandlerFunc(clients.List)))
	mux.Handle("GET /api/clients/{id}", staff(http.HandlerFunc(clients.Get)))
	mux.Handle("POST /api/clients", staff(http.HandlerFunc(clients.Create)))
	mux.Handle("PATCH /api/clients/{id}", staff(http.HandlerFunc(clients.Update)))

	rates := &RateHandlers{Svc: services.Catalog, Logger: logger}
	mux.Handle("GET /api/rates/current", staff(http.HandlerFunc(rates.Current)))
	mux.Handle("GET /api/rates/history", staff(http.HandlerFunc(rates.History)))
	mux.Handle("PUT /api/rates", adminOnly(http.HandlerFunc(rates.Update)))

	reports := &ReportHandlers{Svc: services.Reports, Logger: logger}
	mux.Handle("GET /api/reports/dashboard", staff(http.HandlerFunc(reports.Dashboard)))
	mux.Handle("GET /api/reports/loans", staff(http.HandlerFunc(reports.Loans)))
	mux.Handle("GET /api/reports/overdue-clients", staff(http.HandlerFunc(reports.OverdueClients)))
	mux.Handle("GET /api/reports/top-tools", staff(http.HandlerFunc(reports.TopTools)))
	mux.Handle("GET /api/reports/client-statuses", staff(http.HandlerFunc(reports.ClientStatuses)))

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
