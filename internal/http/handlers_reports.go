package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/toolrent/admin-gateway/internal/service"
)

// ReportHandlers provides HTTP handlers for the report screens. Every
// endpoint accepts an optional JMESPath "filter" query parameter that
// narrows the returned rows.
type ReportHandlers struct {
	Svc    *service.ReportService
	Logger *slog.Logger
}

// Dashboard returns the four landing-page reports in one response.
// GET /api/reports/dashboard.
func (h *ReportHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.Svc.Dashboard(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, dash)
}

// Loans returns the loans report.
// GET /api/reports/loans?overdue=true&filter=...
func (h *ReportHandlers) Loans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rows, err := h.Svc.Loans(r.Context(), q.Get("overdue") == "true", q.Get("filter"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}

// OverdueClients returns the clients-with-fines report.
// GET /api/reports/overdue-clients?filter=...
func (h *ReportHandlers) OverdueClients(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.OverdueClients(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}

// TopTools returns the most-rented-tools ranking.
// GET /api/reports/top-tools?limit=10&filter=...
func (h *ReportHandlers) TopTools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	rows, err := h.Svc.TopTools(r.Context(), limit, q.Get("filter"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}

// ClientStatuses returns the per-client standing report.
// GET /api/reports/client-statuses?filter=...
func (h *ReportHandlers) ClientStatuses(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ClientStatuses(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}
