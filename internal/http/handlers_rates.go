package httpx

import (
	"log/slog"
	"net/http"

	"github.com/toolrent/admin-gateway/internal/domain/model"
	"github.com/toolrent/admin-gateway/internal/service"
)

// RateHandlers provides HTTP handlers for the tariff screens.
type RateHandlers struct {
	Svc    *service.CatalogService
	Logger *slog.Logger
}

// Current returns the tariff in force.
// GET /api/rates/current.
func (h *RateHandlers) Current(w http.ResponseWriter, r *http.Request) {
	rate, err := h.Svc.CurrentRate(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rate)
}

// History returns past tariffs.
// GET /api/rates/history.
func (h *RateHandlers) History(w http.ResponseWriter, r *http.Request) {
	rates, err := h.Svc.RateHistory(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rates)
}

// Update replaces the current tariff. Administrator only; the route
// wiring enforces the role.
// PUT /api/rates.
func (h *RateHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateRateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	rate, err := h.Svc.UpdateRate(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rate)
}
