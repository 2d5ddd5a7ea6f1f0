package httpx

import (
	"log/slog"
	"net/http"

	"github.com/toolrent/admin-gateway/internal/domain/model"
	"github.com/toolrent/admin-gateway/internal/service"
)

// ClientHandlers provides HTTP handlers for the client registry screens.
type ClientHandlers struct {
	Svc    *service.CatalogService
	Logger *slog.Logger
}

// List returns clients with optional in-memory filtering and sorting.
// GET /api/clients?q=...&sort=...&desc=true.
func (h *ClientHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	clients, err := h.Svc.ListClients(r.Context(), service.ListOptions{
		Query:      q.Get("q"),
		SortBy:     q.Get("sort"),
		Descending: q.Get("desc") == "true",
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, clients)
}

// Get returns a single client.
// GET /api/clients/{id}.
func (h *ClientHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	client, err := h.Svc.GetClient(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, client)
}

// Create registers a new client.
// POST /api/clients.
func (h *ClientHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateClientRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	client, err := h.Svc.CreateClient(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, client)
}

// Update modifies a client, including status changes.
// PATCH /api/clients/{id}.
func (h *ClientHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateClientRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	client, err := h.Svc.UpdateClient(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, client)
}
