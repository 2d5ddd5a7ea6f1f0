package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/toolrent/admin-gateway/internal/domain/model"
	apperrors "github.com/toolrent/admin-gateway/internal/errors"
	"github.com/toolrent/admin-gateway/internal/service"
)

// ToolHandlers provides HTTP handlers for the tool inventory screens.
type ToolHandlers struct {
	Svc    *service.CatalogService
	Logger *slog.Logger
}

// List returns tools with optional in-memory filtering and sorting.
// GET /api/tools?q=...&sort=...&desc=true.
func (h *ToolHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tools, err := h.Svc.ListTools(r.Context(), service.ListOptions{
		Query:      q.Get("q"),
		SortBy:     q.Get("sort"),
		Descending: q.Get("desc") == "true",
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, tools)
}

// Get returns a single tool.
// GET /api/tools/{id}.
func (h *ToolHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	tool, err := h.Svc.GetTool(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, tool)
}

// Create registers a new tool.
// POST /api/tools.
func (h *ToolHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateToolRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	tool, err := h.Svc.CreateTool(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, tool)
}

// Update modifies a tool's listing fields.
// PATCH /api/tools/{id}.
func (h *ToolHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateToolRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	tool, err := h.Svc.UpdateTool(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, tool)
}

// Delete decommissions a tool.
// DELETE /api/tools/{id}.
func (h *ToolHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.DeleteTool(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment, writing a validation error on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteAppError(w, apperrors.Validation("id must be an integer"))
		return 0, false
	}
	return id, true
}
