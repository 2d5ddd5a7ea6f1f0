package service

import (
	"context"
	"sort"
	"strings"

	"github.com/toolrent/admin-gateway/internal/domain/model"
	apperrors "github.com/toolrent/admin-gateway/internal/errors"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Tools   ports.ToolDirectory
	Clients ports.ClientDirectory
	Rates   ports.RateSchedule
}

// CatalogService fronts the backend's tool, client, and rate endpoints.
// Writes pass straight through; list reads additionally apply the
// in-memory filtering and sorting the admin screens need. Nothing here
// re-validates domain rules -- the backend owns those.
type CatalogService struct {
	tools   ports.ToolDirectory
	clients ports.ClientDirectory
	rates   ports.RateSchedule
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	return &CatalogService{tools: opts.Tools, clients: opts.Clients, rates: opts.Rates}
}

// ListOptions control in-memory filtering and ordering of a fetched list.
type ListOptions struct {
	// Query is matched case-insensitively against the searchable fields.
	Query string
	// SortBy names a sort key; empty selects each list's default.
	SortBy string
	// Descending reverses the sort order.
	Descending bool
}

// ListTools returns tools filtered by name/category and sorted.
// Sort keys: name (default), category, value, available.
func (s *CatalogService) ListTools(ctx context.Context, opts ListOptions) ([]model.Tool, error) {
	tools, err := s.tools.List(ctx)
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(opts.Query)); q != "" {
		kept := tools[:0]
		for _, t := range tools {
			if strings.Contains(strings.ToLower(t.Name), q) ||
				strings.Contains(strings.ToLower(t.Category), q) {
				kept = append(kept, t)
			}
		}
		tools = kept
	}

	less, err := toolLess(opts.SortBy)
	if err != nil {
		return nil, err
	}
	sortSlice(tools, less, opts.Descending)
	return tools, nil
}

// GetTool fetches a single tool.
func (s *CatalogService) GetTool(ctx context.Context, id int64) (model.Tool, error) {
	return s.tools.Get(ctx, id)
}

// CreateTool forwards a create request to the backend.
func (s *CatalogService) CreateTool(ctx context.Context, req model.CreateToolRequest) (model.Tool, error) {
	return s.tools.Create(ctx, req)
}

// UpdateTool forwards an update request to the backend.
func (s *CatalogService) UpdateTool(ctx context.Context, id int64, req model.UpdateToolRequest) (model.Tool, error) {
	return s.tools.Update(ctx, id, req)
}

// DeleteTool forwards a delete to the backend, which decides whether
// the tool's stock state allows it.
func (s *CatalogService) DeleteTool(ctx context.Context, id int64) error {
	return s.tools.Delete(ctx, id)
}

// ListClients returns clients filtered by name/RUT/email and sorted.
// Sort keys: name (default), rut, status.
func (s *CatalogService) ListClients(ctx context.Context, opts ListOptions) ([]model.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(opts.Query)); q != "" {
		kept := clients[:0]
		for _, c := range clients {
			if strings.Contains(strings.ToLower(c.Name), q) ||
				strings.Contains(strings.ToLower(c.RUT), q) ||
				strings.Contains(strings.ToLower(c.Email), q) {
				kept = append(kept, c)
			}
		}
		clients = kept
	}

	less, err := clientLess(opts.SortBy)
	if err != nil {
		return nil, err
	}
	sortSlice(clients, less, opts.Descending)
	return clients, nil
}

// GetClient fetches a single client.
func (s *CatalogService) GetClient(ctx context.Context, id int64) (model.Client, error) {
	return s.clients.Get(ctx, id)
}

// CreateClient forwards a create request; RUT and phone validation is
// server-side.
func (s *CatalogService) CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	return s.clients.Create(ctx, req)
}

// UpdateClient forwards an update request to the backend.
func (s *CatalogService) UpdateClient(ctx context.Context, id int64, req model.UpdateClientRequest) (model.Client, error) {
	return s.clients.Update(ctx, id, req)
}

// CurrentRate fetches the tariff currently in force.
func (s *CatalogService) CurrentRate(ctx context.Context) (model.Rate, error) {
	return s.rates.Current(ctx)
}

// RateHistory fetches past tariffs, newest first as the backend returns them.
func (s *CatalogService) RateHistory(ctx context.Context) ([]model.Rate, error) {
	return s.rates.History(ctx)
}

// UpdateRate forwards a tariff change to the backend.
func (s *CatalogService) UpdateRate(ctx context.Context, req model.UpdateRateRequest) (model.Rate, error) {
	return s.rates.Update(ctx, req)
}

func toolLess(key string) (func(a, b model.Tool) bool, error) {
	switch key {
	case "", "name":
		return func(a, b model.Tool) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }, nil
	case "category":
		return func(a, b model.Tool) bool { return strings.ToLower(a.Category) < strings.ToLower(b.Category) }, nil
	case "value":
		return func(a, b model.Tool) bool { return a.ReplacementValue < b.ReplacementValue }, nil
	case "available":
		return func(a, b model.Tool) bool { return a.StockAvailable < b.StockAvailable }, nil
	default:
		return nil, apperrors.Newf(apperrors.ErrCodeValidation, "unknown sort key %q", key)
	}
}

func clientLess(key string) (func(a, b model.Client) bool, error) {
	switch key {
	case "", "name":
		return func(a, b model.Client) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }, nil
	case "rut":
		return func(a, b model.Client) bool { return a.RUT < b.RUT }, nil
	case "status":
		return func(a, b model.Client) bool { return a.Status < b.Status }, nil
	default:
		return nil, apperrors.Newf(apperrors.ErrCodeValidation, "unknown sort key %q", key)
	}
}

func sortSlice[T any](items []T, less func(a, b T) bool, descending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if descending {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
