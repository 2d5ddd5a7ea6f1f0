package ports

import (
	"context"

	"github.com/toolrent/admin-gateway/internal/domain/model"
)

// The rental ports wrap the backend's CRUD and report endpoints. Every
// method is a straight pass-through; domain rules (stock bounds, RUT
// checks, fine arithmetic) are enforced by the backend, never here.

// ToolDirectory exposes the backend's tool inventory endpoints.
type ToolDirectory interface {
	List(ctx context.Context) ([]model.Tool, error)
	Get(ctx context.Context, id int64) (model.Tool, error)
	Create(ctx context.Context, req model.CreateToolRequest) (model.Tool, error)
	Update(ctx context.Context, id int64, req model.UpdateToolRequest) (model.Tool, error)
	Delete(ctx context.Context, id int64) error
}

// ClientDirectory exposes the backend's client registry endpoints.
type ClientDirectory interface {
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id int64) (model.Client, error)
	Create(ctx context.Context, req model.CreateClientRequest) (model.Client, error)
	Update(ctx context.Context, id int64, req model.UpdateClientRequest) (model.Client, error)
}

// RateSchedule exposes the backend's tariff endpoints.
type RateSchedule interface {
	Current(ctx context.Context) (model.Rate, error)
	History(ctx context.Context) ([]model.Rate, error)
	Update(ctx context.Context, req model.UpdateRateRequest) (model.Rate, error)
}

// ReportSource exposes the backend's precomputed report endpoints.
type ReportSource interface {
	Loans(ctx context.Context, overdueOnly bool) ([]model.LoanRow, error)
	OverdueClients(ctx context.Context) ([]model.OverdueClientRow, error)
	TopTools(ctx context.Context, limit int) ([]model.TopToolRow, error)
	ClientStatuses(ctx context.Context) ([]model.ClientStatusRow, error)
}
