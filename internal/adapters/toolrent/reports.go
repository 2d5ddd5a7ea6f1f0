package toolrent

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/toolrent/admin-gateway/internal/domain/model"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// ReportClient implements ports.ReportSource against /api/reports. All
// aggregation happens server-side; the rows arrive fully computed.
type ReportClient struct {
	client *Client
}

// NewReportClient wraps a backend client.
func NewReportClient(client *Client) *ReportClient {
	return &ReportClient{client: client}
}

var _ ports.ReportSource = (*ReportClient)(nil)

func (r *ReportClient) Loans(ctx context.Context, overdueOnly bool) ([]model.LoanRow, error) {
	q := url.Values{}
	if overdueOnly {
		q.Set("overdue", "true")
	}
	var rows []model.LoanRow
	err := r.client.do(ctx, call{method: http.MethodGet, path: "/api/reports/loans", query: q, auth: true}, &rows)
	if err != nil {
		return nil, mapStatus(err)
	}
	return rows, nil
}

func (r *ReportClient) OverdueClients(ctx context.Context) ([]model.OverdueClientRow, error) {
	var rows []model.OverdueClientRow
	err := r.client.do(ctx, call{method: http.MethodGet, path: "/api/reports/overdue-clients", auth: true}, &rows)
	if err != nil {
		return nil, mapStatus(err)
	}
	return rows, nil
}

func (r *ReportClient) TopTools(ctx context.Context, limit int) ([]model.TopToolRow, error) {
	q := url.Values{"limit": []string{strconv.Itoa(limit)}}
	var rows []model.TopToolRow
	err := r.client.do(ctx, call{method: http.MethodGet, path: "/api/reports/top-tools", query: q, auth: true}, &rows)
	if err != nil {
		return nil, mapStatus(err)
	}
	return rows, nil
}

func (r *ReportClient) ClientStatuses(ctx context.Context) ([]model.ClientStatusRow, error) {
	var rows []model.ClientStatusRow
	err := r.client.do(ctx, call{method: http.MethodGet, path: "/api/reports/client-statuses", auth: true}, &rows)
	if err != nil {
		return nil, mapStatus(err)
	}
	return rows, nil
}
