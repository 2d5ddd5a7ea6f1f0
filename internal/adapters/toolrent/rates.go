package toolrent

import (
	"context"
	"net/http"

	"github.com/toolrent/admin-gateway/internal/domain/model"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// RateClient implements ports.RateSchedule against /api/rates.
type RateClient struct {
	client *Client
}

// NewRateClient wraps a backend client.
func NewRateClient(client *Client) *RateClient {
	return &RateClient{client: client}
}

var _ ports.RateSchedule = (*RateClient)(nil)

func (r *RateClient) Current(ctx context.Context) (model.Rate, error) {
	var rate model.Rate
	err := r.client.do(ctx, call{method: http.MethodGet, path: "/api/rates/current", auth: true}, &rate)
	if err != nil {
		return model.Rate{}, mapStatus(err)
	}
	return rate, nil
}

func (r *RateClient) History(ctx context.Context) ([]model.Rate, error) {
	var rates []model.Rate
	err := r.client.do(ctx, call{method: http.MethodGet, path: "/api/rates/history", auth: true}, &rates)
	if err != nil {
		return nil, mapStatus(err)
	}
	return rates, nil
}

func (r *RateClient) Update(ctx context.Context, req model.UpdateRateRequest) (model.Rate, error) {
	var rate model.Rate
	err := r.client.do(ctx, call{method: http.MethodPut, path: "/api/rates", body: req, auth: true}, &rate)
	if err != nil {
		return model.Rate{}, mapStatus(err)
	}
	return rate, nil
}
