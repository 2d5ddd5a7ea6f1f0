package toolrent

import (
	"context"
	"net/http"
	"strconv"

	"github.com/toolrent/admin-gateway/internal/domain/model"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// ClientRegistry implements ports.ClientDirectory against /api/clients.
type ClientRegistry struct {
	client *Client
}

// NewClientRegistry wraps a backend client.
func NewClientRegistry(client *Client) *ClientRegistry {
	return &ClientRegistry{client: client}
}

var _ ports.ClientDirectory = (*ClientRegistry)(nil)

func (c *ClientRegistry) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := c.client.do(ctx, call{method: http.MethodGet, path: "/api/clients", auth: true}, &clients)
	if err != nil {
		return nil, mapStatus(err)
	}
	return clients, nil
}

func (c *ClientRegistry) Get(ctx context.Context, id int64) (model.Client, error) {
	var cl model.Client
	err := c.client.do(ctx, call{method: http.MethodGet, path: clientPath(id), auth: true}, &cl)
	if err != nil {
		return model.Client{}, mapStatus(err)
	}
	return cl, nil
}

func (c *ClientRegistry) Create(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	var cl model.Client
	err := c.client.do(ctx, call{method: http.MethodPost, path: "/api/clients", body: req, auth: true}, &cl)
	if err != nil {
		return model.Client{}, mapStatus(err)
	}
	return cl, nil
}

func (c *ClientRegistry) Update(ctx context.Context, id int64, req model.UpdateClientRequest) (model.Client, error) {
	var cl model.Client
	err := c.client.do(ctx, call{method: http.MethodPatch, path: clientPath(id), body: req, auth: true}, &cl)
	if err != nil {
		return model.Client{}, mapStatus(err)
	}
	return cl, nil
}

func clientPath(id int64) string {
	return "/api/clients/" + strconv.FormatInt(id, 10)
}
