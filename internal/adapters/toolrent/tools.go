package toolrent

import (
	"context"
	"net/http"
	"strconv"

	"github.com/toolrent/admin-gateway/internal/domain/model"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// ToolClient implements ports.ToolDirectory against /api/tools.
type ToolClient struct {
	client *Client
}

// NewToolClient wraps a backend client.
func NewToolClient(client *Client) *ToolClient {
	return &ToolClient{client: client}
}

var _ ports.ToolDirectory = (*ToolClient)(nil)

func (t *ToolClient) List(ctx context.Context) ([]model.Tool, error) {
	var tools []model.Tool
	err := t.client.do(ctx, call{method: http.MethodGet, path: "/api/tools", auth: true}, &tools)
	if err != nil {
		return nil, mapStatus(err)
	}
	return tools, nil
}

func (t *ToolClient) Get(ctx context.Context, id int64) (model.Tool, error) {
	var tool model.Tool
	err := t.client.do(ctx, call{method: http.MethodGet, path: toolPath(id), auth: true}, &tool)
	if err != nil {
		return model.Tool{}, mapStatus(err)
	}
	return tool, nil
}

func (t *ToolClient) Create(ctx context.Context, req model.CreateToolRequest) (model.Tool, error) {
	var tool model.Tool
	err := t.client.do(ctx, call{method: http.MethodPost, path: "/api/tools", body: req, auth: true}, &tool)
	if err != nil {
		return model.Tool{}, mapStatus(err)
	}
	return tool, nil
}

func (t *ToolClient) Update(ctx context.Context, id int64, req model.UpdateToolRequest) (model.Tool, error) {
	var tool model.Tool
	err := t.client.do(ctx, call{method: http.MethodPatch, path: toolPath(id), body: req, auth: true}, &tool)
	if err != nil {
		return model.Tool{}, mapStatus(err)
	}
	return tool, nil
}

// Delete asks the backend to decommission a tool. The backend refuses
// when units are loaned out; that refusal surfaces as a validation
// error with the backend's message.
func (t *ToolClient) Delete(ctx context.Context, id int64) error {
	err := t.client.do(ctx, call{method: http.MethodDelete, path: toolPath(id), auth: true}, nil)
	if err != nil {
		return mapStatus(err)
	}
	return nil
}

func toolPath(id int64) string {
	return "/api/tools/" + strconv.FormatInt(id, 10)
}
