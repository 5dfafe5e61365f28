package client

import (
	"context"
	"net/http"

	"github.com/swift-aid/admin-console/models"
)

// Dashboard fetches the admin dashboard payload, unwrapping the {data: ...}
// envelope this route uses
func (c *Client) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var envelope struct {
		Data models.Dashboard `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, nil, true, "Failed to fetch dashboard data", &envelope)
	if err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
