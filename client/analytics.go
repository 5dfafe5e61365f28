package client

import (
	"context"
	"net/http"

	"github.com/swift-aid/admin-console/models"
)

// Analytics fetches the general analytics payload. The analytics routes keep
// their data envelope on the wire, consumers read through .Data.
func (c *Client) Analytics(ctx context.Context) (*models.Analytics, error) {
	var payload models.Analytics
	err := c.do(ctx, http.MethodGet, "/admin/analytics", nil, nil, true, "Failed to fetch analytics", &payload)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// ResponseTimes fetches the response-time analytics payload
func (c *Client) ResponseTimes(ctx context.Context) (*models.ResponseTimes, error) {
	var payload models.ResponseTimes
	err := c.do(ctx, http.MethodGet, "/admin/analytics/response-times", nil, nil, true, "Failed to fetch response times", &payload)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// ResponderUtilization fetches the responder-utilization analytics payload
func (c *Client) ResponderUtilization(ctx context.Context) (*models.ResponderUtilization, error) {
	var payload models.ResponderUtilization
	err := c.do(ctx, http.MethodGet, "/admin/analytics/responder-utilization", nil, nil, true, "Failed to fetch responder utilization", &payload)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}
