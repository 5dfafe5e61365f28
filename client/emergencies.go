package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/swift-aid/admin-console/models"
)

// EmergencyQuery holds the server-side query parameters for the paginated
// emergencies list. Zero values are omitted from the request.
type EmergencyQuery struct {
	Page     int
	Limit    int
	Status   string
	Severity string
	Type     string
}

func (q EmergencyQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Severity != "" {
		v.Set("severity", q.Severity)
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	return v
}

// Emergencies fetches one page of the emergencies list, unwrapping the
// {data: ...} envelope
func (c *Client) Emergencies(ctx context.Context, query EmergencyQuery) (*models.EmergencyList, error) {
	var envelope struct {
		Data models.EmergencyList `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/admin/emergencies", query.values(), nil, true, "Failed to fetch emergencies", &envelope)
	if err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// OngoingEmergencies fetches the live-tracking payload, unwrapping the
// {data: ...} envelope
func (c *Client) OngoingEmergencies(ctx context.Context) (*models.OngoingEmergencies, error) {
	var envelope struct {
		Data models.OngoingEmergencies `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/admin/emergencies/ongoing", nil, nil, true, "Failed to fetch ongoing emergencies", &envelope)
	if err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
