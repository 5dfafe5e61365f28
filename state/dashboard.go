package state

import (
	"context"

	"github.com/swift-aid/admin-console/client"
	"github.com/swift-aid/admin-console/models"
)

// DashboardStore owns the dashboard domain's request state. Failed fetches
// keep the last-known payload so the cards stay populated behind the error
// panel.
type DashboardStore struct {
	api       *client.Client
	container *Container[models.Dashboard]
}

// NewDashboardStore creates the store over the given API client
func NewDashboardStore(api *client.Client) *DashboardStore {
	return &DashboardStore{
		api:       api,
		container: NewContainer[models.Dashboard](RetainOnFailure),
	}
}

// Fetch loads the dashboard payload
func (s *DashboardStore) Fetch(ctx context.Context) error {
	return s.container.Fetch(ctx, func(ctx context.Context) (*models.Dashboard, error) {
		return s.api.Dashboard(ctx)
	})
}

// State returns the current view of the container
func (s *DashboardStore) State() View[models.Dashboard] {
	return s.container.Snapshot()
}

// ClearError drops the current error message
func (s *DashboardStore) ClearError() {
	s.container.ClearError()
}

// Reset clears payload and error, used on view teardown
func (s *DashboardStore) Reset() {
	s.container.Reset()
}
