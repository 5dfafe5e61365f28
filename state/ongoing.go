package state

import (
	"context"

	"github.com/swift-aid/admin-console/client"
	"github.com/swift-aid/admin-console/models"
)

// OngoingStore owns the live-tracking domain's request state. A failed poll
// keeps the last-known incidents on the map rather than blanking it.
type OngoingStore struct {
	api       *client.Client
	container *Container[models.OngoingEmergencies]
}

// NewOngoingStore creates the store over the given API client
func NewOngoingStore(api *client.Client) *OngoingStore {
	return &OngoingStore{
		api:       api,
		container: NewContainer[models.OngoingEmergencies](RetainOnFailure),
	}
}

// Fetch loads the ongoing emergencies payload
func (s *OngoingStore) Fetch(ctx context.Context) error {
	return s.container.Fetch(ctx, func(ctx context.Context) (*models.OngoingEmergencies, error) {
		return s.api.OngoingEmergencies(ctx)
	})
}

// State returns the current view of the container
func (s *OngoingStore) State() View[models.OngoingEmergencies] {
	return s.container.Snapshot()
}

// ClearError drops the current error message
func (s *OngoingStore) ClearError() {
	s.container.ClearError()
}

// Reset clears payload and error, used on view teardown
func (s *OngoingStore) Reset() {
	s.container.Reset()
}
