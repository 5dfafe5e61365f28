package state

import (
	"context"
	"sync"

	"github.com/swift-aid/admin-console/client"
	"github.com/swift-aid/admin-console/models"
)

// EmergenciesStore owns the paginated emergencies list. The pagination cursor
// rides inside the payload and is recomputed from every fetch response. The
// last query issued is remembered so page navigation re-fetches with the same
// server-side filters.
type EmergenciesStore struct {
	api       *client.Client
	container *Container[models.EmergencyList]

	mu        sync.Mutex
	lastQuery client.EmergencyQuery
}

// NewEmergenciesStore creates the store over the given API client
func NewEmergenciesStore(api *client.Client) *EmergenciesStore {
	return &EmergenciesStore{
		api:       api,
		container: NewContainer[models.EmergencyList](RetainOnFailure),
	}
}

// Fetch loads one page of emergencies with the given query
func (s *EmergenciesStore) Fetch(ctx context.Context, query client.EmergencyQuery) error {
	s.mu.Lock()
	s.lastQuery = query
	s.mu.Unlock()

	return s.container.Fetch(ctx, func(ctx context.Context) (*models.EmergencyList, error) {
		return s.api.Emergencies(ctx, query)
	})
}

// FetchPage re-issues the last query for a different page, leaving every
// other parameter untouched
func (s *EmergenciesStore) FetchPage(ctx context.Context, page int) error {
	s.mu.Lock()
	query := s.lastQuery
	s.mu.Unlock()

	query.Page = page
	return s.Fetch(ctx, query)
}

// Refresh re-issues the last query unchanged
func (s *EmergenciesStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	query := s.lastQuery
	s.mu.Unlock()
	return s.Fetch(ctx, query)
}

// LastQuery returns the most recently issued query
func (s *EmergenciesStore) LastQuery() client.EmergencyQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// Emergencies returns the current page's records, empty when nothing loaded
func (s *EmergenciesStore) Emergencies() []models.Emergency {
	view := s.container.Snapshot()
	if view.Payload == nil {
		return nil
	}
	return view.Payload.Emergencies
}

// Pagination returns the current cursor, zero value when nothing loaded
func (s *EmergenciesStore) Pagination() models.Pagination {
	view := s.container.Snapshot()
	if view.Payload == nil {
		return models.Pagination{}
	}
	return view.Payload.Pagination
}

// State returns the current view of the container
func (s *EmergenciesStore) State() View[models.EmergencyList] {
	return s.container.Snapshot()
}

// ClearError drops the current error message
func (s *EmergenciesStore) ClearError() {
	s.container.ClearError()
}

// Reset clears the list, cursor, and remembered query
func (s *EmergenciesStore) Reset() {
	s.mu.Lock()
	s.lastQuery = client.EmergencyQuery{}
	s.mu.Unlock()
	s.container.Reset()
}
