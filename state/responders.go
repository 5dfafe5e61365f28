package state

import (
	"context"
	"sync"

	"github.com/swift-aid/admin-console/client"
	"github.com/swift-aid/admin-console/models"
)

// RespondersStore owns the responder roster plus the separate create-responder
// lifecycle. A successful create appends to the in-memory roster without a
// re-fetch, matching the console's behavior.
type RespondersStore struct {
	api       *client.Client
	container *Container[[]models.Responder]

	mu          sync.Mutex
	creating    bool
	createError string
	selected    *models.Responder
}

// NewRespondersStore creates the store over the given API client
func NewRespondersStore(api *client.Client) *RespondersStore {
	return &RespondersStore{
		api:       api,
		container: NewContainer[[]models.Responder](RetainOnFailure),
	}
}

// Fetch loads the responder roster
func (s *RespondersStore) Fetch(ctx context.Context) error {
	return s.container.Fetch(ctx, func(ctx context.Context) (*[]models.Responder, error) {
		list, err := s.api.Responders(ctx)
		if err != nil {
			return nil, err
		}
		return &list, nil
	})
}

// Create validates and submits a new responder. On success the created record
// is appended to the loaded roster.
func (s *RespondersStore) Create(ctx context.Context, input models.NewResponderInput) (*models.Responder, error) {
	s.mu.Lock()
	s.creating = true
	s.createError = ""
	s.mu.Unlock()

	created, err := s.api.CreateResponder(ctx, input)

	s.mu.Lock()
	s.creating = false
	if err != nil {
		s.createError = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	s.appendResponder(*created)
	return created, nil
}

func (s *RespondersStore) appendResponder(r models.Responder) {
	s.container.Update(func(current *[]models.Responder) *[]models.Responder {
		list := []models.Responder{}
		if current != nil {
			list = append(list, *current...)
		}
		list = append(list, r)
		return &list
	})
}

// Creating reports whether a create request is in flight
func (s *RespondersStore) Creating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creating
}

// CreateError returns the last create failure message
func (s *RespondersStore) CreateError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createError
}

// ClearCreateError drops the create failure message
func (s *RespondersStore) ClearCreateError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createError = ""
}

// Select marks a responder as the current selection
func (s *RespondersStore) Select(r models.Responder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &r
}

// Selected returns the current selection, nil when none
func (s *RespondersStore) Selected() *models.Responder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// ClearSelected drops the current selection
func (s *RespondersStore) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Responders returns the loaded roster, nil when nothing loaded
func (s *RespondersStore) Responders() []models.Responder {
	view := s.container.Snapshot()
	if view.Payload == nil {
		return nil
	}
	return *view.Payload
}

// State returns the current view of the container
func (s *RespondersStore) State() View[[]models.Responder] {
	return s.container.Snapshot()
}

// ClearError drops the current fetch error message
func (s *RespondersStore) ClearError() {
	s.container.ClearError()
}

// Reset clears the roster, selection, and create state
func (s *RespondersStore) Reset() {
	s.mu.Lock()
	s.creating = false
	s.createError = ""
	s.selected = nil
	s.mu.Unlock()
	s.container.Reset()
}
