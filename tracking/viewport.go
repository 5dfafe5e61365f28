package tracking

import (
	"sync"

	"github.com/swift-aid/admin-console/models"
)

// Viewport is the map camera state
type Viewport struct {
	Longitude float64
	Latitude  float64
	Zoom      float64
}

// DefaultViewport centers the map on Accra before any incident is tracked
var DefaultViewport = Viewport{Longitude: -0.1838044, Latitude: 5.6486909, Zoom: 12}

// Zoom level applied when recentering onto a tracked incident
const trackedZoom = 15

// Tracker correlates the live-tracking payload with the map: which incident
// is tracked, where the camera sits, and which responder markers show. The
// markers come from the tracked incident's embedded agency responders, never
// from a separate roster fetch.
type Tracker struct {
	mu       sync.Mutex
	viewport Viewport
	tracked  *models.Emergency
}

// NewTracker creates a tracker at the default viewport
func NewTracker() *Tracker {
	return &Tracker{viewport: DefaultViewport}
}

// Apply ingests a fresh ongoing-emergencies payload. The first incident
// becomes tracked (and the camera recenters) only when nothing is tracked
// yet, so a poll refresh never steals the operator's selection.
func (t *Tracker) Apply(payload *models.OngoingEmergencies) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if payload == nil || len(payload.Emergencies) == 0 {
		return
	}
	if t.tracked != nil {
		return
	}
	first := payload.Emergencies[0]
	t.track(first)
}

// Track recenters the camera on the given incident and restricts responder
// markers to its assigned responders
func (t *Tracker) Track(e models.Emergency) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.track(e)
}

func (t *Tracker) track(e models.Emergency) {
	t.tracked = &e
	if e.EmergencyLocation.Valid() {
		t.viewport = Viewport{
			Longitude: e.EmergencyLocation.Longitude(),
			Latitude:  e.EmergencyLocation.Latitude(),
			Zoom:      trackedZoom,
		}
	}
}

// Tracked returns the tracked incident, nil when none
func (t *Tracker) Tracked() *models.Emergency {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracked
}

// Viewport returns the current camera state
func (t *Tracker) Viewport() Viewport {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.viewport
}

// Markers returns the responder markers to draw: the tracked incident's
// agency responders, empty when nothing is tracked
func (t *Tracker) Markers() []models.AgencyResponder {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tracked == nil {
		return []models.AgencyResponder{}
	}
	return t.tracked.AgencyResponders
}

// Reset returns the tracker to its initial state, used on view teardown
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tracked = nil
	t.viewport = DefaultViewport
}
