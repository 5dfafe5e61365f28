package tracking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swift-aid/admin-console/models"
	"github.com/swift-aid/admin-console/tracking"
)

func ongoingPayload() *models.OngoingEmergencies {
	return &models.OngoingEmergencies{
		Emergencies: []models.Emergency{
			{
				ID: "e1",
				EmergencyLocation: models.Location{
					Type:        "Point",
					Coordinates: []float64{-0.1838044, 5.6486909},
				},
				AgencyResponders: []models.AgencyResponder{
					{ID: "r1", Name: "Captain James Mensah", Status: "en_route"},
					{ID: "r2", Name: "Officer Sarah Owusu", Status: "en_route"},
				},
			},
			{
				ID: "e2",
				EmergencyLocation: models.Location{
					Type:        "Point",
					Coordinates: []float64{-0.21, 5.60},
				},
				AgencyResponders: []models.AgencyResponder{
					{ID: "r3", Name: "Abena"},
				},
			},
		},
		Count: 2,
	}
}

func TestTrackerDefaultViewport(t *testing.T) {
	tr := tracking.NewTracker()
	assert.Equal(t, tracking.DefaultViewport, tr.Viewport())
	assert.Nil(t, tr.Tracked())
	assert.Empty(t, tr.Markers())
}

func TestTrackerAppliesFirstIncident(t *testing.T) {
	tr := tracking.NewTracker()
	tr.Apply(ongoingPayload())

	tracked := tr.Tracked()
	assert.NotNil(t, tracked)
	assert.Equal(t, "e1", tracked.ID)

	vp := tr.Viewport()
	assert.InDelta(t, -0.1838044, vp.Longitude, 1e-9)
	assert.InDelta(t, 5.6486909, vp.Latitude, 1e-9)
	assert.InDelta(t, 15, vp.Zoom, 1e-9)
}

func TestTrackerPollRefreshKeepsSelection(t *testing.T) {
	tr := tracking.NewTracker()
	payload := ongoingPayload()
	tr.Apply(payload)
	tr.Track(payload.Emergencies[1])

	// a later poll must not steal the operator's selection
	tr.Apply(ongoingPayload())
	assert.Equal(t, "e2", tr.Tracked().ID)
}

func TestTrackerMarkersFromTrackedOnly(t *testing.T) {
	tr := tracking.NewTracker()
	payload := ongoingPayload()
	tr.Apply(payload)

	markers := tr.Markers()
	assert.Len(t, markers, 2)
	assert.Equal(t, "r1", markers[0].ID)

	tr.Track(payload.Emergencies[1])
	markers = tr.Markers()
	assert.Len(t, markers, 1)
	assert.Equal(t, "r3", markers[0].ID)
}

func TestTrackerEmptyPayload(t *testing.T) {
	tr := tracking.NewTracker()
	tr.Apply(nil)
	tr.Apply(&models.OngoingEmergencies{})

	assert.Nil(t, tr.Tracked())
	assert.Equal(t, tracking.DefaultViewport, tr.Viewport())
}

func TestTrackerReset(t *testing.T) {
	tr := tracking.NewTracker()
	tr.Apply(ongoingPayload())
	tr.Reset()

	assert.Nil(t, tr.Tracked())
	assert.Equal(t, tracking.DefaultViewport, tr.Viewport())
	assert.Empty(t, tr.Markers())
}
