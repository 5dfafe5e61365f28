package transforms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swift-aid/admin-console/models"
	"github.com/swift-aid/admin-console/transforms"
)

func TestEnrichRespondersMatch(t *testing.T) {
	e := &models.Emergency{
		AgencyResponders: []models.AgencyResponder{
			{ID: "r1", Name: "A"},
		},
		SelectedResponders: models.SelectedResponders{
			FireTrucks: []models.SelectedResponder{
				{ResponderID: "r1", TravelTime: 120},
			},
		},
	}

	enriched := transforms.EnrichResponders(e)
	assert.Len(t, enriched, 1)
	assert.Equal(t, "A", enriched[0].Name)
	assert.Equal(t, "fire_trucks", enriched[0].ResponderType)
	if assert.NotNil(t, enriched[0].TravelTime) {
		assert.Equal(t, 120, *enriched[0].TravelTime)
	}
}

func TestEnrichRespondersDropsUnmatchedSelection(t *testing.T) {
	e := &models.Emergency{
		SelectedResponders: models.SelectedResponders{
			Ambulances: []models.SelectedResponder{
				{ResponderID: "r9", TravelTime: 300},
			},
		},
	}

	enriched := transforms.EnrichResponders(e)
	assert.Empty(t, enriched)
}

func TestEnrichRespondersUnmatchedAgencyKeepsNilFields(t *testing.T) {
	e := &models.Emergency{
		AgencyResponders: []models.AgencyResponder{
			{ID: "r1", Name: "A"},
			{ID: "r2", Name: "B"},
		},
		SelectedResponders: models.SelectedResponders{
			PoliceUnits: []models.SelectedResponder{
				{ResponderID: "r2", TravelTime: 240},
			},
		},
	}

	enriched := transforms.EnrichResponders(e)
	assert.Len(t, enriched, 2)

	// order follows agency_responders
	assert.Equal(t, "r1", enriched[0].ID)
	assert.Empty(t, enriched[0].ResponderType)
	assert.Nil(t, enriched[0].TravelTime)

	assert.Equal(t, "police_units", enriched[1].ResponderType)
	if assert.NotNil(t, enriched[1].TravelTime) {
		assert.Equal(t, 240, *enriched[1].TravelTime)
	}
}

func TestEnrichRespondersNeverInventsEntries(t *testing.T) {
	e := &models.Emergency{
		AgencyResponders: []models.AgencyResponder{
			{ID: "r1"}, {ID: "r2"}, {ID: "r3"},
		},
		SelectedResponders: models.SelectedResponders{
			FireTrucks: []models.SelectedResponder{
				{ResponderID: "r1", TravelTime: 60},
				{ResponderID: "r4", TravelTime: 90},
			},
		},
	}

	enriched := transforms.EnrichResponders(e)
	assert.Len(t, enriched, len(e.AgencyResponders))
	for i, er := range enriched {
		assert.Equal(t, e.AgencyResponders[i].ID, er.ID)
	}
}

func TestEnrichRespondersNilEmergency(t *testing.T) {
	assert.Empty(t, transforms.EnrichResponders(nil))
}
