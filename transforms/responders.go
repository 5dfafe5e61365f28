package transforms

import "github.com/swift-aid/admin-console/models"

// EnrichedResponder is an agency responder annotated with the category and
// travel time the dispatch selection assigned it. Both stay unset when the
// responder has no matching selection entry.
type EnrichedResponder struct {
	models.AgencyResponder
	ResponderType string `json:"responder_type,omitempty"`
	TravelTime    *int   `json:"travel_time,omitempty"`
}

// EnrichResponders joins an emergency's agency responders with its selected
// responders by exact identifier match. The agency list is the source of
// truth for who is actually assigned: output order follows it, and selection
// entries without a matching agency record are dropped.
func EnrichResponders(e *models.Emergency) []EnrichedResponder {
	if e == nil {
		return []EnrichedResponder{}
	}

	type selection struct {
		category   string
		travelTime int
	}
	selections := map[string]selection{}
	for _, cat := range e.SelectedResponders.Categories() {
		for _, sr := range cat.Responders {
			if _, seen := selections[sr.ResponderID]; seen {
				continue
			}
			selections[sr.ResponderID] = selection{category: cat.Name, travelTime: sr.TravelTime}
		}
	}

	enriched := make([]EnrichedResponder, 0, len(e.AgencyResponders))
	for _, ar := range e.AgencyResponders {
		er := EnrichedResponder{AgencyResponder: ar}
		if sel, ok := selections[ar.ID]; ok {
			er.ResponderType = sel.category
			tt := sel.travelTime
			er.TravelTime = &tt
		}
		enriched = append(enriched, er)
	}
	return enriched
}
