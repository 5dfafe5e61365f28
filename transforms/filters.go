package transforms

import (
	"strings"

	"github.com/swift-aid/admin-console/models"
)

// FilterAll is the select-widget value meaning "no filtering on this field"
const FilterAll = "all"

// FilterSet is the emergencies view's client-side filter state. It is
// ephemeral, never sent to the server, and only narrows the currently loaded
// page, so filters do not span pagination boundaries.
type FilterSet struct {
	SearchTerm string
	Status     string
	Severity   string
	Type       string
}

// Active reports whether any filter narrows the list
func (f FilterSet) Active() bool {
	return f.SearchTerm != "" ||
		filterSet(f.Status) ||
		filterSet(f.Severity) ||
		filterSet(f.Type)
}

func filterSet(v string) bool {
	return v != "" && v != FilterAll
}

// FilterEmergencies retains the records matching all active filters: a
// case-insensitive substring match on description, reporter name, or
// emergency type for the search term, and exact matches for status, severity,
// and type. With no active filters the input is returned unchanged.
func FilterEmergencies(emergencies []models.Emergency, f FilterSet) []models.Emergency {
	if !f.Active() {
		return emergencies
	}

	search := strings.ToLower(f.SearchTerm)
	filtered := make([]models.Emergency, 0, len(emergencies))
	for _, e := range emergencies {
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if filterSet(f.Status) && e.Status != f.Status {
			continue
		}
		if filterSet(f.Severity) && e.Severity != f.Severity {
			continue
		}
		if filterSet(f.Type) && e.EmergencyType != f.Type {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func matchesSearch(e models.Emergency, search string) bool {
	return strings.Contains(strings.ToLower(e.Description), search) ||
		strings.Contains(strings.ToLower(e.Reporter.Name), search) ||
		strings.Contains(strings.ToLower(e.EmergencyType), search)
}

// CountBySeverity returns how many records carry the given severity, used by
// the list view's quick-stat cards
func CountBySeverity(emergencies []models.Emergency, severity string) int {
	count := 0
	for _, e := range emergencies {
		if e.Severity == severity {
			count++
		}
	}
	return count
}

// CountByStatus returns how many records carry the given status
func CountByStatus(emergencies []models.Emergency, status string) int {
	count := 0
	for _, e := range emergencies {
		if e.Status == status {
			count++
		}
	}
	return count
}
