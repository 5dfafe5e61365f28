package transforms

import (
	"fmt"

	"github.com/swift-aid/admin-console/models"
)

// Response-time target: eight minutes, same threshold the dashboard cards use
const healthyResponseTimeSeconds = 480

// Availability threshold marking the responder fleet trend as positive
const healthyAvailabilityRate = 80

// AvailabilityTrend reports "up" when the fleet availability rate meets the
// healthy threshold, "down" otherwise
func AvailabilityTrend(o models.Overview) string {
	if o.AvailabilityRate >= healthyAvailabilityRate {
		return "up"
	}
	return "down"
}

// ResponseTimeHealthy reports whether the average response time is within
// the eight-minute target
func ResponseTimeHealthy(p models.Performance) bool {
	return p.AverageResponseTime < healthyResponseTimeSeconds
}

// TodayInsights is the view model behind the today-insight cards
type TodayInsights struct {
	PeakHour   models.PeakHour
	Summary    models.DaySummary
	TotalCount int
}

// SummarizeToday extracts the intraday insight card data. A nil payload
// yields nil so the cards render their loading state.
func SummarizeToday(d *models.Dashboard) *TodayInsights {
	if d == nil {
		return nil
	}
	today := d.Emergencies.Trends.Today
	return &TodayInsights{
		PeakHour:   today.PeakHour,
		Summary:    today.Summary,
		TotalCount: today.TotalCount,
	}
}

// ResponderRow is one row of the recent-activity table in responder view
type ResponderRow struct {
	ID      string
	Name    string
	Contact string
	Email   string
	Status  string
	Badge   string
}

// EmergencyRow is one row of the recent-activity table in emergency view
type EmergencyRow struct {
	ID        string
	Type      string
	Severity  string
	Latitude  string
	Longitude string
	Status    string
	Priority  int
}

// RecentResponderRows maps the dashboard's recent responders into table rows
func RecentResponderRows(d *models.Dashboard) []ResponderRow {
	if d == nil || d.RecentActivity == nil {
		return []ResponderRow{}
	}
	rows := make([]ResponderRow, 0, len(d.RecentActivity.Responders))
	for _, r := range d.RecentActivity.Responders {
		rows = append(rows, ResponderRow{
			ID:      r.ID,
			Name:    r.Name,
			Contact: r.Phone,
			Email:   r.Email,
			Status:  r.Status,
			Badge:   r.BadgeNumber,
		})
	}
	return rows
}

// RecentEmergencyRows maps the dashboard's recent emergencies into table
// rows, coordinates formatted to four decimals with "N/A" for malformed
// points
func RecentEmergencyRows(d *models.Dashboard) []EmergencyRow {
	if d == nil || d.RecentActivity == nil {
		return []EmergencyRow{}
	}
	rows := make([]EmergencyRow, 0, len(d.RecentActivity.RecentEmergencies))
	for _, e := range d.RecentActivity.RecentEmergencies {
		row := EmergencyRow{
			ID:        e.ID,
			Type:      e.EmergencyType,
			Severity:  e.Severity,
			Status:    e.Status,
			Latitude:  "N/A",
			Longitude: "N/A",
		}
		if row.Severity == "" {
			row.Severity = "Unknown"
		}
		if e.EmergencyLocation.Valid() {
			row.Latitude = fmt.Sprintf("%.4f", e.EmergencyLocation.Latitude())
			row.Longitude = fmt.Sprintf("%.4f", e.EmergencyLocation.Longitude())
		}
		if e.AIRecommendations != nil {
			row.Priority = e.AIRecommendations.PriorityScore
		}
		rows = append(rows, row)
	}
	return rows
}
