package transforms

import "github.com/swift-aid/admin-console/models"

// Period selects which trend bucket feeds the area chart
type Period string

// Chart periods offered by the dashboard
const (
	PeriodToday   Period = "today"
	Period7Days   Period = "7d"
	Period30Days  Period = "30d"
	Period3Months Period = "3m"
)

// TrendPoint is one chart datapoint. For the today bucket Date is an
// hour-of-day label ("1 AM"), for the others a calendar date ("Aug 11").
type TrendPoint struct {
	Date  string
	Count int
}

// TrendSeries flattens the period-keyed trend buckets into the flat series
// the area chart renders. A nil payload or missing bucket yields an empty
// series, never an error, so the chart falls back to its empty state.
func TrendSeries(trends *models.Trends, period Period) []TrendPoint {
	if trends == nil {
		return []TrendPoint{}
	}

	switch period {
	case PeriodToday:
		points := make([]TrendPoint, 0, len(trends.Today.HourlyData))
		for _, h := range trends.Today.HourlyData {
			points = append(points, TrendPoint{Date: h.Time, Count: h.Count})
		}
		return points
	case Period7Days:
		return dailyPoints(trends.Last7Days)
	case Period30Days:
		return dailyPoints(trends.Last30Days)
	case Period3Months:
		return dailyPoints(trends.Last3Months)
	}
	return []TrendPoint{}
}

func dailyPoints(entries []models.TrendEntry) []TrendPoint {
	points := make([]TrendPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, TrendPoint{Date: e.Date, Count: e.Count})
	}
	return points
}
