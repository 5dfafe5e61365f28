package transforms

import "github.com/swift-aid/admin-console/models"

// AnalyticsSummary is the flattened view model behind the analytics
// headline cards
type AnalyticsSummary struct {
	TotalEmergencies    int
	AverageResponseTime float64
	ResolutionRate      float64
	ActiveResponders    int

	EmergenciesTrend    float64
	ResponseTimeTrend   float64
	ResolutionRateTrend float64
	RespondersTrend     float64

	EmergencyTypes []models.EmergencyTypeCount
	RegionStats    []models.RegionStat
}

// SummarizeAnalytics flattens the nested analytics payload into the card view
// model. A nil payload yields nil so the view renders its empty state.
func SummarizeAnalytics(a *models.Analytics) *AnalyticsSummary {
	if a == nil {
		return nil
	}
	return &AnalyticsSummary{
		TotalEmergencies:    a.Data.Performance.TotalEmergencies,
		AverageResponseTime: a.Data.Performance.AverageResponseTime,
		ResolutionRate:      a.Data.Performance.ResolutionRate,
		ActiveResponders:    a.Data.Performance.ActiveResponders,
		EmergenciesTrend:    a.Data.Trends.EmergenciesTrend,
		ResponseTimeTrend:   a.Data.Trends.ResponseTimeTrend,
		ResolutionRateTrend: a.Data.Trends.ResolutionRateTrend,
		RespondersTrend:     a.Data.Trends.RespondersTrend,
		EmergencyTypes:      a.Data.Performance.EmergencyTypes,
		RegionStats:         a.Data.Performance.Regions,
	}
}

// ResponseTimesView is the view model behind the response-time panel
type ResponseTimesView struct {
	Fastest float64
	Average float64
	Slowest float64
	Daily   []DailyResponseTime
}

// DailyResponseTime is one row in the daily response-time breakdown
type DailyResponseTime struct {
	Date        string
	AverageTime float64
}

// SummarizeResponseTimes reshapes the response-times payload for its panel.
// A nil payload yields nil.
func SummarizeResponseTimes(rt *models.ResponseTimes) *ResponseTimesView {
	if rt == nil {
		return nil
	}
	daily := make([]DailyResponseTime, 0, len(rt.Data.Trends))
	for _, p := range rt.Data.Trends {
		daily = append(daily, DailyResponseTime{Date: p.Date, AverageTime: p.AverageTime})
	}
	return &ResponseTimesView{
		Fastest: rt.Data.Fastest,
		Average: rt.Data.Average,
		Slowest: rt.Data.Slowest,
		Daily:   daily,
	}
}

// UtilizationView is the view model behind the responder-utilization panel
type UtilizationView struct {
	Available  int
	Busy       int
	Offline    int
	Responders []models.UtilizationEntry
}

// SummarizeUtilization reshapes the utilization payload for its panel. A nil
// payload yields nil.
func SummarizeUtilization(u *models.ResponderUtilization) *UtilizationView {
	if u == nil {
		return nil
	}
	return &UtilizationView{
		Available:  u.Data.Responders.Available,
		Busy:       u.Data.Responders.Busy,
		Offline:    u.Data.Responders.Offline,
		Responders: u.Data.Responders.List,
	}
}
