package models

// Analytics holds the general analytics endpoint payload
type Analytics struct {
	Data AnalyticsData `json:"data"`
}

// AnalyticsData holds the performance and trend sections of the payload
type AnalyticsData struct {
	Performance AnalyticsPerformance `json:"performance"`
	Trends      AnalyticsTrends      `json:"trends"`
}

// AnalyticsPerformance holds aggregate figures for the selected period
type AnalyticsPerformance struct {
	TotalEmergencies    int                  `json:"total_emergencies"`
	AverageResponseTime float64              `json:"average_response_time"`
	ResolutionRate      float64              `json:"resolution_rate"`
	ActiveResponders    int                  `json:"active_responders"`
	EmergencyTypes      []EmergencyTypeCount `json:"emergency_types"`
	Regions             []RegionStat         `json:"regions"`
}

// EmergencyTypeCount is one slice of the emergency-type distribution
type EmergencyTypeCount struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RegionStat holds per-region emergency figures
type RegionStat struct {
	Region              string  `json:"region"`
	Emergencies         int     `json:"emergencies"`
	AverageResponseTime float64 `json:"avg_response_time"`
}

// AnalyticsTrends holds percentage deltas versus the previous period
type AnalyticsTrends struct {
	EmergenciesTrend    float64 `json:"emergencies_trend"`
	ResponseTimeTrend   float64 `json:"response_time_trend"`
	ResolutionRateTrend float64 `json:"resolution_rate_trend"`
	RespondersTrend     float64 `json:"responders_trend"`
}

// ResponseTimes holds the response-times analytics endpoint payload
type ResponseTimes struct {
	Data ResponseTimesData `json:"data"`
}

// ResponseTimesData holds summary figures (seconds) and the daily trend
type ResponseTimesData struct {
	Fastest float64             `json:"fastest"`
	Average float64             `json:"average"`
	Slowest float64             `json:"slowest"`
	Trends  []ResponseTimePoint `json:"trends"`
}

// ResponseTimePoint is one daily average in the response-time trend
type ResponseTimePoint struct {
	Date        string  `json:"date"`
	AverageTime float64 `json:"average_time"`
}

// ResponderUtilization holds the responder-utilization endpoint payload
type ResponderUtilization struct {
	Data ResponderUtilizationData `json:"data"`
}

// ResponderUtilizationData wraps the responders utilization section
type ResponderUtilizationData struct {
	Responders UtilizationBreakdown `json:"responders"`
}

// UtilizationBreakdown holds per-status counts and the per-responder list
type UtilizationBreakdown struct {
	Available int                `json:"available"`
	Busy      int                `json:"busy"`
	Offline   int                `json:"offline"`
	List      []UtilizationEntry `json:"list"`
}

// UtilizationEntry holds one responder's workload figures
type UtilizationEntry struct {
	Name                  string  `json:"name"`
	Status                string  `json:"status"`
	ActiveIncidents       int     `json:"active_incidents"`
	UtilizationPercentage float64 `json:"utilization_percentage"`
	CompletedToday        int     `json:"completed_today"`
}
