package models

// Dashboard holds the admin dashboard endpoint payload, unwrapped from its
// {data: ...} envelope by the client
type Dashboard struct {
	Overview       Overview        `json:"overview"`
	Performance    Performance     `json:"performance"`
	Emergencies    EmergencyStats  `json:"emergencies"`
	RecentActivity *RecentActivity `json:"recent_activity,omitempty"`
	Agency         *Agency         `json:"agency,omitempty"`
}

// Overview holds the responder-fleet headline numbers
type Overview struct {
	TotalResponders       int     `json:"total_responders"`
	AvailableResponders   int     `json:"available_responders"`
	UnavailableResponders int     `json:"unavailable_responders"`
	AvailabilityRate      float64 `json:"availability_rate"`
	EstimatedVehicles     int     `json:"estimated_vehicles"`
}

// Performance holds aggregate response performance, times in seconds
type Performance struct {
	AverageResponseTime float64 `json:"average_response_time"`
	TotalResponses      int     `json:"total_responses"`
}

// EmergencyStats holds emergency totals and period-bucketed trends
type EmergencyStats struct {
	Totals EmergencyTotals `json:"totals"`
	Trends Trends          `json:"trends"`
}

// EmergencyTotals holds emergency counters for the dashboard cards
type EmergencyTotals struct {
	Today int `json:"today"`
	Total int `json:"total"`
}

// Trends holds the period-keyed emergency trend buckets
type Trends struct {
	Today       TodayTrend   `json:"today"`
	Last7Days   []TrendEntry `json:"last_7_days"`
	Last30Days  []TrendEntry `json:"last_30_days"`
	Last3Months []TrendEntry `json:"last_3_months"`
}

// TodayTrend holds the intraday bucket: hourly counts plus derived insights
type TodayTrend struct {
	HourlyData []HourlyCount `json:"hourly_data"`
	PeakHour   PeakHour      `json:"peak_hour"`
	Summary    DaySummary    `json:"summary"`
	TotalCount int           `json:"total_count"`
}

// HourlyCount is one intraday datapoint, Time formatted like "1 AM"
type HourlyCount struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

// PeakHour marks the busiest hour of the current day
type PeakHour struct {
	Time   string `json:"time"`
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// DaySummary buckets today's emergencies by time of day
type DaySummary struct {
	MorningCount   int `json:"morning_count"`
	AfternoonCount int `json:"afternoon_count"`
	EveningCount   int `json:"evening_count"`
	NightCount     int `json:"night_count"`
}

// TrendEntry is one daily datapoint in the multi-day buckets. The backend
// labels the calendar date "month" ("Aug 11"), kept as-is on the wire.
type TrendEntry struct {
	Date  string `json:"month"`
	Count int    `json:"count"`
}

// RecentActivity holds the latest responder and emergency records shown in
// the dashboard activity table
type RecentActivity struct {
	Responders        []Responder `json:"responders"`
	RecentEmergencies []Emergency `json:"recent_emergencies"`
}
