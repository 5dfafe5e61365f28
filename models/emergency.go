package models

// Severity levels assigned to an emergency by the backend
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// Emergency statuses as reported by the backend
const (
	StatusPending   = "Pending"
	StatusActive    = "Active"
	StatusResolved  = "Resolved"
	StatusCancelled = "Cancelled"
)

// Emergency holds the structure for an emergency incident document
type Emergency struct {
	ID                 string             `json:"_id"`
	EmergencyType      string             `json:"emergency_type"`
	Status             string             `json:"status"`
	Severity           string             `json:"severity"`
	Description        string             `json:"description"`
	EmergencyLocation  Location           `json:"emergency_location"`
	Reporter           Reporter           `json:"user_id"`
	Image              string             `json:"image"`
	AIRecommendations  *AIRecommendations `json:"ai_recommendations,omitempty"`
	SelectedResponders SelectedResponders `json:"selected_responders"`
	AgencyResponders   []AgencyResponder  `json:"agency_responders"`
	ResponseMetrics    *ResponseMetrics   `json:"response_metrics,omitempty"`
	CreatedAt          string             `json:"createdAt"`
	UpdatedAt          string             `json:"updatedAt"`
}

// Location is a GeoJSON point, coordinates ordered [longitude, latitude]
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Longitude returns the first coordinate, 0 when the point is malformed
func (l Location) Longitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[0]
}

// Latitude returns the second coordinate, 0 when the point is malformed
func (l Location) Latitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[1]
}

// Valid reports whether the point carries a usable coordinate pair
func (l Location) Valid() bool {
	return len(l.Coordinates) >= 2
}

// Reporter holds the identity of the person who reported the emergency
type Reporter struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// AIRecommendations holds the dispatch algorithm's assessment of an emergency
type AIRecommendations struct {
	PriorityScore         int                  `json:"priority_score"`
	SeverityLevel         string               `json:"severity_level"`
	EstimatedResponseTime int                  `json:"estimated_response_time"`
	RecommendedResources  RecommendedResources `json:"recommended_resources"`
	Justification         string               `json:"justification"`
}

// RecommendedResources holds unit counts recommended for an emergency
type RecommendedResources struct {
	Ambulances  int `json:"ambulances"`
	FireTrucks  int `json:"fire_trucks"`
	PoliceUnits int `json:"police_units"`
}

// SelectedResponder is one entry of the dispatch selection output: a
// responder reference plus its estimated travel time
type SelectedResponder struct {
	ResponderID string `json:"responder_id"`
	TravelTime  int    `json:"travelTime"`
}

// SelectedResponders groups the dispatch selection output by unit category
type SelectedResponders struct {
	FireTrucks  []SelectedResponder `json:"fire_trucks"`
	Ambulances  []SelectedResponder `json:"ambulances"`
	PoliceUnits []SelectedResponder `json:"police_units"`
}

// Categories returns the selection grouped by category name, in a fixed order
func (s SelectedResponders) Categories() []SelectedCategory {
	return []SelectedCategory{
		{Name: "fire_trucks", Responders: s.FireTrucks},
		{Name: "ambulances", Responders: s.Ambulances},
		{Name: "police_units", Responders: s.PoliceUnits},
	}
}

// SelectedCategory pairs a unit category name with its selected responders
type SelectedCategory struct {
	Name       string
	Responders []SelectedResponder
}

// AgencyResponder is a responder record embedded in an emergency document,
// representing a confirmed assignment
type AgencyResponder struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	BadgeNumber string `json:"badgeNumber"`
	Status      string `json:"status"`
}

// ResponseMetrics holds aggregate response figures for an emergency
type ResponseMetrics struct {
	TotalResponders      int     `json:"total_responders"`
	AverageResponseTime  float64 `json:"average_response_time"`
	FastestResponseTime  float64 `json:"fastest_response_time"`
	RespondersDispatched int     `json:"responders_dispatched"`
}

// EmergencyList holds the paginated emergencies endpoint payload
type EmergencyList struct {
	Emergencies []Emergency       `json:"emergencies"`
	Pagination  Pagination        `json:"pagination"`
	Filters     map[string]string `json:"filters"`
}

// OngoingEmergencies holds the live-tracking endpoint payload
type OngoingEmergencies struct {
	Emergencies []Emergency `json:"emergencies"`
	Count       int         `json:"count"`
}
