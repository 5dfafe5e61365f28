package models

// Responder statuses as reported by the roster endpoint
const (
	ResponderAvailable = "available"
	ResponderBusy      = "busy"
	ResponderOffline   = "offline"
)

// Responder holds the structure for a roster responder document
type Responder struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	BadgeNumber     string   `json:"badgeNumber"`
	Status          string   `json:"status"`
	CurrentLocation Location `json:"current_location"`
}

// NewResponderInput holds the admin "add responder" form. Validation runs
// client side before any request is issued.
type NewResponderInput struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=6"`
	Phone           string   `json:"phone" validate:"required"`
	BadgeNumber     string   `json:"badgeNumber" validate:"required"`
	Agency          string   `json:"agency" validate:"required"`
	AgencyID        string   `json:"agency_id"`
	Status          string   `json:"status"`
	CurrentLocation Location `json:"current_location"`
}

// Default coordinates used when no custom location is supplied (Accra, Ghana)
var DefaultResponderCoordinates = []float64{-0.1826311, 5.6558318}

// CreateResponderResponse holds the create endpoint response envelope
type CreateResponderResponse struct {
	Responder Responder `json:"responder"`
	Message   string    `json:"message"`
}
