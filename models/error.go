package models

// ErrorResponse holds the structured error body returned by the backend on
// non-2xx responses
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
