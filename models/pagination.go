package models

// Pagination holds the cursor attached to paginated list payloads. It is
// recomputed from each fetch response and never mutated locally.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalCount  int `json:"total_count"`
	PerPage     int `json:"per_page"`
}
