package models

// Admin holds the identity of the signed-in staff member as returned by the
// login endpoint's inner admin document
type Admin struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BadgeNumber string `json:"badgeNumber"`
	Role        string `json:"role"`
	Agency      Agency `json:"agency"`
}

// Agency holds the agency document embedded in the admin identity
type Agency struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Branch string `json:"branch"`
	Type   string `json:"type"`
}

// Credentials holds the login request body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse holds the raw login endpoint response. The admin document
// uses admin_id for its identifier, unlike every other payload in the API.
type LoginResponse struct {
	Admin struct {
		AdminID     string `json:"admin_id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		BadgeNumber string `json:"badgeNumber"`
		Role        string `json:"role"`
		Agency      Agency `json:"agency"`
	} `json:"admin"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// User flattens the login response into the identity stored for the session
func (lr LoginResponse) User() Admin {
	return Admin{
		ID:          lr.Admin.AdminID,
		Name:        lr.Admin.Name,
		Email:       lr.Admin.Email,
		Phone:       lr.Admin.Phone,
		BadgeNumber: lr.Admin.BadgeNumber,
		Role:        lr.Admin.Role,
		Agency:      lr.Admin.Agency,
	}
}
