package client

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/swift-aid/admin-console/models"
)

var validate = validator.New()

// Responders fetches the full responder roster. This route returns the list
// directly, without a data envelope.
func (c *Client) Responders(ctx context.Context) ([]models.Responder, error) {
	var list []models.Responder
	err := c.do(ctx, http.MethodGet, "/admin/responders", nil, nil, true, "Failed to fetch responders", &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CreateResponder validates the form input, fills defaults, and creates the
// responder. Validation failures never reach the network.
func (c *Client) CreateResponder(ctx context.Context, input models.NewResponderInput) (*models.Responder, error) {
	applyResponderDefaults(&input, c.sess.User())

	if err := validateNewResponder(input); err != nil {
		return nil, err
	}

	var resp models.CreateResponderResponse
	err := c.do(ctx, http.MethodPost, "/admin/responders", nil, input, true, "Failed to create responder", &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Responder, nil
}

// applyResponderDefaults mirrors the add-responder form: status defaults to
// available, the location to the agency's home coordinates, and the agency
// fields are prefilled from the signed-in admin
func applyResponderDefaults(input *models.NewResponderInput, admin *models.Admin) {
	if input.Status == "" {
		input.Status = models.ResponderAvailable
	}
	if !input.CurrentLocation.Valid() {
		input.CurrentLocation = models.Location{
			Type:        "Point",
			Coordinates: models.DefaultResponderCoordinates,
		}
	}
	if input.CurrentLocation.Type == "" {
		input.CurrentLocation.Type = "Point"
	}
	if admin != nil && input.Agency == "" {
		input.Agency = admin.Agency.Name
		input.AgencyID = admin.Agency.ID
	}
}

// ValidationError carries per-field form failures keyed by field name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid responder input: %d field(s) failed validation", len(e.Fields))
}

func validateNewResponder(input models.NewResponderInput) error {
	fields := map[string]string{}

	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
	}

	if math.Abs(input.CurrentLocation.Longitude()) > 180 {
		fields["location"] = "Longitude must be between -180 and 180"
	}
	if math.Abs(input.CurrentLocation.Latitude()) > 90 {
		fields["location"] = "Latitude must be between -90 and 90"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Email is invalid"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
