package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mapster-agent/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-assigned itinerary identifier.
	FieldID = "id"

	// FieldLastModified targets the timestamp that drives the sync watermark.
	FieldLastModified = "last_modified"

	// FieldWaypoints targets the coordinates of every waypoint.
	FieldWaypoints = "waypoints"
)

// structFields maps field constants onto the struct fields carrying the
// `validate` tags in models.Itinerary.
var structFields = map[string]string{
	FieldID:           "ID",
	FieldLastModified: "LastModified",
}

// ItineraryValidator validates itineraries received from the sync endpoint.
// Rules live in the `validate` struct tags of models.Itinerary and
// models.Waypoint and are evaluated by go-playground/validator.
type ItineraryValidator struct {
	validate *validator.Validate
}

// NewItineraryValidator constructs an ItineraryValidator and returns it as
// the Validator interface.
func NewItineraryValidator() Validator {
	return &ItineraryValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Itinerary / *models.Itinerary
//   - []models.Itinerary
//
// Returns ErrUnsupportedType for anything else. When fields is empty every
// rule is checked.
func (v *ItineraryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Itinerary:
		return v.validateItinerary(ctx, value, fields...)
	case *models.Itinerary:
		if value == nil {
			return ErrInvalidItinerary
		}
		return v.validateItinerary(ctx, *value, fields...)
	case []models.Itinerary:
		for i := range value {
			if err := v.validateItinerary(ctx, value[i], fields...); err != nil {
				return fmt.Errorf("itinerary #%d (%q): %w", i, value[i].ID, err)
			}
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *ItineraryValidator) validateItinerary(ctx context.Context, it models.Itinerary, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldLastModified, FieldWaypoints}
	}

	var partial []string
	checkWaypoints := false
	for _, f := range fields {
		if f == FieldWaypoints {
			checkWaypoints = true
			continue
		}
		name, ok := structFields[f]
		if !ok {
			return ErrUnknownField
		}
		partial = append(partial, name)
	}

	if len(partial) > 0 {
		if err := v.validate.StructPartialCtx(ctx, it, partial...); err != nil {
			return translate(err)
		}
	}

	if checkWaypoints {
		for i, wp := range it.Waypoints {
			if err := v.validate.StructCtx(ctx, wp); err != nil {
				return fmt.Errorf("waypoint #%d: %w", i, translate(err))
			}
		}
	}

	return nil
}

// translate turns the first validator.FieldError into a package sentinel.
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidItinerary, err)
	}

	fe := fieldErrs[0]
	switch fe.StructField() {
	case "ID":
		return ErrInvalidItineraryID
	case "LastModified":
		return ErrMissingLastModified
	case "Latitude", "Longitude":
		return fmt.Errorf("%w: %s=%v", ErrCoordinateOutOfRange, fe.Field(), fe.Value())
	default:
		return fmt.Errorf("%w: %s failed %q", ErrInvalidItinerary, fe.Namespace(), fe.Tag())
	}
}
