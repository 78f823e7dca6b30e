package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItineraryID   = errors.New("invalid itinerary id")
	ErrMissingLastModified  = errors.New("last modified timestamp is required")
	ErrCoordinateOutOfRange = errors.New("waypoint coordinate out of range")
	ErrInvalidItinerary     = errors.New("invalid itinerary")
)
