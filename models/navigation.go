package models

// TravelMode is a directions mode accepted by the navigation link builder.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
)

// Valid reports whether m is one of the supported modes.
func (m TravelMode) Valid() bool {
	switch m {
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling:
		return true
	default:
		return false
	}
}

// Navigation is the response of the offline navigation endpoint.
type Navigation struct {
	ItineraryID string     `json:"itinerary_id"`
	Mode        TravelMode `json:"mode"`
	URL         string     `json:"url"`
}
