package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/mapster-agent/models"
)

const directionsBaseURL = "https://www.google.com/maps/dir/"

type navigationService struct {
	store ItineraryStore
}

// NewNavigationService builds Google Maps directions links for itineraries
// held in the local store, so navigation works without the origin.
func NewNavigationService(itineraries ItineraryStore) NavigationService {
	return &navigationService{store: itineraries}
}

// Navigation routes to the last waypoint through every earlier one. An empty
// mode means driving.
func (s *navigationService) Navigation(ctx context.Context, id string, mode models.TravelMode) (models.Navigation, error) {
	if mode == "" {
		mode = models.TravelModeDriving
	}
	if !mode.Valid() {
		return models.Navigation{}, fmt.Errorf("%w: %q", ErrInvalidTravelMode, mode)
	}

	item, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Navigation{}, err
	}

	link, err := directionsURL(item.Waypoints, mode)
	if err != nil {
		return models.Navigation{}, fmt.Errorf("itinerary %s: %w", id, err)
	}

	return models.Navigation{ItineraryID: item.ID, Mode: mode, URL: link}, nil
}

func directionsURL(waypoints []models.Waypoint, mode models.TravelMode) (string, error) {
	if len(waypoints) == 0 {
		return "", ErrNoWaypoints
	}

	destination := waypoints[len(waypoints)-1]
	stops := make([]string, 0, len(waypoints)-1)
	for _, wp := range waypoints[:len(waypoints)-1] {
		stops = append(stops, coordinates(wp))
	}

	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", coordinates(destination))
	q.Set("travelmode", string(mode))
	if len(stops) > 0 {
		q.Set("waypoints", strings.Join(stops, "|"))
	}

	return directionsBaseURL + "?" + q.Encode(), nil
}

func coordinates(wp models.Waypoint) string {
	return strconv.FormatFloat(wp.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(wp.Longitude, 'f', -1, 64)
}
