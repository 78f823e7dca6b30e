package models

// RawWaypoint is the wire form of a [Waypoint].
type RawWaypoint struct {
	Name      string   `json:"name"`
	Latitude  ExtFloat `json:"latitude"`
	Longitude ExtFloat `json:"longitude"`
}

// RawItinerary is a record as returned by GET /api/sync-itineraries. Tombstoned
// records are included so that deletions propagate to the local store.
type RawItinerary struct {
	ID           ExtString     `json:"_id"`
	UserID       ExtString     `json:"user_id"`
	Name         string        `json:"name"`
	Description  *string       `json:"description"`
	Waypoints    []RawWaypoint `json:"waypoints"`
	UploadedAt   ExtTime       `json:"upload_datetime"`
	LastModified ExtTime       `json:"last_modified"`
	NumViews     ExtInt        `json:"num_views"`
	Likes        LikeCount     `json:"likes"`
	Image        ExtBinary     `json:"image"`
	ImageFormat  string        `json:"image_format"`
	Deleted      ExtBool       `json:"deleted"`
}

// Normalize converts the wire record into the plain local-store shape.
func (r RawItinerary) Normalize() Itinerary {
	waypoints := make([]Waypoint, 0, len(r.Waypoints))
	for _, wp := range r.Waypoints {
		waypoints = append(waypoints, Waypoint{
			Name:      wp.Name,
			Latitude:  float64(wp.Latitude),
			Longitude: float64(wp.Longitude),
		})
	}

	var description string
	if r.Description != nil {
		description = *r.Description
	}

	return Itinerary{
		ID:           string(r.ID),
		UserID:       string(r.UserID),
		Name:         r.Name,
		Description:  description,
		Waypoints:    waypoints,
		UploadedAt:   r.UploadedAt.Time(),
		LastModified: r.LastModified.Time(),
		NumViews:     int64(r.NumViews),
		Likes:        int64(r.Likes),
		Image:        []byte(r.Image),
		ImageFormat:  r.ImageFormat,
		Deleted:      bool(r.Deleted),
	}
}
