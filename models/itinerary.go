// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Waypoint is a single named stop of an itinerary route.
type Waypoint struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Itinerary is the record shape held by the local store for offline viewing.
//
// Records are created and mutated only by the sync engine's bulk upsert and
// destroyed only by a full clear on logout. A record with Deleted set is a
// tombstone: it stays in the store so the watermark keeps moving forward, but
// it is never part of an active listing.
type Itinerary struct {
	// ID is the server-assigned identifier, stable across sync passes.
	ID string `json:"_id" validate:"required"`

	// UserID identifies the owner of the itinerary.
	UserID string `json:"user_id"`

	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Waypoints   []Waypoint `json:"waypoints" validate:"dive"`

	// UploadedAt is the creation timestamp.
	UploadedAt time.Time `json:"upload_datetime"`

	// LastModified is the sole watermark for incremental sync.
	LastModified time.Time `json:"last_modified" validate:"required"`

	NumViews int64 `json:"num_views"`
	Likes    int64 `json:"likes"`

	// Image is the decoded preview image; ImageFormat tags its encoding
	// (e.g. "jpg", "webp").
	Image       []byte `json:"image,omitempty"`
	ImageFormat string `json:"image_format,omitempty"`

	Deleted bool `json:"deleted"`
}

// ActiveItineraries returns the read projection of items that excludes
// tombstones. The input slice is not modified.
func ActiveItineraries(items []Itinerary) []Itinerary {
	active := make([]Itinerary, 0, len(items))
	for _, it := range items {
		if it.Deleted {
			continue
		}
		active = append(active, it)
	}
	return active
}
