// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// agent's HTTP handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording for the foreground application.
package app

const (
	// MsgInvalidMessage is returned when a posted message is not a JSON
	// object.
	MsgInvalidMessage = "invalid message"

	// MsgUnknownMessage is returned when a posted message matches neither the
	// login-status nor the sync-request shape.
	MsgUnknownMessage = "unknown message"

	// MsgNoItineraryIDProvided is returned when the itinerary id path
	// parameter is blank.
	MsgNoItineraryIDProvided = "no itinerary ID provided"

	// MsgItineraryNotFound is returned when the local store holds no active
	// record with the requested id.
	MsgItineraryNotFound = "itinerary not found"

	// MsgNoWaypoints is returned when a navigation link is requested for an
	// itinerary without waypoints.
	MsgNoWaypoints = "itinerary has no waypoints"

	// MsgInvalidTravelMode is returned when the navigation mode is not one
	// of walking, driving or bicycling.
	MsgInvalidTravelMode = "invalid travel mode"

	// MsgInternalServerError is returned when an unexpected agent-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
