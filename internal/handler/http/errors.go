// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by request decoding. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidMessageBody is returned when a posted message is not a single
	// JSON object.
	ErrInvalidMessageBody = errors.New("invalid message body")

	// ErrEmptyItineraryID is returned when the {id} path parameter is blank.
	ErrEmptyItineraryID = errors.New("empty itinerary id")
)
