// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the offline agent and
// the mapster origin server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/mapster-agent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the mapster origin server.
type ServerAdapter interface {
	// SetCredentials stores the session cookie header relayed from the
	// foreground application. It is attached to every API request.
	SetCredentials(cookie string)

	// Credentials returns the stored cookie header, or an empty string.
	Credentials() string

	// SyncItineraries fetches every itinerary modified after since, using
	// GET /api/sync-itineraries?lastSyncTime=<since>.
	SyncItineraries(ctx context.Context, since models.Watermark) ([]models.RawItinerary, error)

	// CheckLoginStatus asks GET /check-login-status whether the relayed
	// session is authenticated.
	CheckLoginStatus(ctx context.Context) (bool, error)

	// Fetch forwards an intercepted request to the origin. Any HTTP status is
	// returned as a response; only transport failures are errors.
	Fetch(ctx context.Context, r *http.Request) (models.CachedResponse, error)

	// FetchAsset downloads one manifest path for the asset cache. A non-2xx
	// status is an error.
	FetchAsset(ctx context.Context, path string) (models.CachedResponse, error)
}
