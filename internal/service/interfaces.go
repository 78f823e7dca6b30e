// Package service holds the business logic of the offline agent: the local
// store access layer, the asset cache, the sync engine and the session
// bridge that drives it.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/mapster-agent/internal/assets"
	"github.com/MKhiriev/mapster-agent/models"
)

// AppInfoService reports static information about the running agent.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ItineraryStore is the access layer over the local itinerary store used by
// offline pages and the sync engine.
type ItineraryStore interface {
	// GetAll returns every record, tombstones included. Store failures are
	// logged and reported as an empty result.
	GetAll(ctx context.Context) []models.Itinerary

	// Active returns the records that are not tombstones. Fails soft like
	// GetAll.
	Active(ctx context.Context) []models.Itinerary

	// Get returns one record. ErrItineraryNotFound is returned when the id is
	// unknown, including for tombstones.
	Get(ctx context.Context, id string) (models.Itinerary, error)

	// UpsertMany inserts or replaces records by id in one transaction. A
	// stored record is never replaced by an older copy. Empty input is a
	// no-op.
	UpsertMany(ctx context.Context, items ...models.Itinerary) error

	// Clear removes every record.
	Clear(ctx context.Context) error

	// Watermark returns the greatest LastModified over all records or
	// models.MinWatermark for an empty store.
	Watermark(ctx context.Context) (models.Watermark, error)
}

// AssetCache is the versioned cache of static application resources.
type AssetCache interface {
	// Version returns the cache generation tag.
	Version() string

	// Manifest returns the asset manifest the cache installs.
	Manifest() assets.Manifest

	// Install fetches every manifest URL and stores the whole generation at
	// once. Any failure leaves the store untouched.
	Install(ctx context.Context) error

	// Activate deletes every generation except the current one and starts
	// serving the current one immediately.
	Activate(ctx context.Context) error

	// Match returns the cached response for requestKey (path plus query).
	Match(ctx context.Context, requestKey string) (models.CachedResponse, bool)
}

// SyncService runs incremental sync passes against the origin.
type SyncService interface {
	// Pass fetches every record modified after the local watermark and
	// upserts it. Errors are logged and returned; nothing is retried.
	Pass(ctx context.Context) error
}

// SyncJob is the single periodic trigger of sync passes.
type SyncJob interface {
	// Start launches the timer. It is a no-op when the timer is already
	// running. On every tick a pass runs only if guard returns true.
	Start(ctx context.Context, interval time.Duration, guard func() bool)

	// Stop halts the timer and waits for its goroutine to exit. A pass
	// already in flight is not cancelled. It is a no-op when the timer is
	// not running.
	Stop()

	// Wait blocks until every timer-fired pass has returned.
	Wait()

	// Running reports whether the timer is active.
	Running() bool
}

// SessionBridge reacts to messages from the foreground application.
type SessionBridge interface {
	// Handle routes msg by kind. ErrUnknownMessage is returned for anything
	// else.
	Handle(ctx context.Context, msg models.Message) error

	// RefreshLoginStatus asks the origin for the login state of the relayed
	// session and starts the timer when it is logged in. It never logs out
	// and is a no-op while no session has been relayed.
	RefreshLoginStatus(ctx context.Context) error

	// LoggedIn reports the last relayed login state.
	LoggedIn() bool

	// Shutdown stops the timer and waits for in-flight on-demand passes.
	Shutdown()
}

// NavigationService builds directions links for stored itineraries.
type NavigationService interface {
	Navigation(ctx context.Context, id string, mode models.TravelMode) (models.Navigation, error)
}
