package store

import (
	"context"
	"time"

	"github.com/MKhiriev/mapster-agent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItineraryRepository is the low-level local store of itineraries keyed by
// their server identifier.
type ItineraryRepository interface {
	GetAll(ctx context.Context) ([]models.Itinerary, error)
	Get(ctx context.Context, id string) (models.Itinerary, error)
	// UpsertMany keeps the stored row when the incoming last-modified is
	// older.
	UpsertMany(ctx context.Context, items ...models.Itinerary) error
	Clear(ctx context.Context) error
	// MaxLastModified reports the greatest LastModified over every record,
	// tombstones included. ok is false when the store is empty.
	MaxLastModified(ctx context.Context) (max time.Time, ok bool, err error)
}

// AssetCacheRepository persists named cache generations of responses.
type AssetCacheRepository interface {
	// PutAll writes every entry under cacheName in one transaction.
	PutAll(ctx context.Context, cacheName string, entries ...models.CacheEntry) error
	// Match looks requestKey up in every generation, preferring preferred.
	Match(ctx context.Context, requestKey, preferred string) (models.CacheEntry, error)
	CacheNames(ctx context.Context) ([]string, error)
	DeleteCache(ctx context.Context, cacheName string) error
}
