package store

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/mapster-agent/models"
)

// itineraryRow is the column-level shape of an itinerary.
type itineraryRow struct {
	ID           string
	UserID       string
	Name         string
	Description  string
	Waypoints    string
	UploadedAt   string
	LastModified string
	NumViews     int64
	Likes        int64
	Image        []byte
	ImageFormat  string
	Deleted      bool
}

func newItineraryRow(it models.Itinerary) (itineraryRow, error) {
	waypoints := it.Waypoints
	if waypoints == nil {
		waypoints = []models.Waypoint{}
	}

	encoded, err := json.Marshal(waypoints)
	if err != nil {
		return itineraryRow{}, fmt.Errorf("encode waypoints of itinerary %s: %w", it.ID, err)
	}

	return itineraryRow{
		ID:           it.ID,
		UserID:       it.UserID,
		Name:         it.Name,
		Description:  it.Description,
		Waypoints:    string(encoded),
		UploadedAt:   formatStoredTime(it.UploadedAt),
		LastModified: formatStoredTime(it.LastModified),
		NumViews:     it.NumViews,
		Likes:        it.Likes,
		Image:        it.Image,
		ImageFormat:  it.ImageFormat,
		Deleted:      it.Deleted,
	}, nil
}

func (r *itineraryRow) scanTargets() []any {
	return []any{
		&r.ID,
		&r.UserID,
		&r.Name,
		&r.Description,
		&r.Waypoints,
		&r.UploadedAt,
		&r.LastModified,
		&r.NumViews,
		&r.Likes,
		&r.Image,
		&r.ImageFormat,
		&r.Deleted,
	}
}

func (r itineraryRow) toModel() (models.Itinerary, error) {
	var waypoints []models.Waypoint
	if r.Waypoints != "" {
		if err := json.Unmarshal([]byte(r.Waypoints), &waypoints); err != nil {
			return models.Itinerary{}, fmt.Errorf("%w: waypoints of %s: %w", ErrCorruptedRecord, r.ID, err)
		}
	}

	uploadedAt, err := parseStoredTime(r.UploadedAt)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("%w: upload time of %s: %w", ErrCorruptedRecord, r.ID, err)
	}

	lastModified, err := parseStoredTime(r.LastModified)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("%w: last modified of %s: %w", ErrCorruptedRecord, r.ID, err)
	}

	return models.Itinerary{
		ID:           r.ID,
		UserID:       r.UserID,
		Name:         r.Name,
		Description:  r.Description,
		Waypoints:    waypoints,
		UploadedAt:   uploadedAt,
		LastModified: lastModified,
		NumViews:     r.NumViews,
		Likes:        r.Likes,
		Image:        r.Image,
		ImageFormat:  r.ImageFormat,
		Deleted:      r.Deleted,
	}, nil
}

// cacheEntryRow is the column-level shape of a cache entry.
type cacheEntryRow struct {
	CacheName  string
	RequestKey string
	Status     int
	Header     string
	Body       []byte
	StoredAt   string
}

func newCacheEntryRow(cacheName string, e models.CacheEntry) (cacheEntryRow, error) {
	header := e.Response.Header
	if header == nil {
		header = http.Header{}
	}

	encoded, err := json.Marshal(header)
	if err != nil {
		return cacheEntryRow{}, fmt.Errorf("encode header of %s: %w", e.RequestKey, err)
	}

	storedAt := e.StoredAt
	if storedAt.IsZero() {
		storedAt = time.Now()
	}

	return cacheEntryRow{
		CacheName:  cacheName,
		RequestKey: e.RequestKey,
		Status:     e.Response.Status,
		Header:     string(encoded),
		Body:       e.Response.Body,
		StoredAt:   formatStoredTime(storedAt),
	}, nil
}

func (r *cacheEntryRow) scanTargets() []any {
	return []any{&r.CacheName, &r.RequestKey, &r.Status, &r.Header, &r.Body, &r.StoredAt}
}

func (r cacheEntryRow) toModel() (models.CacheEntry, error) {
	header := http.Header{}
	if r.Header != "" {
		if err := json.Unmarshal([]byte(r.Header), &header); err != nil {
			return models.CacheEntry{}, fmt.Errorf("%w: header of %s: %w", ErrCorruptedRecord, r.RequestKey, err)
		}
	}

	storedAt, err := parseStoredTime(r.StoredAt)
	if err != nil {
		return models.CacheEntry{}, fmt.Errorf("%w: stored time of %s: %w", ErrCorruptedRecord, r.RequestKey, err)
	}

	return models.CacheEntry{
		CacheName:  r.CacheName,
		RequestKey: r.RequestKey,
		Response: models.CachedResponse{
			Status: r.Status,
			Header: header,
			Body:   r.Body,
		},
		StoredAt: storedAt,
	}, nil
}

func formatStoredTime(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

func parseStoredTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(storedTimeLayout, s, time.UTC)
}
