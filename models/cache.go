package models

import (
	"net/http"
	"time"
)

// CachedResponse is a response held by the asset cache or freshly fetched
// from the origin.
type CachedResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

// OK reports whether the status is in the 2xx range.
func (r CachedResponse) OK() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

// CacheEntry maps a request key (path plus query) to a stored response within
// one cache generation.
type CacheEntry struct {
	CacheName  string
	RequestKey string
	Response   CachedResponse
	StoredAt   time.Time
}
