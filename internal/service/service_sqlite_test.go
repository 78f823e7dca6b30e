// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/mapster-agent/internal/adapter"
	"github.com/MKhiriev/mapster-agent/internal/config"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/store"
	"github.com/MKhiriev/mapster-agent/internal/validators"
	"github.com/MKhiriev/mapster-agent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSession = "session=valid"

// testOrigin answers the login and sync endpoints. Only requests carrying
// validSession count as logged in.
type testOrigin struct {
	mu       sync.Mutex
	payload  string
	lastSync []string
}

func (o *testOrigin) setPayload(payload string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.payload = payload
}

func (o *testOrigin) syncTimes() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.lastSync...)
}

func (o *testOrigin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	loggedIn := r.Header.Get("Cookie") == validSession

	switch r.URL.Path {
	case "/check-login-status":
		if loggedIn {
			_, _ = w.Write([]byte(`{"isLoggedIn": true}`))
			return
		}
		_, _ = w.Write([]byte(`{"isLoggedIn": false}`))
	case "/api/sync-itineraries":
		if !loggedIn {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		o.mu.Lock()
		o.lastSync = append(o.lastSync, r.URL.Query().Get("lastSyncTime"))
		payload := o.payload
		o.mu.Unlock()
		if payload == "" {
			payload = "[]"
		}
		_, _ = w.Write([]byte(payload))
	default:
		http.NotFound(w, r)
	}
}

type sqliteFixture struct {
	origin  *testOrigin
	store   ItineraryStore
	adapter adapter.ServerAdapter
	sync    SyncService
	job     SyncJob
	bridge  SessionBridge
}

// newSQLiteFixture wires the real store, adapter, sync service and timer
// against an in-process origin. dsn lets a test reopen the same database.
func newSQLiteFixture(t *testing.T, dsn string) sqliteFixture {
	t.Helper()

	origin := &testOrigin{}
	srv := httptest.NewServer(origin)
	t.Cleanup(srv.Close)

	storages, err := store.NewAgentStorages(context.Background(), config.AgentStorage{DB: config.AgentDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.AgentAdapter{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	itineraries := NewItineraryStore(storages.ItineraryRepository, logger.Nop())
	syncSvc := NewSyncService(itineraries, serverAdapter, validators.NewItineraryValidator(), logger.Nop())
	job := NewSyncJob(syncSvc)

	f := sqliteFixture{
		origin:  origin,
		store:   itineraries,
		adapter: serverAdapter,
		sync:    syncSvc,
		job:     job,
		bridge:  NewSessionBridge(syncSvc, job, itineraries, serverAdapter, time.Hour, logger.Nop()),
	}
	t.Cleanup(func() {
		f.bridge.Shutdown()
		_ = storages.Close()
	})
	return f
}

func testDSN(t *testing.T) string {
	return filepath.Join(t.TempDir(), "agent.db")
}

func seedItinerary(t *testing.T, s ItineraryStore) models.Itinerary {
	t.Helper()
	it := models.Itinerary{
		ID:           "65f1c2aa9b1e8a0001a1a1a1",
		Name:         "Rome",
		Waypoints:    []models.Waypoint{{Name: "Colosseo", Latitude: 41.8902, Longitude: 12.4922}},
		LastModified: time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC),
	}
	require.NoError(t, s.UpsertMany(context.Background(), it))
	return it
}

// ── restart keeps the offline copy ──────────────────────────────────────────

func TestSessionBridge_RestartKeepsStore(t *testing.T) {
	dsn := testDSN(t)
	ctx := context.Background()

	first := newSQLiteFixture(t, dsn)
	seeded := seedItinerary(t, first.store)
	first.bridge.Shutdown()

	tests := []struct {
		name   string
		cookie string
	}{
		{name: "no session relayed"},
		{name: "expired session relayed", cookie: "session=expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restarted := newSQLiteFixture(t, dsn)
			if tt.cookie != "" {
				restarted.adapter.SetCredentials(tt.cookie)
			}

			require.NoError(t, restarted.bridge.RefreshLoginStatus(ctx))

			assert.False(t, restarted.bridge.LoggedIn())
			assert.False(t, restarted.job.Running())

			all := restarted.store.GetAll(ctx)
			require.Len(t, all, 1, "startup login check must not clear the store")
			assert.Equal(t, seeded.ID, all[0].ID)
		})
	}
}

func TestSessionBridge_RestartWithRelayedSession(t *testing.T) {
	f := newSQLiteFixture(t, testDSN(t))
	ctx := context.Background()
	seedItinerary(t, f.store)

	f.adapter.SetCredentials(validSession)
	require.NoError(t, f.bridge.RefreshLoginStatus(ctx))

	assert.True(t, f.bridge.LoggedIn())
	assert.True(t, f.job.Running())
	assert.Len(t, f.store.GetAll(ctx), 1)
}

func TestSessionBridge_ForegroundLogoutClearsStore(t *testing.T) {
	f := newSQLiteFixture(t, testDSN(t))
	ctx := context.Background()
	seedItinerary(t, f.store)

	require.NoError(t, f.bridge.Handle(ctx, models.NewLoginStatusMessage(false)))

	assert.Empty(t, f.store.GetAll(ctx))
}

// ── sync passes against the real store ──────────────────────────────────────

func TestSyncService_Pass_MixedBatchAgainstSQLite(t *testing.T) {
	f := newSQLiteFixture(t, testDSN(t))
	ctx := context.Background()
	f.adapter.SetCredentials(validSession)

	f.origin.setPayload(`[
		{"_id": {"$oid": "65f1c2aa9b1e8a0001a1a1a1"}, "name": "good", "waypoints": [
			{"name": "Colosseo", "latitude": "41.8902", "longitude": "12.4922"}],
		 "last_modified": "2024-03-05 10:20:30"},
		{"_id": {"$oid": "65f1c2aa9b1e8a0001a1a1a2"}, "name": "far north", "waypoints": [
			{"name": "pole", "latitude": "91", "longitude": "0"}],
		 "last_modified": "2024-03-06 09:00:00"},
		{"_id": "", "name": "no id", "last_modified": "2024-03-07 09:00:00"},
		{"_id": {"$oid": "65f1c2aa9b1e8a0001a1a1a3"}, "name": "no time"}
	]`)

	for range 3 {
		require.NoError(t, f.sync.Pass(ctx))
	}

	all := f.store.GetAll(ctx)
	require.Len(t, all, 2)
	names := []string{all[0].Name, all[1].Name}
	assert.ElementsMatch(t, []string{"good", "far north"}, names)

	watermark, err := f.store.Watermark(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-06 09:00:00", watermark.String())

	times := f.origin.syncTimes()
	require.Len(t, times, 3)
	assert.Equal(t, models.MinWatermark.String(), times[0])
	assert.Equal(t, "2024-03-06 09:00:00", times[1], "the watermark moves past the stored records")
	assert.Equal(t, "2024-03-06 09:00:00", times[2])
}

func TestSyncService_Pass_IdempotentAgainstSQLite(t *testing.T) {
	f := newSQLiteFixture(t, testDSN(t))
	ctx := context.Background()
	f.adapter.SetCredentials(validSession)

	f.origin.setPayload(`[
		{"_id": {"$oid": "65f1c2aa9b1e8a0001a1a1a1"}, "name": "Rome", "num_views": 4, "likes": ["u2"],
		 "last_modified": "2024-03-05 10:20:30"},
		{"_id": {"$oid": "65f1c2aa9b1e8a0001a1a1a2"}, "name": "gone", "deleted": 1,
		 "last_modified": "2024-03-06 09:00:00"}
	]`)

	require.NoError(t, f.sync.Pass(ctx))
	once := f.store.GetAll(ctx)
	require.Len(t, once, 2)

	// the origin replays the same batch
	require.NoError(t, f.sync.Pass(ctx))
	assert.Equal(t, once, f.store.GetAll(ctx))
	assert.Len(t, f.store.Active(ctx), 1)
}

func TestSyncService_Pass_WatermarkIsMonotonic(t *testing.T) {
	f := newSQLiteFixture(t, testDSN(t))
	ctx := context.Background()
	f.adapter.SetCredentials(validSession)

	f.origin.setPayload(`[
		{"_id": {"$oid": "65f1c2aa9b1e8a0001a1a1a1"}, "name": "Rome, revised",
		 "last_modified": "2024-03-06 08:00:00"}
	]`)
	require.NoError(t, f.sync.Pass(ctx))

	before, err := f.store.Watermark(ctx)
	require.NoError(t, err)

	// a lagging replica answers with older copies
	f.origin.setPayload(`[
		{"_id": {"$oid": "65f1c2aa9b1e8a0001a1a1a1"}, "name": "Rome",
		 "last_modified": "2024-03-01 08:00:00"},
		{"_id": {"$oid": "65f1c2aa9b1e8a0001a1a1a2"}, "name": "Naples",
		 "last_modified": "2024-02-01 08:00:00"}
	]`)
	require.NoError(t, f.sync.Pass(ctx))

	after, err := f.store.Watermark(ctx)
	require.NoError(t, err)
	assert.False(t, after.Time().Before(before.Time()), "watermark went from %s to %s", before, after)
	assert.Equal(t, "2024-03-06 08:00:00", after.String())

	got, err := f.store.Get(ctx, "65f1c2aa9b1e8a0001a1a1a1")
	require.NoError(t, err)
	assert.Equal(t, "Rome, revised", got.Name)
	assert.Len(t, f.store.GetAll(ctx), 2)
}
