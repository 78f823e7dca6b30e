// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/mock"
	"github.com/MKhiriev/mapster-agent/internal/store"
	"github.com/MKhiriev/mapster-agent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestItineraryStore(t *testing.T) (ItineraryStore, *mock.MockItineraryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItineraryRepository(ctrl)
	return NewItineraryStore(repo, logger.Nop()), repo
}

func itinerary(id string, modified time.Time, deleted bool) models.Itinerary {
	return models.Itinerary{
		ID:           id,
		UserID:       "user-1",
		Name:         "route " + id,
		Waypoints:    []models.Waypoint{{Name: "start", Latitude: 45.46, Longitude: 9.19}},
		UploadedAt:   modified.Add(-time.Hour),
		LastModified: modified,
		Deleted:      deleted,
	}
}

// ── GetAll / Active ──────────────────────────────────────────────────────────

func TestItineraryStore_GetAll_IncludesTombstones(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	items := []models.Itinerary{itinerary("a", now, false), itinerary("b", now, true)}
	repo.EXPECT().GetAll(ctx).Return(items, nil)

	assert.Equal(t, items, s.GetAll(ctx))
}

func TestItineraryStore_GetAll_FailsSoft(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()

	repo.EXPECT().GetAll(ctx).Return(nil, errors.New("disk I/O error"))

	got := s.GetAll(ctx)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestItineraryStore_GetAll_EmptyStoreIsNotNil(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()

	repo.EXPECT().GetAll(ctx).Return(nil, nil)

	got := s.GetAll(ctx)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestItineraryStore_Active_ExcludesTombstones(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	repo.EXPECT().GetAll(ctx).Return([]models.Itinerary{
		itinerary("a", now, false),
		itinerary("b", now, true),
		itinerary("c", now, false),
	}, nil)

	got := s.Active(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestItineraryStore_Active_FailsSoft(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()

	repo.EXPECT().GetAll(ctx).Return(nil, store.ErrExecutingQuery)

	assert.Empty(t, s.Active(ctx))
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestItineraryStore_Get(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		repoRes models.Itinerary
		repoErr error
		wantErr error
	}{
		{name: "found", repoRes: itinerary("a", now, false)},
		{name: "missing", repoErr: store.ErrItineraryNotFound, wantErr: ErrItineraryNotFound},
		{name: "tombstone", repoRes: itinerary("a", now, true), wantErr: ErrItineraryNotFound},
		{name: "store error", repoErr: store.ErrScanningRow, wantErr: store.ErrScanningRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newTestItineraryStore(t)
			ctx := context.Background()

			repo.EXPECT().Get(ctx, "a").Return(tt.repoRes, tt.repoErr)

			got, err := s.Get(ctx, "a")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a", got.ID)
		})
	}
}

// ── UpsertMany / Clear ───────────────────────────────────────────────────────

func TestItineraryStore_UpsertMany_EmptyIsNoop(t *testing.T) {
	s, _ := newTestItineraryStore(t)

	// no repository call is expected
	require.NoError(t, s.UpsertMany(context.Background()))
}

func TestItineraryStore_UpsertMany(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	a, b := itinerary("a", now, false), itinerary("b", now, true)
	repo.EXPECT().UpsertMany(ctx, a, b).Return(nil)

	require.NoError(t, s.UpsertMany(ctx, a, b))
}

func TestItineraryStore_UpsertMany_Error(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()

	repo.EXPECT().UpsertMany(ctx, gomock.Any()).Return(store.ErrCommitingTransaction)

	err := s.UpsertMany(ctx, itinerary("a", time.Now(), false))
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCommitingTransaction)
}

func TestItineraryStore_Clear(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()

	repo.EXPECT().Clear(ctx).Return(nil)
	require.NoError(t, s.Clear(ctx))

	repo.EXPECT().Clear(ctx).Return(store.ErrExecutingStatement)
	assert.ErrorIs(t, s.Clear(ctx), store.ErrExecutingStatement)
}

// ── Watermark ────────────────────────────────────────────────────────────────

func TestItineraryStore_Watermark_EmptyStoreIsSentinel(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()

	repo.EXPECT().MaxLastModified(ctx).Return(time.Time{}, false, nil)

	w, err := s.Watermark(ctx)
	require.NoError(t, err)
	assert.True(t, w.IsMin())
	assert.Equal(t, "0001-01-01 00:00:00", w.String())
}

func TestItineraryStore_Watermark_MaxLastModified(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()

	latest := time.Date(2024, time.March, 5, 10, 20, 30, 500, time.UTC)
	repo.EXPECT().MaxLastModified(ctx).Return(latest, true, nil)

	w, err := s.Watermark(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05 10:20:30", w.String())
}

func TestItineraryStore_Watermark_Error(t *testing.T) {
	s, repo := newTestItineraryStore(t)
	ctx := context.Background()

	repo.EXPECT().MaxLastModified(ctx).Return(time.Time{}, false, store.ErrScanningRow)

	_, err := s.Watermark(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrScanningRow)
}
