package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/metrics"
	"github.com/MKhiriev/mapster-agent/internal/store"
	"github.com/MKhiriev/mapster-agent/models"
)

type itineraryStore struct {
	repo store.ItineraryRepository

	logger *logger.Logger
}

// NewItineraryStore wraps repo with the read/write policy of the local store:
// reads never fail, writes report their errors.
func NewItineraryStore(repo store.ItineraryRepository, logger *logger.Logger) ItineraryStore {
	return &itineraryStore{repo: repo, logger: logger}
}

func (s *itineraryStore) GetAll(ctx context.Context) []models.Itinerary {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		metrics.LocalStoreErrorsTotal.Inc()
		s.logger.Err(err).Str("func", "itineraryStore.GetAll").Msg("local store read failed, returning empty result")
		return []models.Itinerary{}
	}
	if items == nil {
		return []models.Itinerary{}
	}
	return items
}

func (s *itineraryStore) Active(ctx context.Context) []models.Itinerary {
	return models.ActiveItineraries(s.GetAll(ctx))
}

func (s *itineraryStore) Get(ctx context.Context, id string) (models.Itinerary, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrItineraryNotFound) {
			return models.Itinerary{}, fmt.Errorf("%w: %s", ErrItineraryNotFound, id)
		}
		return models.Itinerary{}, fmt.Errorf("get itinerary %s: %w", id, err)
	}
	if item.Deleted {
		return models.Itinerary{}, fmt.Errorf("%w: %s", ErrItineraryNotFound, id)
	}
	return item, nil
}

func (s *itineraryStore) UpsertMany(ctx context.Context, items ...models.Itinerary) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.repo.UpsertMany(ctx, items...); err != nil {
		return fmt.Errorf("upsert %d itineraries: %w", len(items), err)
	}
	return nil
}

func (s *itineraryStore) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear local store: %w", err)
	}
	return nil
}

func (s *itineraryStore) Watermark(ctx context.Context) (models.Watermark, error) {
	latest, ok, err := s.repo.MaxLastModified(ctx)
	if err != nil {
		return models.MinWatermark, fmt.Errorf("compute watermark: %w", err)
	}
	if !ok {
		return models.MinWatermark, nil
	}
	return models.NewWatermark(latest), nil
}
