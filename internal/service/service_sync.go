package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/mapster-agent/internal/adapter"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/metrics"
	"github.com/MKhiriev/mapster-agent/internal/validators"
	"github.com/MKhiriev/mapster-agent/models"
	"github.com/rs/zerolog"
)

type syncService struct {
	store     ItineraryStore
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewSyncService wires one sync pass: local watermark, origin delta, local
// upsert. Concurrent passes are not serialized; bulk upserts keyed by id make
// overlapping passes converge.
func NewSyncService(itineraries ItineraryStore, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) SyncService {
	return &syncService{
		store:     itineraries,
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
}

func (s *syncService) Pass(ctx context.Context) error {
	start := time.Now()
	defer func() { metrics.SyncPassDuration.Observe(time.Since(start).Seconds()) }()

	log := s.logger.With().Str("func", "syncService.Pass").Logger()

	watermark, err := s.store.Watermark(ctx)
	if err != nil {
		return s.fail(&log, fmt.Errorf("read watermark: %w", err))
	}
	log.Debug().Str("last_sync_time", watermark.String()).Msg("attempting synchronization")

	raw, err := s.adapter.SyncItineraries(ctx, watermark)
	if err != nil {
		return s.fail(&log, fmt.Errorf("fetch itineraries since %s: %w", watermark, err))
	}

	items := s.accept(ctx, &log, raw)

	if len(items) == 0 {
		metrics.SyncPassesTotal.WithLabelValues(metrics.ResultEmpty).Inc()
		log.Debug().Msg("no itineraries to update in local store")
		return nil
	}

	if err = s.store.UpsertMany(ctx, items...); err != nil {
		return s.fail(&log, err)
	}

	metrics.SyncPassesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.SyncedRecordsTotal.Add(float64(len(items)))
	log.Info().Int("itineraries", len(items)).Msg("local store updated with itineraries received from synchronization")

	return nil
}

// accept normalizes raw and drops records that cannot be keyed or
// watermarked. Anything else is stored as received, like the origin sent it;
// bad coordinates are only logged.
func (s *syncService) accept(ctx context.Context, log *zerolog.Logger, raw []models.RawItinerary) []models.Itinerary {
	items := make([]models.Itinerary, 0, len(raw))
	for i := range raw {
		it := raw[i].Normalize()

		if err := s.validator.Validate(ctx, it, validators.FieldID, validators.FieldLastModified); err != nil {
			metrics.SyncSkippedRecordsTotal.Inc()
			log.Warn().Err(err).Str("itinerary_id", it.ID).Msg("skipping itinerary received from synchronization")
			continue
		}
		if err := s.validator.Validate(ctx, it, validators.FieldWaypoints); err != nil {
			log.Warn().Err(err).Str("itinerary_id", it.ID).Msg("itinerary has invalid waypoints, storing as received")
		}

		items = append(items, it)
	}
	return items
}

func (s *syncService) fail(log *zerolog.Logger, err error) error {
	metrics.SyncPassesTotal.WithLabelValues(metrics.ResultFailure).Inc()
	log.Err(err).Msg("failed to sync itineraries")
	return fmt.Errorf("%w: %w", ErrSyncPassFailed, err)
}
