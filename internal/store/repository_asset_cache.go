package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/models"
)

type assetCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssetCacheRepository constructs an [AssetCacheRepository] backed by db.
func NewAssetCacheRepository(db *DB, logger *logger.Logger) AssetCacheRepository {
	return &assetCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *assetCacheRepository) PutAll(ctx context.Context, cacheName string, entries ...models.CacheEntry) error {
	if len(entries) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	statements := make([]statement, 0, len(entries))
	for _, entry := range entries {
		row, err := newCacheEntryRow(cacheName, entry)
		if err != nil {
			log.Err(err).
				Str("func", "assetCacheRepository.PutAll").
				Str("request_key", entry.RequestKey).
				Msg("failed to encode cache entry")
			return err
		}

		query, args, err := buildUpsertCacheEntryQuery(row)
		if err != nil {
			log.Err(err).Str("func", "assetCacheRepository.PutAll").Msg("failed to create query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		statements = append(statements, statement{key: entry.RequestKey, query: query, args: args})
	}

	err := r.withTx(ctx, "assetCacheRepository.PutAll", func(tx *sql.Tx) error {
		return execAll(ctx, tx, statements)
	})
	if err != nil {
		log.Err(err).
			Str("func", "assetCacheRepository.PutAll").
			Str("cache_name", cacheName).
			Int("count", len(entries)).
			Msg("failed to store cache generation")
		return err
	}

	return nil
}

func (r *assetCacheRepository) Match(ctx context.Context, requestKey, preferred string) (models.CacheEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMatchCacheEntryQuery(requestKey, preferred)
	if err != nil {
		log.Err(err).Str("func", "assetCacheRepository.Match").Msg("failed to create query")
		return models.CacheEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row cacheEntryRow
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CacheEntry{}, ErrCacheEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "assetCacheRepository.Match").
			Str("request_key", requestKey).
			Msg("failed to scan cache entry row")
		return models.CacheEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return row.toModel()
}

func (r *assetCacheRepository) CacheNames(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCacheNamesQuery()
	if err != nil {
		log.Err(err).Str("func", "assetCacheRepository.CacheNames").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "assetCacheRepository.CacheNames").Msg("failed to list cache names")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "assetCacheRepository.CacheNames").Msg("failed to scan cache name")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}

func (r *assetCacheRepository) DeleteCache(ctx context.Context, cacheName string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCacheQuery(cacheName)
	if err != nil {
		log.Err(err).Str("func", "assetCacheRepository.DeleteCache").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "assetCacheRepository.DeleteCache").
			Str("cache_name", cacheName).
			Msg("failed to delete cache generation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
