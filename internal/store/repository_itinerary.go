package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/models"
)

// itineraryRepository is the SQLite-backed implementation of
// [ItineraryRepository]. Every method obtains a context-scoped logger via
// [logger.FromContext] so database failures are traced with the caller's
// trace id.
type itineraryRepository struct {
	*DB
	logger *logger.Logger
}

// NewItineraryRepository constructs an [ItineraryRepository] backed by db.
func NewItineraryRepository(db *DB, logger *logger.Logger) ItineraryRepository {
	return &itineraryRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll returns every stored itinerary, tombstones included, newest first.
func (r *itineraryRepository) GetAll(ctx context.Context) ([]models.Itinerary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItinerariesQuery()
	if err != nil {
		log.Err(err).Str("func", "itineraryRepository.GetAll").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.GetAll").
			Msg("failed to execute query for getting all itineraries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Itinerary, 0, 32)

	for rows.Next() {
		var row itineraryRow
		if scanErr := rows.Scan(row.scanTargets()...); scanErr != nil {
			log.Err(scanErr).
				Str("func", "itineraryRepository.GetAll").
				Msg("failed to scan itinerary row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		item, convErr := row.toModel()
		if convErr != nil {
			log.Err(convErr).
				Str("func", "itineraryRepository.GetAll").
				Str("id", row.ID).
				Msg("failed to decode itinerary row")
			return nil, convErr
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itineraryRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Get returns the itinerary with the given id or [ErrItineraryNotFound].
func (r *itineraryRepository) Get(ctx context.Context, id string) (models.Itinerary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItineraryQuery(id)
	if err != nil {
		log.Err(err).Str("func", "itineraryRepository.Get").Msg("failed to create query")
		return models.Itinerary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row itineraryRow
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Itinerary{}, ErrItineraryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.Get").
			Str("id", id).
			Msg("failed to scan itinerary row")
		return models.Itinerary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return row.toModel()
}

// UpsertMany inserts or replaces every item keyed by id inside one
// transaction. An empty call does not touch the database.
func (r *itineraryRepository) UpsertMany(ctx context.Context, items ...models.Itinerary) error {
	if len(items) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	statements := make([]statement, 0, len(items))
	for _, item := range items {
		row, err := newItineraryRow(item)
		if err != nil {
			log.Err(err).
				Str("func", "itineraryRepository.UpsertMany").
				Str("id", item.ID).
				Msg("failed to encode itinerary")
			return err
		}

		query, args, err := buildUpsertItineraryQuery(row)
		if err != nil {
			log.Err(err).Str("func", "itineraryRepository.UpsertMany").Msg("failed to create query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		statements = append(statements, statement{key: item.ID, query: query, args: args})
	}

	err := r.withTx(ctx, "itineraryRepository.UpsertMany", func(tx *sql.Tx) error {
		return execAll(ctx, tx, statements)
	})
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.UpsertMany").
			Int("count", len(items)).
			Msg("failed to upsert itineraries")
		return err
	}

	return nil
}

// Clear removes every stored itinerary.
func (r *itineraryRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItinerariesQuery()
	if err != nil {
		log.Err(err).Str("func", "itineraryRepository.Clear").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "itineraryRepository.Clear").Msg("failed to clear itineraries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// MaxLastModified returns the greatest last-modified timestamp in the store.
func (r *itineraryRepository) MaxLastModified(ctx context.Context) (time.Time, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMaxLastModifiedQuery()
	if err != nil {
		log.Err(err).Str("func", "itineraryRepository.MaxLastModified").Msg("failed to create query")
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var maxValue sql.NullString
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&maxValue); err != nil {
		log.Err(err).Str("func", "itineraryRepository.MaxLastModified").Msg("failed to scan max last modified")
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if !maxValue.Valid || maxValue.String == "" {
		return time.Time{}, false, nil
	}

	maxTime, err := parseStoredTime(maxValue.String)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.MaxLastModified").
			Str("value", maxValue.String).
			Msg("failed to parse max last modified")
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}

	return maxTime, true, nil
}

type statement struct {
	key   string
	query string
	args  []any
}

func execAll(ctx context.Context, tx *sql.Tx, statements []statement) error {
	for _, st := range statements {
		if _, err := tx.ExecContext(ctx, st.query, st.args...); err != nil {
			return fmt.Errorf("%w (%s): %w", ErrExecutingStatement, st.key, err)
		}
	}
	return nil
}
