package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mapster-agent/internal/config"
	"github.com/MKhiriev/mapster-agent/internal/logger"
)

// AgentStorages groups the repositories of the agent's local database.
type AgentStorages struct {
	// ItineraryRepository holds the offline copy of the user's itineraries.
	ItineraryRepository ItineraryRepository
	// AssetCacheRepository holds the generations of cached static assets.
	AssetCacheRepository AssetCacheRepository

	db *DB
}

// NewAgentStorages opens the SQLite database named by cfg.DB.DSN (creating
// the file if needed), applies pending migrations and wires the repositories.
func NewAgentStorages(ctx context.Context, cfg config.AgentStorage, logger *logger.Logger) (*AgentStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &AgentStorages{
		ItineraryRepository:  NewItineraryRepository(db, logger),
		AssetCacheRepository: NewAssetCacheRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the database connection.
func (s *AgentStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
