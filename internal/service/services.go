package service

import (
	"github.com/MKhiriev/mapster-agent/internal/adapter"
	"github.com/MKhiriev/mapster-agent/internal/assets"
	"github.com/MKhiriev/mapster-agent/internal/config"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/store"
	"github.com/MKhiriev/mapster-agent/internal/validators"
	"github.com/MKhiriev/mapster-agent/models"
)

// Services is the full set of agent services sharing one local store and
// one server adapter.
type Services struct {
	AppInfoService    AppInfoService
	ItineraryStore    ItineraryStore
	AssetCache        AssetCache
	SyncService       SyncService
	SyncJob           SyncJob
	SessionBridge     SessionBridge
	NavigationService NavigationService
}

func NewServices(
	storages *store.AgentStorages,
	serverAdapter adapter.ServerAdapter,
	cfg *config.AgentConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	itineraries := NewItineraryStore(storages.ItineraryRepository, logger)
	syncSvc := NewSyncService(itineraries, serverAdapter, validators.NewItineraryValidator(), logger)
	syncJob := NewSyncJob(syncSvc)

	return &Services{
		AppInfoService:    appInfo,
		ItineraryStore:    itineraries,
		AssetCache:        NewAssetCache(storages.AssetCacheRepository, serverAdapter, assets.Default(), cfg.Cache, logger),
		SyncService:       syncSvc,
		SyncJob:           syncJob,
		SessionBridge:     NewSessionBridge(syncSvc, syncJob, itineraries, serverAdapter, cfg.Workers.SyncInterval, logger),
		NavigationService: NewNavigationService(itineraries),
	}, nil
}
