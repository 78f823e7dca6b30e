package agent

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/server"
	"github.com/MKhiriev/mapster-agent/internal/service"
	"github.com/MKhiriev/mapster-agent/internal/workers"
)

type Agent struct {
	services *service.Services
	server   server.Server
	storage  io.Closer
	startup  *workers.Workers
	logger   *logger.Logger
}

// NewAgent assembles the runtime. storage is closed after the server and the
// background sync have stopped.
func NewAgent(services *service.Services, srv server.Server, storage io.Closer, logger *logger.Logger) (*Agent, error) {
	if services == nil || srv == nil || storage == nil {
		return nil, errMissingDependency
	}

	return &Agent{
		services: services,
		server:   srv,
		storage:  storage,
		startup: workers.NewWorkers(logger,
			workers.NewCacheWorker(services.AssetCache),
			workers.NewLoginCheckWorker(services.SessionBridge),
		),
		logger: logger,
	}, nil
}

// Run executes the startup workers, then serves until ctx is cancelled or a
// stop signal arrives. Startup failures are logged and do not prevent
// serving: the previous cache generation and the logged-out state stay in
// effect.
func (a *Agent) Run(ctx context.Context) error {
	defer a.close()

	if err := a.startup.Run(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*Agent.Run").Msg("startup finished with errors")
	}

	a.logger.Info().
		Str("cache", a.services.AssetCache.Version()).
		Bool("logged_in", a.services.SessionBridge.LoggedIn()).
		Msg("agent is ready")

	if err := a.server.RunServer(ctx); err != nil {
		return fmt.Errorf("run server: %w", err)
	}

	return nil
}

func (a *Agent) close() {
	a.services.SessionBridge.Shutdown()

	if err := a.storage.Close(); err != nil {
		a.logger.Err(err).Str("func", "*Agent.close").Msg("error closing local storage")
	}

	a.logger.Info().Msg("agent stopped")
}
