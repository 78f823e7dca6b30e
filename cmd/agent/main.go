package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mapster-agent/internal/adapter"
	"github.com/MKhiriev/mapster-agent/internal/agent"
	"github.com/MKhiriev/mapster-agent/internal/config"
	"github.com/MKhiriev/mapster-agent/internal/handler"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/server"
	"github.com/MKhiriev/mapster-agent/internal/service"
	"github.com/MKhiriev/mapster-agent/internal/store"
	"github.com/MKhiriev/mapster-agent/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	ctx := context.Background()

	log := logger.NewLogger("mapster-agent")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = leveled
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewAgentStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, serverAdapter, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create agent services")
	}

	handlers, err := handler.NewHandlers(services, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	app, err := agent.NewAgent(services, srv, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init agent error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("agent run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
