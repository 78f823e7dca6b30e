package http

import (
	"github.com/MKhiriev/mapster-agent/internal/adapter"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/service"
	"github.com/MKhiriev/mapster-agent/internal/utils"
)

type Handler struct {
	services   *service.Services
	adapter    adapter.ServerAdapter
	newTraceID func() string

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		adapter:    serverAdapter,
		newTraceID: utils.NewTraceID,
		logger:     logger,
	}
}
