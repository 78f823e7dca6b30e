package handler

import (
	"github.com/MKhiriev/mapster-agent/internal/adapter"
	"github.com/MKhiriev/mapster-agent/internal/handler/http"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || serverAdapter == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, serverAdapter, logger),
	}, nil
}
