package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/mapster-agent/internal/config"
	"github.com/MKhiriev/mapster-agent/internal/handler"
	"github.com/MKhiriev/mapster-agent/internal/handler/http"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/mock"
	"github.com/MKhiriev/mapster-agent/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &handler.Handlers{
		HTTP: http.NewHandler(&service.Services{}, mock.NewMockServerAdapter(ctrl), logger.Nop()),
	}
}

func TestNewServer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.AgentServer
		wantErr  error
	}{
		{name: "nil handlers", cfg: config.AgentServer{HTTPAddress: ":0"}, wantErr: errNoHandlerIsCreated},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.AgentServer{HTTPAddress: ":0"}, wantErr: errNoHandlerIsCreated},
		{name: "no address", handlers: newTestHandlers(t), wantErr: errNoAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	s, err := NewServer(newTestHandlers(t), config.AgentServer{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, config.DefaultShutdownTimeout, s.(*server).shutdownTimeout)
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	s, err := NewServer(newTestHandlers(t), config.AgentServer{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s, err := NewServer(newTestHandlers(t), config.AgentServer{HTTPAddress: busy.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
