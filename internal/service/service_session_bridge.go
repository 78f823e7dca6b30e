package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/mapster-agent/internal/adapter"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/metrics"
	"github.com/MKhiriev/mapster-agent/models"
)

type sessionBridge struct {
	syncService SyncService
	syncJob     SyncJob
	store       ItineraryStore
	adapter     adapter.ServerAdapter
	interval    time.Duration

	loggedIn atomic.Bool

	// background work outlives the request that triggered it and ends on
	// Shutdown.
	ctx      context.Context
	cancel   context.CancelFunc
	inFlight sync.WaitGroup

	logger *logger.Logger
}

// NewSessionBridge creates the single controller of the sync timer and the
// login flag. interval is the period of the timer started on login.
func NewSessionBridge(
	syncService SyncService,
	syncJob SyncJob,
	itineraries ItineraryStore,
	serverAdapter adapter.ServerAdapter,
	interval time.Duration,
	logger *logger.Logger,
) SessionBridge {
	ctx, cancel := context.WithCancel(context.Background())

	return &sessionBridge{
		syncService: syncService,
		syncJob:     syncJob,
		store:       itineraries,
		adapter:     serverAdapter,
		interval:    interval,
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger,
	}
}

func (b *sessionBridge) Handle(ctx context.Context, msg models.Message) error {
	kind := msg.Kind()
	metrics.SessionMessagesTotal.WithLabelValues(kind.String()).Inc()

	switch kind {
	case models.MessageLoginStatus:
		b.setLoginStatus(ctx, msg.LoggedIn())
		return nil
	case models.MessageSyncRequest:
		b.syncNow(ctx)
		return nil
	default:
		return fmt.Errorf("%w: type=%q action=%q", ErrUnknownMessage, msg.Type, msg.Action)
	}
}

// RefreshLoginStatus only ever logs a session in. Without a relayed cookie
// the origin always answers "logged out", and only the foreground may log a
// user out and clear the store.
func (b *sessionBridge) RefreshLoginStatus(ctx context.Context) error {
	log := logger.FromContext(ctx).With().Str("func", "sessionBridge.RefreshLoginStatus").Logger()

	if b.adapter.Credentials() == "" {
		log.Debug().Msg("no session relayed yet, login check skipped")
		return nil
	}

	loggedIn, err := b.adapter.CheckLoginStatus(ctx)
	if err != nil {
		return fmt.Errorf("check login status: %w", err)
	}
	if !loggedIn {
		log.Info().Msg("origin reports no session, waiting for the foreground")
		return nil
	}
	return b.Handle(ctx, models.NewLoginStatusMessage(true))
}

func (b *sessionBridge) LoggedIn() bool {
	return b.loggedIn.Load()
}

func (b *sessionBridge) Shutdown() {
	b.cancel()
	b.syncJob.Stop()
	b.syncJob.Wait()
	b.inFlight.Wait()
}

func (b *sessionBridge) setLoginStatus(ctx context.Context, loggedIn bool) {
	log := logger.FromContext(ctx).With().Str("func", "sessionBridge.setLoginStatus").Logger()
	b.loggedIn.Store(loggedIn)

	if loggedIn {
		b.syncJob.Start(b.backgroundContext(ctx), b.interval, b.LoggedIn)
		log.Info().Dur("interval", b.interval).Msg("user logged in, sync timer running")
		return
	}

	b.syncJob.Stop()
	if err := b.store.Clear(ctx); err != nil {
		log.Err(err).Msg("error while deleting data from local store")
		return
	}
	log.Info().Msg("user logged out, local store cleared")
}

// syncNow runs a pass regardless of the timer and the login flag.
func (b *sessionBridge) syncNow(ctx context.Context) {
	passCtx := b.backgroundContext(ctx)

	b.inFlight.Add(1)
	go func() {
		defer b.inFlight.Done()
		_ = b.syncService.Pass(passCtx)
	}()
}

// backgroundContext keeps the request-scoped logger of ctx but is cancelled
// only by Shutdown.
func (b *sessionBridge) backgroundContext(ctx context.Context) context.Context {
	return logger.FromContext(ctx).WithContext(b.ctx)
}
