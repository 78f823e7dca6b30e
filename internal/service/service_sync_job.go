package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/mapster-agent/internal/config"
	"github.com/MKhiriev/mapster-agent/internal/metrics"
)

type syncJob struct {
	syncService SyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	loop   sync.WaitGroup

	// passes tracks timer-fired passes. They run on the context given to
	// Start, so Stop does not cancel them.
	passes  sync.WaitGroup
	running atomic.Bool
}

// NewSyncJob creates a syncJob that calls syncService.Pass on a ticker. The
// job is idle until Start is called.
func NewSyncJob(syncService SyncService) SyncJob {
	return &syncJob{syncService: syncService}
}

// Start implements SyncJob. A second Start while the timer runs keeps the
// existing timer and its interval. If interval is zero or negative it
// defaults to config.DefaultSyncInterval. The timer exits when ctx is
// cancelled or Stop is called. A tick is skipped while the previous pass is
// still running.
func (j *syncJob) Start(ctx context.Context, interval time.Duration, guard func() bool) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cancel != nil {
		return
	}

	timerCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.loop.Add(1)
	metrics.SyncTimerRunning.Set(1)

	go func() {
		defer j.loop.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-timerCtx.Done():
				return
			case <-t.C:
				if guard != nil && !guard() {
					continue
				}
				j.firePass(ctx)
			}
		}
	}()
}

func (j *syncJob) firePass(ctx context.Context) {
	if !j.running.CompareAndSwap(false, true) {
		return
	}

	j.passes.Add(1)
	go func() {
		defer j.passes.Done()
		defer j.running.Store(false)
		_ = j.syncService.Pass(ctx)
	}()
}

// Stop implements SyncJob. It halts the timer and waits for the timer
// goroutine to exit. A pass already in flight keeps running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		metrics.SyncTimerRunning.Set(0)
	}
	j.loop.Wait()
}

// Wait implements SyncJob.
func (j *syncJob) Wait() {
	j.passes.Wait()
}

func (j *syncJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}
