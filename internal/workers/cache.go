package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mapster-agent/internal/service"
)

type cacheWorker struct {
	cache service.AssetCache
}

// NewCacheWorker installs the current asset cache generation and activates
// it. When the install fails the previous generation keeps serving and
// activation is skipped.
func NewCacheWorker(cache service.AssetCache) Worker {
	return &cacheWorker{cache: cache}
}

func (w *cacheWorker) Name() string {
	return "asset-cache"
}

func (w *cacheWorker) Run(ctx context.Context) error {
	if err := w.cache.Install(ctx); err != nil {
		return fmt.Errorf("install %s: %w", w.cache.Version(), err)
	}
	if err := w.cache.Activate(ctx); err != nil {
		return fmt.Errorf("activate %s: %w", w.cache.Version(), err)
	}
	return nil
}
