package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mapster-agent/internal/adapter"
	"github.com/MKhiriev/mapster-agent/internal/assets"
	"github.com/MKhiriev/mapster-agent/internal/config"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/metrics"
	"github.com/MKhiriev/mapster-agent/internal/store"
	"github.com/MKhiriev/mapster-agent/models"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"
)

type assetCache struct {
	repo     store.AssetCacheRepository
	adapter  adapter.ServerAdapter
	manifest assets.Manifest

	front       *expirable.LRU[string, models.CachedResponse]
	concurrency int
	now         func() time.Time

	logger *logger.Logger
}

// NewAssetCache builds the asset cache for manifest. A non-empty cfg.Version
// overrides the manifest's generation tag. Lookups go through an in-memory
// LRU of cfg.LRUSize entries expiring after cfg.LRUTTL.
func NewAssetCache(
	repo store.AssetCacheRepository,
	serverAdapter adapter.ServerAdapter,
	manifest assets.Manifest,
	cfg config.AgentCache,
	logger *logger.Logger,
) AssetCache {
	size := cfg.LRUSize
	if size <= 0 {
		size = config.DefaultLRUSize
	}
	concurrency := cfg.InstallConcurrency
	if concurrency <= 0 {
		concurrency = config.DefaultInstallConcurrency
	}

	return &assetCache{
		repo:        repo,
		adapter:     serverAdapter,
		manifest:    manifest.WithVersion(cfg.Version),
		front:       expirable.NewLRU[string, models.CachedResponse](size, nil, cfg.LRUTTL),
		concurrency: concurrency,
		now:         time.Now,
		logger:      logger,
	}
}

func (c *assetCache) Version() string {
	return c.manifest.Version
}

func (c *assetCache) Manifest() assets.Manifest {
	return c.manifest
}

// Install fetches the manifest with bounded parallelism. Entries are written
// only after every fetch succeeded, in a single transaction.
func (c *assetCache) Install(ctx context.Context) error {
	log := c.logger.With().Str("func", "assetCache.Install").Str("cache", c.manifest.Version).Logger()

	urls := c.manifest.InstallURLs()
	entries := make([]models.CacheEntry, len(urls))
	storedAt := c.now().UTC()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			resp, err := c.adapter.FetchAsset(gctx, u)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", u, err)
			}
			if !resp.OK() {
				return fmt.Errorf("%w: %s answered %d", ErrInvalidAsset, u, resp.Status)
			}
			entries[i] = models.CacheEntry{
				CacheName:  c.manifest.Version,
				RequestKey: u,
				Response:   resp,
				StoredAt:   storedAt,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		metrics.CacheInstallsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Err(err).Msg("asset cache population failed, keeping previous generation")
		return fmt.Errorf("%w: %w", ErrCacheInstallFailed, err)
	}

	if err := c.repo.PutAll(ctx, c.manifest.Version, entries...); err != nil {
		metrics.CacheInstallsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Err(err).Msg("failed to store asset cache generation")
		return fmt.Errorf("%w: %w", ErrCacheInstallFailed, err)
	}

	metrics.CacheInstallsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info().Int("assets", len(entries)).Msg("asset cache installed")
	return nil
}

// Activate removes stale generations. The in-memory front is purged
// afterwards so lookups switch to the current generation at once.
func (c *assetCache) Activate(ctx context.Context) error {
	log := c.logger.With().Str("func", "assetCache.Activate").Str("cache", c.manifest.Version).Logger()

	names, err := c.repo.CacheNames(ctx)
	if err != nil {
		return fmt.Errorf("list cache generations: %w", err)
	}

	var errs []error
	for _, name := range names {
		if name == c.manifest.Version {
			continue
		}
		if err = c.repo.DeleteCache(ctx, name); err != nil {
			errs = append(errs, fmt.Errorf("delete cache %q: %w", name, err))
			continue
		}
		log.Info().Str("old_cache", name).Msg("deleted old cache generation")
	}

	c.front.Purge()
	log.Info().Msg("asset cache activated, clients claimed")

	return errors.Join(errs...)
}

func (c *assetCache) Match(ctx context.Context, requestKey string) (models.CachedResponse, bool) {
	if resp, ok := c.front.Get(requestKey); ok {
		metrics.CacheLookupsTotal.WithLabelValues(metrics.LayerMemory, metrics.ResultHit).Inc()
		return resp, true
	}
	metrics.CacheLookupsTotal.WithLabelValues(metrics.LayerMemory, metrics.ResultMiss).Inc()

	entry, err := c.repo.Match(ctx, requestKey, c.manifest.Version)
	if err != nil {
		metrics.CacheLookupsTotal.WithLabelValues(metrics.LayerDatabase, metrics.ResultMiss).Inc()
		if !errors.Is(err, store.ErrCacheEntryNotFound) {
			c.logger.Err(err).
				Str("func", "assetCache.Match").
				Str("request_key", requestKey).
				Msg("asset cache lookup failed")
		}
		return models.CachedResponse{}, false
	}

	metrics.CacheLookupsTotal.WithLabelValues(metrics.LayerDatabase, metrics.ResultHit).Inc()
	c.front.Add(requestKey, entry.Response)
	return entry.Response, true
}
