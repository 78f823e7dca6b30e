package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgentConfig_Defaults(t *testing.T) {
	cfg, err := NewAgentConfig(defaultConfig())
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultOriginAddress, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, 60*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultLRUSize, cfg.Cache.LRUSize)
	assert.Equal(t, DefaultInstallConcurrency, cfg.Cache.InstallConcurrency)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
}

func TestNewAgentConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "file::memory:?cache=shared" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty listen address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "origin without scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "localhost:5000" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "origin with ftp scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "ftp://origin" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero sync interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero lru size",
			mutate:  func(cfg *StructuredConfig) { cfg.Cache.LRUSize = 0 },
			wantErr: ErrInvalidCacheConfigs,
		},
		{
			name:    "zero install concurrency",
			mutate:  func(cfg *StructuredConfig) { cfg.Cache.InstallConcurrency = 0 },
			wantErr: ErrInvalidCacheConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := defaultConfig()
			tt.mutate(base)

			cfg, err := NewAgentConfig(base)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewAgentConfig_CacheVersionOverride(t *testing.T) {
	base := defaultConfig()
	base.Cache.Version = "mapster-cache-v42"

	cfg, err := NewAgentConfig(base)
	require.NoError(t, err)
	assert.Equal(t, "mapster-cache-v42", cfg.Cache.Version)
}
