// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate rejects values that are invalid whenever they are set. Missing
// values are allowed here; [AgentConfig.validate] enforces completeness.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Cache.LRUSize < 0 || cfg.Cache.LRUTTL < 0 || cfg.Cache.InstallConcurrency < 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}

func (cfg *AgentConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || !isHTTPURL(cfg.Adapter.BaseURL) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Cache.LRUSize <= 0 || cfg.Cache.InstallConcurrency <= 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
