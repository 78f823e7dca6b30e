// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// mapster offline agent. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the version label and the
	// log level.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the agent's HTTP surface.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the origin server the agent proxies and syncs from.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the periodic sync settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Cache holds the asset cache generation and its in-memory front.
	Cache Cache `envPrefix:"CACHE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is the version label reported at start.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the local store.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded database.
type DB struct {
	// DSN is the SQLite data source, usually a file path
	// (e.g. "file:mapster.db?_foreign_keys=on").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds the settings of the agent's inbound HTTP listener.
type Server struct {
	// HTTPAddress is the "host:port" the agent listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the origin server settings.
type Adapter struct {
	// HTTPAddress is the base URL of the origin server
	// (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of one outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval is the period of the background sync timer.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Cache holds asset cache settings.
type Cache struct {
	// Version overrides the built-in cache generation tag.
	// Env: CACHE_VERSION
	Version string `env:"VERSION"`

	// LRUSize is the number of responses kept in memory in front of the
	// database.
	// Env: CACHE_LRU_SIZE
	LRUSize int `env:"LRU_SIZE"`

	// LRUTTL is how long an in-memory entry stays valid.
	// Env: CACHE_LRU_TTL
	LRUTTL time.Duration `env:"LRU_TTL"`

	// InstallConcurrency bounds parallel fetches during install.
	// Env: CACHE_INSTALL_CONCURRENCY
	InstallConcurrency int `env:"INSTALL_CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the agent configuration
// from all available sources. For every field the first non-zero value wins,
// in this order:
//  1. Environment variables (a .env file in the working directory is loaded first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
