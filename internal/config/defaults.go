package config

import "time"

// Built-in defaults applied after every other source.
const (
	DefaultHTTPAddress        = "localhost:8090"
	DefaultOriginAddress      = "http://localhost:5000"
	DefaultDSN                = "mapster-agent.db"
	DefaultLogLevel           = "info"
	DefaultRequestTimeout     = 15 * time.Second
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultSyncInterval       = 60 * time.Second
	DefaultLRUSize            = 256
	DefaultLRUTTL             = 10 * time.Minute
	DefaultInstallConcurrency = 8
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultOriginAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
		},
		Cache: Cache{
			LRUSize:            DefaultLRUSize,
			LRUTTL:             DefaultLRUTTL,
			InstallConcurrency: DefaultInstallConcurrency,
		},
	}
}
