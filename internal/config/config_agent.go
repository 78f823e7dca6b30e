package config

import (
	"fmt"
	"time"
)

// AgentApp holds process-level agent settings.
type AgentApp struct {
	// Version is the version label printed at start.
	Version string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// AgentServer holds the agent's listener settings.
type AgentServer struct {
	HTTPAddress     string
	ShutdownTimeout time.Duration
}

// AgentAdapter holds settings of the outbound origin transport.
type AgentAdapter struct {
	// BaseURL is the origin server base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// AgentDB contains local database connection settings.
type AgentDB struct {
	DSN string
}

// AgentStorage groups local storage settings.
type AgentStorage struct {
	DB AgentDB
}

// AgentWorkers contains background job settings.
type AgentWorkers struct {
	// SyncInterval defines how often the sync timer fires.
	SyncInterval time.Duration
}

// AgentCache contains asset cache settings.
type AgentCache struct {
	// Version overrides the built-in cache generation tag when non-empty.
	Version            string
	LRUSize            int
	LRUTTL             time.Duration
	InstallConcurrency int
}

// AgentConfig is the validated configuration view used by the offline agent.
type AgentConfig struct {
	App     AgentApp
	Server  AgentServer
	Adapter AgentAdapter
	Storage AgentStorage
	Workers AgentWorkers
	Cache   AgentCache
}

// GetAgentConfig loads the merged structured configuration via
// [GetStructuredConfig] and returns its validated agent view.
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewAgentConfig(cfg)
}

// NewAgentConfig maps the fields relevant to the agent runtime and validates
// the result.
func NewAgentConfig(cfg *StructuredConfig) (*AgentConfig, error) {
	agentCfg := &AgentConfig{
		App: AgentApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Server: AgentServer{
			HTTPAddress:     cfg.Server.HTTPAddress,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		Adapter: AgentAdapter{
			BaseURL:        cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: AgentStorage{
			DB: AgentDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: AgentWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Cache: AgentCache{
			Version:            cfg.Cache.Version,
			LRUSize:            cfg.Cache.LRUSize,
			LRUTTL:             cfg.Cache.LRUTTL,
			InstallConcurrency: cfg.Cache.InstallConcurrency,
		},
	}

	if err := agentCfg.validate(); err != nil {
		return nil, err
	}

	return agentCfg, nil
}
