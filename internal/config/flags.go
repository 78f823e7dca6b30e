package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress is the -a flag value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the agent's command-line flags from args.
//
// Flags:
//
//	-a agent listen address in format [host]:[port]
//	-u origin server base URL
//	-d SQLite database DSN
//	-c/-config json file path with configs
//	-sync-interval background sync period (e.g., "60s", "5m")
//	-request-timeout outbound request timeout (e.g., "15s")
//	-cache-version asset cache generation tag
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	var listenAddress NetAddress
	var originAddress string
	var databaseDSN string
	var jsonConfigPath string
	var syncInterval time.Duration
	var requestTimeout time.Duration
	var cacheVersion string
	var logLevel string

	fs := flag.NewFlagSet("mapster-agent", flag.ContinueOnError)
	fs.Var(&listenAddress, "a", "Net address host:port")
	fs.StringVar(&originAddress, "u", "", "Origin server base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 60s, 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&cacheVersion, "cache-version", "", "Asset cache version tag")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: listenAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    originAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Cache: Cache{
			Version: cacheVersion,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), "localhost",
// or an IPv4/IPv6 literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
