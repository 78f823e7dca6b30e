package server

import "context"

// Server defines the lifecycle contract of the agent's transport server.
//
// Implementations block in [RunServer] until ctx is cancelled or a stop
// signal arrives, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A listener failure is returned; a requested shutdown is not an error.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
