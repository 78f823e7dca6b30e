// Package workers provides the startup tasks the agent runs before it starts
// serving: installing and activating the asset cache and probing the login
// state of the relayed session.
//
// Each task implements [Worker]; [Workers] runs them in registration order.
package workers

import "context"

// Worker is a single startup task.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string { return "my-worker" }
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // do the work, honour ctx cancellation
//	    return nil
//	}
type Worker interface {
	// Name identifies the worker in logs.
	Name() string

	// Run performs the task and blocks until it is done.
	Run(ctx context.Context) error
}
