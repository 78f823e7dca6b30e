// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package agent

import "context"

// Runner defines the minimal lifecycle contract of the agent process.
type Runner interface {
	// Run starts the agent and blocks until it stops.
	Run(ctx context.Context) error
}
