// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks itineraries received from the origin server
// before the sync engine stores them. Records without an id or a
// last-modified timestamp are dropped; other rules are advisory.
package validators

import "context"

// Validator checks obj, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
