// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package agent implements the offline agent runtime.
//
// It runs the startup workers (asset cache install and activation, login
// check), serves the HTTP surface until shutdown, then stops background sync
// and releases the local database.
package agent
