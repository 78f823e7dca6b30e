// Package config provides configuration loading, merging, and validation
// facilities for the offline agent.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged values
// and [GetAgentConfig] for the validated agent view.
package config
