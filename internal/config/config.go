// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Default values applied to every field left empty by all other sources.
const (
	DefaultEnvironment    = "master"
	DefaultDeliveryHost   = "cdn.contentful.com"
	DefaultManagementHost = "api.contentful.com"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryCount     = 3
	DefaultPageSize       = 100
	DefaultConcurrency    = 4
	DefaultLogLevel       = "info"
)

// errorLogTimeLayout stamps default error log names; it avoids ':' so the
// names are valid on every filesystem.
const errorLogTimeLayout = "2006-01-02T15-04-05"

// StructuredConfig is the top-level configuration container for space-sync.
// It aggregates all sub-configurations and is populated by merging values
// from defaults, an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Source describes the space content is read from.
	Source Source `envPrefix:"SOURCE_"`

	// Destination describes the space content is written to.
	Destination Destination `envPrefix:"DESTINATION_"`

	// Adapter holds transport settings shared by both API clients.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds run-level settings: token and error-log locations,
	// push concurrency and the optional watch interval.
	Sync Sync `envPrefix:"RUN_"`

	// Log holds application log settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the SPACE_SYNC_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Source holds the read-only delivery API credentials of the source space.
type Source struct {
	// SpaceID identifies the source space.
	// Env: SPACE_SYNC_SOURCE_SPACE_ID
	SpaceID string `env:"SPACE_ID"`

	// Environment is the source environment id (default "master").
	// Env: SPACE_SYNC_SOURCE_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// DeliveryToken is the delivery API access token. Must be kept confidential.
	// Env: SPACE_SYNC_SOURCE_DELIVERY_TOKEN
	DeliveryToken string `env:"DELIVERY_TOKEN"`

	// Host is the delivery API host, with or without scheme.
	// Env: SPACE_SYNC_SOURCE_HOST
	Host string `env:"HOST"`
}

// Destination holds the management API credentials of the destination space.
type Destination struct {
	// SpaceID identifies the destination space.
	// Env: SPACE_SYNC_DESTINATION_SPACE_ID
	SpaceID string `env:"SPACE_ID"`

	// Environment is the destination environment id (default "master").
	// Env: SPACE_SYNC_DESTINATION_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// ManagementToken is the management API token. Must be kept confidential.
	// Env: SPACE_SYNC_DESTINATION_MANAGEMENT_TOKEN
	ManagementToken string `env:"MANAGEMENT_TOKEN"`

	// Host is the management API host, with or without scheme.
	// Env: SPACE_SYNC_DESTINATION_HOST
	Host string `env:"HOST"`
}

// Adapter holds HTTP transport settings.
type Adapter struct {
	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: SPACE_SYNC_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a failed request is retried by the HTTP
	// client (rate limits and 5xx only).
	// Env: SPACE_SYNC_ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// ProxyURL routes both clients through an HTTP proxy when set.
	// Env: SPACE_SYNC_ADAPTER_PROXY
	ProxyURL string `env:"PROXY"`

	// PageSize is the limit used when listing destination collections.
	// Env: SPACE_SYNC_ADAPTER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Sync holds run settings.
type Sync struct {
	// TokenFile is where the next sync token is written after every run and
	// read from before the next one. Defaults to
	// space-sync-token-<source space>-<destination space>.
	// Env: SPACE_SYNC_RUN_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`

	// ErrorLogFile receives the flushed error buffer. Defaults to
	// space-sync-errors-<start time>.json.
	// Env: SPACE_SYNC_RUN_ERROR_LOG_FILE
	ErrorLogFile string `env:"ERROR_LOG_FILE"`

	// InitialToken overrides the token file for the first run.
	// Env: SPACE_SYNC_RUN_TOKEN
	InitialToken string `env:"TOKEN"`

	// Concurrency bounds parallel entry/asset pushes.
	// Env: SPACE_SYNC_RUN_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// Interval enables watch mode: the sync repeats every Interval.
	// Zero runs once.
	// Env: SPACE_SYNC_RUN_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Log holds application log settings.
type Log struct {
	// File is the rotated log file path; empty logs to stdout.
	// Env: SPACE_SYNC_LOG_FILE
	File string `env:"FILE"`

	// Level is the minimum log level (debug, info, warn, error).
	// Env: SPACE_SYNC_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Priority, lowest first:
//  1. Built-in defaults
//  2. JSON file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags (args, usually os.Args[1:])
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Source: Source{
			Environment: DefaultEnvironment,
			Host:        DefaultDeliveryHost,
		},
		Destination: Destination{
			Environment: DefaultEnvironment,
			Host:        DefaultManagementHost,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
			PageSize:       DefaultPageSize,
		},
		Sync: Sync{
			Concurrency: DefaultConcurrency,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// deriveFileLocations fills the token file and error log locations left
// empty by every source. The token file is keyed by the space pair so runs
// between different spaces never share a token; it stays empty until both
// space ids are known.
func (cfg *StructuredConfig) deriveFileLocations(now time.Time) {
	src := strings.TrimSpace(cfg.Source.SpaceID)
	dst := strings.TrimSpace(cfg.Destination.SpaceID)

	if strings.TrimSpace(cfg.Sync.TokenFile) == "" && src != "" && dst != "" {
		cfg.Sync.TokenFile = fmt.Sprintf("space-sync-token-%s-%s", src, dst)
	}
	if strings.TrimSpace(cfg.Sync.ErrorLogFile) == "" {
		cfg.Sync.ErrorLogFile = fmt.Sprintf("space-sync-errors-%s.json", now.UTC().Format(errorLogTimeLayout))
	}
}
