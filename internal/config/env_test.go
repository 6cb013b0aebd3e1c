// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SPACE_SYNC_CONFIG": "/path/to/config.json",

		"SPACE_SYNC_SOURCE_SPACE_ID":       "src-space",
		"SPACE_SYNC_SOURCE_ENVIRONMENT":    "staging",
		"SPACE_SYNC_SOURCE_DELIVERY_TOKEN": "cda-token",
		"SPACE_SYNC_SOURCE_HOST":           "preview.example.com",

		"SPACE_SYNC_DESTINATION_SPACE_ID":         "dst-space",
		"SPACE_SYNC_DESTINATION_ENVIRONMENT":      "master",
		"SPACE_SYNC_DESTINATION_MANAGEMENT_TOKEN": "cma-token",
		"SPACE_SYNC_DESTINATION_HOST":             "api.example.com",

		"SPACE_SYNC_ADAPTER_REQUEST_TIMEOUT": "45s",
		"SPACE_SYNC_ADAPTER_RETRY_COUNT":     "5",
		"SPACE_SYNC_ADAPTER_PROXY":           "http://proxy:3128",
		"SPACE_SYNC_ADAPTER_PAGE_SIZE":       "250",

		"SPACE_SYNC_RUN_TOKEN_FILE":     "/var/lib/space-sync/token",
		"SPACE_SYNC_RUN_ERROR_LOG_FILE": "/var/log/space-sync/errors.json",
		"SPACE_SYNC_RUN_TOKEN":          "initial",
		"SPACE_SYNC_RUN_CONCURRENCY":    "8",
		"SPACE_SYNC_RUN_INTERVAL":       "10m",

		"SPACE_SYNC_LOG_FILE":  "/var/log/space-sync/app.log",
		"SPACE_SYNC_LOG_LEVEL": "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "src-space", cfg.Source.SpaceID)
	assert.Equal(t, "staging", cfg.Source.Environment)
	assert.Equal(t, "cda-token", cfg.Source.DeliveryToken)
	assert.Equal(t, "preview.example.com", cfg.Source.Host)

	assert.Equal(t, "dst-space", cfg.Destination.SpaceID)
	assert.Equal(t, "master", cfg.Destination.Environment)
	assert.Equal(t, "cma-token", cfg.Destination.ManagementToken)
	assert.Equal(t, "api.example.com", cfg.Destination.Host)

	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5, cfg.Adapter.RetryCount)
	assert.Equal(t, "http://proxy:3128", cfg.Adapter.ProxyURL)
	assert.Equal(t, 250, cfg.Adapter.PageSize)

	assert.Equal(t, "/var/lib/space-sync/token", cfg.Sync.TokenFile)
	assert.Equal(t, "/var/log/space-sync/errors.json", cfg.Sync.ErrorLogFile)
	assert.Equal(t, "initial", cfg.Sync.InitialToken)
	assert.Equal(t, 8, cfg.Sync.Concurrency)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)

	assert.Equal(t, "/var/log/space-sync/app.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SPACE_SYNC_SOURCE_SPACE_ID": "src-space",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "src-space", cfg.Source.SpaceID)
	assert.Empty(t, cfg.Source.DeliveryToken)
	assert.Empty(t, cfg.Destination)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Sync.Concurrency)
}

func TestParseEnv_UnprefixedVariablesIgnored(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SOURCE_SPACE_ID": "not-mine",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Source.SpaceID)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SPACE_SYNC_ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SPACE_SYNC_RUN_CONCURRENCY": "many",
	})

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

// setEnvVars clears every variable space-sync reads, then sets vars for the
// duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"SPACE_SYNC_CONFIG",

		"SPACE_SYNC_SOURCE_SPACE_ID",
		"SPACE_SYNC_SOURCE_ENVIRONMENT",
		"SPACE_SYNC_SOURCE_DELIVERY_TOKEN",
		"SPACE_SYNC_SOURCE_HOST",

		"SPACE_SYNC_DESTINATION_SPACE_ID",
		"SPACE_SYNC_DESTINATION_ENVIRONMENT",
		"SPACE_SYNC_DESTINATION_MANAGEMENT_TOKEN",
		"SPACE_SYNC_DESTINATION_HOST",

		"SPACE_SYNC_ADAPTER_REQUEST_TIMEOUT",
		"SPACE_SYNC_ADAPTER_RETRY_COUNT",
		"SPACE_SYNC_ADAPTER_PROXY",
		"SPACE_SYNC_ADAPTER_PAGE_SIZE",

		"SPACE_SYNC_RUN_TOKEN_FILE",
		"SPACE_SYNC_RUN_ERROR_LOG_FILE",
		"SPACE_SYNC_RUN_TOKEN",
		"SPACE_SYNC_RUN_CONCURRENCY",
		"SPACE_SYNC_RUN_INTERVAL",

		"SPACE_SYNC_LOG_FILE",
		"SPACE_SYNC_LOG_LEVEL",
	}
	for _, k := range keys {
		// t.Setenv restores the previous value on cleanup.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
