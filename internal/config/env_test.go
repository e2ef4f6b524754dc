// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_ / MIRROR_
		"STORAGE_DB_DSN":      "client.db",
		"STORAGE_MIRROR_PATH": "pairing.json",

		"WORKERS_SYNC_SHORT_DELAY":    "2s",
		"WORKERS_SYNC_BASELINE_DELAY": "1m",
		"WORKERS_SYNC_MAX_DELAY":      "10m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "pairing.json", cfg.Storage.Mirror.Path)
	assert.Equal(t, 2*time.Second, cfg.Workers.SyncShortDelay)
	assert.Equal(t, time.Minute, cfg.Workers.SyncBaselineDelay)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncMaxDelay)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
