// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// memo-sync client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds network settings for the remote sync transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backends: the
	// SQLite database and the pairing mirror file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the background sync scheduler.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after env and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings used by the sync transport layer. The
// remote base URL itself is not configuration: it comes from the persisted
// pairing state.
type Adapter struct {
	// RequestTimeout is the default timeout for outbound sync requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// Mirror holds the pairing mirror file settings.
	Mirror Mirror `envPrefix:"MIRROR_"`
}

// DB contains the local database connection settings.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Mirror contains the settings of the fast-boot pairing mirror: a small
// file holding a copy of the endpoint URL and token so pairing survives a
// primary-store initialization race.
type Mirror struct {
	// Path is the mirror file location.
	// Env: STORAGE_MIRROR_PATH
	Path string `env:"PATH"`
}

// Workers contains the background sync scheduler settings.
type Workers struct {
	// SyncShortDelay is the delay armed on startup and after an
	// online/visible trigger.
	// Env: WORKERS_SYNC_SHORT_DELAY
	SyncShortDelay time.Duration `env:"SYNC_SHORT_DELAY"`

	// SyncBaselineDelay is the delay armed after a successful cycle.
	// Env: WORKERS_SYNC_BASELINE_DELAY
	SyncBaselineDelay time.Duration `env:"SYNC_BASELINE_DELAY"`

	// SyncMaxDelay caps backoff growth.
	// Env: WORKERS_SYNC_MAX_DELAY
	SyncMaxDelay time.Duration `env:"SYNC_MAX_DELAY"`
}

// defaultConfig returns the built-in fallback values merged in last.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB:     DB{DSN: "memo-sync.db"},
			Mirror: Mirror{Path: "memo-sync-pairing.json"},
		},
		Workers: Workers{
			SyncShortDelay:    2 * time.Second,
			SyncBaselineDelay: 60 * time.Second,
			SyncMaxDelay:      10 * time.Minute,
		},
	}
}
