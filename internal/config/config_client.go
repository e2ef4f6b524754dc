package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// RequestTimeout is the default timeout for outbound sync requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientMirror contains the pairing mirror file settings.
type ClientMirror struct {
	// Path is the mirror file location.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Mirror holds the pairing mirror file settings.
	Mirror ClientMirror
}

// ClientWorkers contains background sync scheduler settings.
type ClientWorkers struct {
	// SyncShortDelay is armed on startup and after trigger events.
	SyncShortDelay time.Duration
	// SyncBaselineDelay is armed after a successful sync cycle.
	SyncBaselineDelay time.Duration
	// SyncMaxDelay caps backoff growth.
	SyncMaxDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background scheduler settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It merges env, flags, the optional JSON file and the built-in defaults,
// maps only the fields relevant to the client runtime, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Mirror: ClientMirror{
				Path: cfg.Storage.Mirror.Path,
			},
		},
		Workers: ClientWorkers{
			SyncShortDelay:    cfg.Workers.SyncShortDelay,
			SyncBaselineDelay: cfg.Workers.SyncBaselineDelay,
			SyncMaxDelay:      cfg.Workers.SyncMaxDelay,
		},
	}

	return clientCfg, clientCfg.validate()
}
