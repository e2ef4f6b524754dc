package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-mirror pairing mirror file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-short-delay scheduler short delay (e.g., "2s")
//	-sync-baseline-delay scheduler baseline delay (e.g., "60s")
//	-sync-max-delay scheduler backoff cap (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var mirrorPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncShortDelay time.Duration
	var syncBaselineDelay time.Duration
	var syncMaxDelay time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&mirrorPath, "mirror", "", "Pairing mirror file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncShortDelay, "sync-short-delay", 0, "Scheduler short delay (e.g., 2s)")
	flag.DurationVar(&syncBaselineDelay, "sync-baseline-delay", 0, "Scheduler baseline delay (e.g., 60s)")
	flag.DurationVar(&syncMaxDelay, "sync-max-delay", 0, "Scheduler backoff cap (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Mirror: Mirror{
				Path: mirrorPath,
			},
		},
		Workers: Workers{
			SyncShortDelay:    syncShortDelay,
			SyncBaselineDelay: syncBaselineDelay,
			SyncMaxDelay:      syncMaxDelay,
		},
		JSONFilePath: jsonConfigPath,
	}
}
