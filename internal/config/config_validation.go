// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncShortDelay == 0 || cfg.Workers.SyncBaselineDelay == 0 || cfg.Workers.SyncMaxDelay == 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Workers.SyncMaxDelay < cfg.Workers.SyncBaselineDelay {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
