// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable before
// any component is built from it.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with details otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverFile:
		if cfg.Storage.RegistryPath == "" {
			return fmt.Errorf("%w: registry path is empty", ErrInvalidStorageConfigs)
		}
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: dsn is required for driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if !strings.HasPrefix(cfg.Adapter.HTTPAddress, "http://") && !strings.HasPrefix(cfg.Adapter.HTTPAddress, "https://") {
		return fmt.Errorf("%w: bridge address must be an http(s) URL", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
