// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid bridge client settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing
	// registry path / DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
