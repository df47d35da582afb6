// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MIRROR_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types, under [EnvPrefix].
//
// Returns a wrapped error if parsing fails (e.g. a value cannot be converted
// to the target type).
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
