// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/mitchellh/go-homedir"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.expandPaths(); err != nil {
		return nil, fmt.Errorf("error expanding paths: %w", err)
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags == nil {
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		expanded, err := homedir.Expand(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}

		jsonCfg, err := parseJSON(expanded)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// expandPaths resolves a leading "~" in every path-like setting.
func (cfg *StructuredConfig) expandPaths() error {
	paths := []*string{
		&cfg.App.DataPath,
		&cfg.App.LogFile,
		&cfg.Storage.RegistryPath,
	}
	if cfg.Storage.Driver == DriverSQLite {
		paths = append(paths, &cfg.Storage.DB.DSN)
	}

	for _, p := range paths {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}

	return nil
}
