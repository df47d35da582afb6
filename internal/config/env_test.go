// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("MIRROR_APP_DATA_PATH", "/srv/mirror")
	t.Setenv("MIRROR_STORAGE_DRIVER", "postgres")
	t.Setenv("MIRROR_STORAGE_DB_DSN", "postgres://localhost/mirror")
	t.Setenv("MIRROR_ADAPTER_REQUEST_TIMEOUT", "3s")
	t.Setenv("MIRROR_SERVER_ADDRESS", "localhost:8080")
	t.Setenv("MIRROR_CONFIG", "/etc/mirror.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "/srv/mirror", cfg.App.DataPath)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/mirror", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "/etc/mirror.json", cfg.JSONFilePath)
}

func TestParseEnv_IgnoresUnprefixedVariables(t *testing.T) {
	t.Setenv("APP_DATA_PATH", "/not/used")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Empty(t, cfg.App.DataPath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("MIRROR_WORKERS_SYNC_INTERVAL", "soon")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
