// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"data_path": "/srv/mirror", "log_level": "error", "log_file": "/var/log/m.log"},
		"storage": map[string]any{"driver": "sqlite", "registry_path": "/r.json", "db": map[string]any{"dsn": "/m.db"}},
		"adapter": map[string]any{"http_address": "http://bridge:1", "request_timeout": "15s"},
		"server":  map[string]any{"http_address": "localhost:8081"},
		"workers": map[string]any{"sync_interval": 60000000000},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/mirror", cfg.App.DataPath)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "/var/log/m.log", cfg.App.LogFile)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/r.json", cfg.Storage.RegistryPath)
	assert.Equal(t, "/m.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://bridge:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"workers":{"sync_interval":true}}`), 0o600))
	_, err = parseJSON(bad)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
