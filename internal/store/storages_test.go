// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileConfig(dataPath string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:     config.App{DataPath: dataPath},
		Storage: config.Storage{Driver: config.DriverFile, RegistryPath: "/cfg/media-mirror.json"},
	}
}

func TestNewStorages_ConfiguredDataPathIsRecorded(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	s, err := newStorages(ctx, fileConfig("/srv/mirror"), fs, nil, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/srv/mirror", s.DataPath)

	reg, err := s.Registry.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/srv/mirror", reg.DataPath)

	require.NoError(t, s.Mirror.Commit(ctx, "uuid:srv", models.NewForest()))
	exists, err := afero.Exists(fs, "/srv/mirror/uuid:srv.json")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, s.Close())
}

func TestNewStorages_RecordedDataPathIsReused(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	_, err := newStorages(ctx, fileConfig("/first"), fs, nil, logger.Nop())
	require.NoError(t, err)

	s, err := newStorages(ctx, fileConfig(""), fs, nil, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/first", s.DataPath)
}

func TestNewStorages_DefaultDataPath(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	s, err := newStorages(context.Background(), fileConfig(""), afero.NewMemMapFs(), nil, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "media-mirror"), s.DataPath)
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	cfg := fileConfig("")
	cfg.Storage.Driver = "bolt"

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestResolveDataPath(t *testing.T) {
	p, err := resolveDataPath("/a/b/", "/c")
	require.NoError(t, err)
	assert.Equal(t, "/a/b", p)

	p, err = resolveDataPath("  ", "/c")
	require.NoError(t, err)
	assert.Equal(t, "/c", p)
}
