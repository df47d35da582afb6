// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

// Storages groups the registry and mirror repositories into a single value
// that can be passed around the service layer.
type Storages struct {
	// Registry persists the tracked-server registry.
	Registry RegistryRepository

	// Mirror persists one replica document per tracked server.
	Mirror MirrorRepository

	// DataPath is the resolved root directory of the mirror documents.
	DataPath string

	db *DB
}

// NewStorages initialises the storage layer selected by cfg.Storage.Driver
// on the OS filesystem. It performs the following steps:
//  1. Builds the registry repository (JSON file or SQL tables).
//  2. Resolves the data path: cfg.App.DataPath, else the path recorded in
//     the registry, else [config.DefaultDataPath].
//  3. Records a changed data path in the registry.
//  4. Builds the mirror repository rooted at the data path.
//
// For the SQL drivers the database connection is opened and migrated first.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Storage.Driver).Msg("creating new storages...")

	switch cfg.Storage.Driver {
	case config.DriverFile:
		return newStorages(ctx, cfg, afero.NewOsFs(), nil, log)
	case config.DriverSQLite, config.DriverPostgres:
		db, err := NewConnect(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("database connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return newStorages(ctx, cfg, afero.NewOsFs(), db, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}
}

// newStorages wires the repositories on fs, or on db when it is not nil.
func newStorages(ctx context.Context, cfg *config.StructuredConfig, fs afero.Fs, db *DB, log *logger.Logger) (*Storages, error) {
	var (
		registryStore DocumentStore
		registryName  string
	)

	if db != nil {
		registryStore = NewSQLDocumentStore(db, NamespaceRegistry, log)
		registryName = NamespaceRegistry
	} else {
		registryStore = NewFileDocumentStore(fs, filepath.Dir(cfg.Storage.RegistryPath), "", log)
		registryName = filepath.Base(cfg.Storage.RegistryPath)
	}

	registry := NewRegistryRepository(registryStore, registryName, log)

	current, err := registry.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	dataPath, err := resolveDataPath(cfg.App.DataPath, current.DataPath)
	if err != nil {
		return nil, err
	}

	if current.DataPath != dataPath {
		current.DataPath = dataPath
		if err = registry.Save(ctx, current); err != nil {
			return nil, fmt.Errorf("record data path: %w", err)
		}
	}

	var mirrorStore DocumentStore
	if db != nil {
		mirrorStore = NewSQLDocumentStore(db, NamespaceMirror, log)
	} else {
		mirrorStore = NewFileDocumentStore(fs, dataPath, DocumentExt, log)
	}

	log.Info().Str("data_path", dataPath).Msg("storages ready")

	return &Storages{
		Registry: registry,
		Mirror:   NewMirrorRepository(mirrorStore, log),
		DataPath: dataPath,
		db:       db,
	}, nil
}

func resolveDataPath(configured, recorded string) (string, error) {
	dataPath := configured
	if strings.TrimSpace(dataPath) == "" {
		dataPath = recorded
	}
	if strings.TrimSpace(dataPath) == "" {
		dataPath = config.DefaultDataPath
	}

	expanded, err := homedir.Expand(dataPath)
	if err != nil {
		return "", fmt.Errorf("expand data path: %w", err)
	}
	return filepath.Clean(expanded), nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
