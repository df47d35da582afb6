// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/models"
)

// Registry document layout.
const (
	// DataPathSection is the reserved section holding the mirror root path.
	// It is never interpreted as a server id.
	DataPathSection = "__data_path__"
	DataPathOption  = "path"

	OptionSystemUpdateID    = "systemUpdateId"
	OptionServiceResetToken = "serviceResetToken"
)

// registryRepository maps [models.Registry] onto a single document of a
// [DocumentStore].
type registryRepository struct {
	store    DocumentStore
	document string
	logger   *logger.Logger
}

// NewRegistryRepository constructs a [RegistryRepository] storing the
// registry as the document named document.
func NewRegistryRepository(store DocumentStore, document string, logger *logger.Logger) RegistryRepository {
	logger.Debug().Str("document", document).Msg("creating registry repository")
	return &registryRepository{
		store:    store,
		document: document,
		logger:   logger,
	}
}

// Load reads the registry. A registry that was never saved is empty.
func (r *registryRepository) Load(ctx context.Context) (models.Registry, error) {
	log := logger.FromContext(ctx)

	doc, err := r.store.Load(ctx, r.document)
	if err != nil {
		return models.Registry{}, err
	}

	dataPath, _ := doc.Get(DataPathSection, DataPathOption)
	registry := models.NewRegistry(dataPath)

	for _, serverID := range doc.Names() {
		if serverID == DataPathSection {
			continue
		}

		record := models.TrackedServer{
			ServerID:     serverID,
			LastUpdateID: models.NeverSynced,
			Trackable:    true,
		}

		if raw, ok := doc.Get(serverID, OptionSystemUpdateID); ok {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id < models.NeverSynced {
				log.Error().
					Str("func", "registryRepository.Load").
					Str("server_id", serverID).
					Str("value", raw).
					Msg("invalid update id in registry")
				return models.Registry{}, fmt.Errorf("%w: server %q: invalid %s %q", ErrCorruptDocument, serverID, OptionSystemUpdateID, raw)
			}
			record.LastUpdateID = id
		}
		record.ResetToken, _ = doc.Get(serverID, OptionServiceResetToken)

		registry.Servers[serverID] = record
	}

	return registry, nil
}

// Save writes the whole registry, including the data path section.
func (r *registryRepository) Save(ctx context.Context, registry models.Registry) error {
	doc := models.NewSections()
	doc.Set(DataPathSection, DataPathOption, registry.DataPath)

	for id, record := range registry.Servers {
		doc.Set(id, OptionSystemUpdateID, strconv.FormatInt(record.LastUpdateID, 10))
		doc.Set(id, OptionServiceResetToken, record.ResetToken)
	}

	return r.store.Save(ctx, r.document, doc)
}
