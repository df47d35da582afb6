// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/models"
)

// mirrorRepository stores one document per server, named by the server id.
type mirrorRepository struct {
	store  DocumentStore
	logger *logger.Logger
}

// NewMirrorRepository constructs a [MirrorRepository] on top of store.
func NewMirrorRepository(store DocumentStore, logger *logger.Logger) MirrorRepository {
	logger.Debug().Msg("creating mirror repository")
	return &mirrorRepository{
		store:  store,
		logger: logger,
	}
}

func (m *mirrorRepository) Load(ctx context.Context, serverID string) (*models.Forest, error) {
	doc, err := m.store.Load(ctx, serverID)
	if err != nil {
		return nil, err
	}
	return models.ForestFromSections(doc), nil
}

func (m *mirrorRepository) Commit(ctx context.Context, serverID string, forest *models.Forest) error {
	log := logger.FromContext(ctx)

	if forest == nil {
		forest = models.NewForest()
	}

	if err := m.store.Save(ctx, serverID, forest.Sections()); err != nil {
		return err
	}

	log.Debug().
		Str("func", "mirrorRepository.Commit").
		Str("server_id", serverID).
		Int("entries", forest.Len()).
		Msg("mirror committed")
	return nil
}

func (m *mirrorRepository) Purge(ctx context.Context, serverID string) error {
	return m.store.Remove(ctx, serverID)
}
