// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-media-mirror/models"
)

// DocumentStore persists named sectioned key-value documents.
//
// Load of a document that was never saved returns an empty [models.Sections]
// and no error. Save replaces the whole document and is durable once it
// returns. Remove of a missing document is not an error.
type DocumentStore interface {
	Load(ctx context.Context, name string) (models.Sections, error)
	Save(ctx context.Context, name string, doc models.Sections) error
	Remove(ctx context.Context, name string) error
}

// RegistryRepository reads and writes the whole server registry.
type RegistryRepository interface {
	Load(ctx context.Context) (models.Registry, error)
	Save(ctx context.Context, registry models.Registry) error
}

// MirrorRepository persists the replica forest of each tracked server.
type MirrorRepository interface {
	// Load returns the committed replica of serverID, empty when none exists.
	Load(ctx context.Context, serverID string) (*models.Forest, error)

	// Commit durably replaces the replica of serverID with forest.
	Commit(ctx context.Context, serverID string, forest *models.Forest) error

	// Purge deletes the replica of serverID.
	Purge(ctx context.Context, serverID string) error
}
