// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-media-mirror/models"
)

// CapabilityValidator decides whether a media server supports change
// tracking.
type CapabilityValidator interface {
	// Probe reads the capability properties of the server at handle. A
	// property the server does not expose is left empty.
	Probe(ctx context.Context, handle models.ServerHandle) (models.ServerCapabilities, error)

	// Validate probes the server and returns its current reset token, or an
	// *UnsupportedServerError naming the first missing capability.
	Validate(ctx context.Context, serverID string, handle models.ServerHandle) (string, error)
}

// RegistryService owns the set of tracked servers and their sync cursors.
type RegistryService interface {
	// Track validates and records server (a UDN or a server path) with a
	// NeverSynced cursor. Tracking an already tracked server is a no-op.
	Track(ctx context.Context, server string) (models.TrackedServer, error)

	// Untrack drops the record of server and purges its mirror. Untracking
	// an unknown server is a no-op.
	Untrack(ctx context.Context, server string) error

	// TrackReset untracks and tracks server again.
	TrackReset(ctx context.Context, server string) (models.TrackedServer, error)

	// Reset drops every record and purges every mirror. The data path is kept.
	Reset(ctx context.Context) error

	// Tracked returns every record ordered by server id.
	Tracked() []models.TrackedServer

	// Lookup returns the record of serverID.
	Lookup(serverID string) (models.TrackedServer, bool)

	// Servers lists the servers currently reachable through the bridge.
	Servers(ctx context.Context) ([]models.ServerInfo, error)

	// NeedsSync classifies each snapshot of a tracked server.
	NeedsSync(ctx context.Context, snapshots []models.RemoteSnapshot) []models.SyncDecision

	// Revalidate checks capabilities again, purges the mirror and resets the
	// cursor of serverID to NeverSynced with the fresh reset token. A server
	// that fails validation keeps its record and mirror untouched.
	Revalidate(ctx context.Context, serverID string, handle models.ServerHandle) (models.TrackedServer, error)

	// Advance records that the mirror of serverID reflects updateID under
	// resetToken.
	Advance(ctx context.Context, serverID string, updateID int64, resetToken string) error

	// Replica loads the committed mirror of a tracked server.
	Replica(ctx context.Context, serverID string) (*models.Forest, error)

	// DataPath returns the root directory of the mirror documents.
	DataPath() string
}

// SyncService runs sync passes over every tracked server.
type SyncService interface {
	// Sync runs one pass. Per-server failures are reported in the result of
	// that server; the returned error is set only when the pass could not
	// run at all.
	Sync(ctx context.Context) (models.SyncReport, error)
}

// SyncJob runs sync passes periodically in the background.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
