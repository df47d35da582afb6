// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to
// remote media servers.
//
// The primary abstraction is [MediaServerAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPMediaServerAdapter]) talking to a media-server
// bridge that exposes the servers found on the local network.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrPropertyUnavailable] for 404/501 on a property).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-media-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/media_server_adapter_mock.go -package=mock

// MediaServerAdapter is the remote collaborator of the sync engine. All
// methods block on the network and honour ctx cancellation.
type MediaServerAdapter interface {
	// ListServers returns the handles of every currently reachable server.
	ListServers(ctx context.Context) ([]models.ServerHandle, error)

	// GetProperty reads a single named property of the object at
	// objectPath. A property the server does not expose yields an error
	// matching [ErrPropertyUnavailable].
	GetProperty(ctx context.Context, objectPath, name string) (models.Property, error)

	// SearchObjects runs a search query below containerPath and returns the
	// matches with the requested fields populated.
	SearchObjects(ctx context.Context, containerPath, query string, fields []string) ([]models.RemoteObject, error)

	// ListChildren returns the direct children of containerPath.
	ListChildren(ctx context.Context, containerPath string, fields []string) ([]models.RemoteObject, error)
}
