// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// NeverSynced is the cursor value of a server that has not completed a full sync.
const NeverSynced int64 = -1

// TrackedServer is the sync state the registry keeps for one server.
type TrackedServer struct {
	// ServerID is the stable server identity (its UDN).
	ServerID string `json:"server_id"`

	// LastUpdateID is the highest remote update sequence already reflected
	// in the mirror, or NeverSynced.
	LastUpdateID int64 `json:"last_update_id"`

	// ResetToken is the token observed when LastUpdateID was last advanced.
	ResetToken string `json:"reset_token"`

	// Trackable is true for every record that passed capability validation.
	Trackable bool `json:"trackable"`
}

// Registry is the whole persisted registry document.
type Registry struct {
	// DataPath is the root directory for mirror documents.
	DataPath string
	Servers  map[string]TrackedServer
}

// NewRegistry returns an empty registry rooted at dataPath.
func NewRegistry(dataPath string) Registry {
	return Registry{DataPath: dataPath, Servers: make(map[string]TrackedServer)}
}

// IDs returns the tracked server ids in lexical order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r.Servers))
	for id := range r.Servers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy of the registry.
func (r Registry) Clone() Registry {
	out := NewRegistry(r.DataPath)
	for id, s := range r.Servers {
		out.Servers[id] = s
	}
	return out
}
