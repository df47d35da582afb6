// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SyncMode is the per-server decision of a sync pass.
type SyncMode int

const (
	SyncSkip SyncMode = iota
	SyncIncremental
	SyncFull
)

// String implements fmt.Stringer.
func (m SyncMode) String() string {
	switch m {
	case SyncIncremental:
		return "incremental"
	case SyncFull:
		return "full"
	default:
		return "skip"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m SyncMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// SyncDecision tells the orchestrator what to do with one server.
type SyncDecision struct {
	ServerID string
	Handle   ServerHandle
	Mode     SyncMode

	// From is the stored cursor; To is the remote update id to advance to.
	From int64
	To   int64

	// ResetToken is the remote token observed together with To.
	ResetToken string
}

// ContainerDiff is the difference between a remote children listing and the
// local children of one container.
type ContainerDiff struct {
	ContainerID string

	// Added holds remote children unknown locally.
	Added []RemoteObject

	// Removed holds ids of local children absent remotely.
	Removed []string

	// Changed holds children known on both sides whose display name or kind
	// differs.
	Changed []RemoteObject
}

// Empty reports whether applying the diff would change nothing.
func (d ContainerDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// ServerSyncResult is the outcome of one server within a pass.
type ServerSyncResult struct {
	ServerID string   `json:"server_id"`
	Mode     SyncMode `json:"mode"`
	From     int64    `json:"from"`
	To       int64    `json:"to"`

	Containers int `json:"containers"`
	Added      int `json:"added"`
	Removed    int `json:"removed"`
	Updated    int `json:"updated"`

	// Offline is set for tracked servers that were not reachable through the
	// bridge during the pass.
	Offline bool `json:"offline,omitempty"`

	Err error `json:"-"`
}

// MarshalJSON adds the error text to the encoded result.
func (r ServerSyncResult) MarshalJSON() ([]byte, error) {
	type plain ServerSyncResult
	out := struct {
		plain
		Error string `json:"error,omitempty"`
	}{plain: plain(r)}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

// SyncReport summarises one sync pass.
type SyncReport struct {
	StartedAt time.Time          `json:"started_at"`
	Duration  time.Duration      `json:"duration"`
	Results   []ServerSyncResult `json:"results"`
}

// Failed returns the results that ended with an error.
func (r SyncReport) Failed() []ServerSyncResult {
	var failed []ServerSyncResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}
