// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sort"

	"github.com/MKhiriev/go-media-mirror/models"
)

// Queries and field lists sent to the bridge.
const (
	QueryContainers = `Type derivedfrom "container"`
)

var (
	containerFields = []string{models.FieldDisplayName, models.FieldPath, models.FieldType}
	deltaFields     = []string{models.FieldDisplayName, models.FieldPath, models.FieldType, models.FieldParent}
	childFields     = []string{models.FieldDisplayName, models.FieldPath, models.FieldParent, models.FieldType}
)

// DeltaQuery selects every object changed after updateID.
func DeltaQuery(updateID int64) string {
	return fmt.Sprintf(`ObjectUpdateID > "%d"`, updateID)
}

// ClassifySync decides how a tracked server is brought up to date.
//
// A server that never completed a full sync, or whose reset token changed,
// needs a full sync. A server whose remote update id moved past the stored
// one needs an incremental sync. Anything else is skipped.
func ClassifySync(record models.TrackedServer, snapshot models.RemoteSnapshot) models.SyncDecision {
	d := models.SyncDecision{
		ServerID:   record.ServerID,
		Handle:     snapshot.Handle,
		From:       record.LastUpdateID,
		To:         snapshot.SystemUpdateID,
		ResetToken: snapshot.ResetToken,
	}

	switch {
	case record.LastUpdateID == models.NeverSynced || record.ResetToken != snapshot.ResetToken:
		d.Mode = models.SyncFull
	case record.LastUpdateID < snapshot.SystemUpdateID:
		d.Mode = models.SyncIncremental
	default:
		d.Mode = models.SyncSkip
	}

	return d
}

// ReconcileContainer compares the local children of a container with its
// remote listing. Remote objects without an id and repeated ids are ignored.
func ReconcileContainer(containerID string, local []models.ReplicaEntry, remote []models.RemoteObject) models.ContainerDiff {
	diff := models.ContainerDiff{ContainerID: containerID}

	known := make(map[string]models.ReplicaEntry, len(local))
	for _, e := range local {
		known[e.ID] = e
	}

	seen := make(map[string]struct{}, len(remote))
	for _, obj := range remote {
		if obj.ID == "" {
			continue
		}
		if _, dup := seen[obj.ID]; dup {
			continue
		}
		seen[obj.ID] = struct{}{}

		prev, ok := known[obj.ID]
		switch {
		case !ok:
			diff.Added = append(diff.Added, obj)
		case prev.DisplayName != obj.DisplayName || prev.Kind != obj.Kind():
			diff.Changed = append(diff.Changed, obj)
		}
	}

	for id := range known {
		if _, ok := seen[id]; !ok {
			diff.Removed = append(diff.Removed, id)
		}
	}
	sort.Strings(diff.Removed)

	return diff
}
