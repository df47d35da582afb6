// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path"
	"strings"
)

// TypeContainer is the remote object type of containers. Every other type
// value (music, video, image.photo, ...) denotes an item.
const TypeContainer = "container"

// Object fields requested from the remote server.
const (
	FieldDisplayName = "DisplayName"
	FieldPath        = "Path"
	FieldParent      = "Parent"
	FieldType        = "Type"
	FieldRefPath     = "RefPath"
)

// RemoteObject is a media object as reported by one remote query.
type RemoteObject struct {
	ID          string `json:"id"`
	ParentID    string `json:"parent_id"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
	Path        string `json:"path"`
	ParentPath  string `json:"parent_path,omitempty"`
	RefPath     string `json:"ref_path,omitempty"`
}

// IsContainer reports whether the object is a container.
func (o RemoteObject) IsContainer() bool {
	return o.Type == TypeContainer
}

// Kind maps the remote type onto a replica entry kind.
func (o RemoteObject) Kind() EntryKind {
	if o.IsContainer() {
		return KindContainer
	}
	return KindItem
}

// Entry converts the object into the replica entry stored under its parent.
func (o RemoteObject) Entry(parentID string) ReplicaEntry {
	return ReplicaEntry{
		ID:          o.ID,
		ParentID:    parentID,
		DisplayName: o.DisplayName,
		Kind:        o.Kind(),
	}
}

// ObjectIDFromPath returns the object id encoded as the last element of an
// object path.
func ObjectIDFromPath(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}
