// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// EntryKind distinguishes containers from leaf items in the replica.
type EntryKind int

const (
	KindItem EntryKind = iota
	KindContainer
)

// String implements fmt.Stringer.
func (k EntryKind) String() string {
	if k == KindContainer {
		return "container"
	}
	return "item"
}

// MarshalText implements encoding.TextMarshaler.
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ReplicaEntry is one child known under a local container.
type ReplicaEntry struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parent_id"`
	DisplayName string    `json:"display_name"`
	Kind        EntryKind `json:"kind"`
}

// Forest is the in-memory replica of one server: container id → child id →
// entry. Every container entry owns a (possibly empty) child set, mirroring
// the persisted layout where each container has its own section.
type Forest struct {
	containers map[string]map[string]ReplicaEntry
}

// NewForest returns an empty replica.
func NewForest() *Forest {
	return &Forest{containers: make(map[string]map[string]ReplicaEntry)}
}

// HasContainer reports whether the container has a child set.
func (f *Forest) HasContainer(id string) bool {
	_, ok := f.containers[id]
	return ok
}

// EnsureContainer creates an empty child set for id if missing.
func (f *Forest) EnsureContainer(id string) {
	if _, ok := f.containers[id]; !ok {
		f.containers[id] = make(map[string]ReplicaEntry)
	}
}

// Containers returns the ids of every container with a child set.
func (f *Forest) Containers() []string {
	ids := make([]string, 0, len(f.containers))
	for id := range f.containers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Children returns the entries under containerID ordered by id.
func (f *Forest) Children(containerID string) []ReplicaEntry {
	children := f.containers[containerID]
	out := make([]ReplicaEntry, 0, len(children))
	for _, e := range children {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Entry looks up a single child.
func (f *Forest) Entry(parentID, id string) (ReplicaEntry, bool) {
	e, ok := f.containers[parentID][id]
	return e, ok
}

// Len returns the number of entries in the replica.
func (f *Forest) Len() int {
	n := 0
	for _, children := range f.containers {
		n += len(children)
	}
	return n
}

// Upsert inserts or replaces an entry under its parent. It reports whether the
// entry was new.
func (f *Forest) Upsert(e ReplicaEntry) bool {
	f.EnsureContainer(e.ParentID)

	prev, existed := f.containers[e.ParentID][e.ID]
	f.containers[e.ParentID][e.ID] = e

	switch {
	case e.Kind == KindContainer:
		f.EnsureContainer(e.ID)
	case existed && prev.Kind == KindContainer:
		delete(f.containers, e.ID)
	}

	return !existed
}

// Remove deletes a single entry. A removed container loses its own child set
// but its descendants' child sets are left in place.
func (f *Forest) Remove(parentID, id string) (ReplicaEntry, bool) {
	e, ok := f.containers[parentID][id]
	if !ok {
		return ReplicaEntry{}, false
	}

	delete(f.containers[parentID], id)
	if e.Kind == KindContainer {
		delete(f.containers, id)
	}
	return e, true
}

// Apply writes a container diff into the replica.
func (f *Forest) Apply(diff ContainerDiff) {
	f.EnsureContainer(diff.ContainerID)

	for _, obj := range diff.Added {
		f.Upsert(obj.Entry(diff.ContainerID))
	}
	for _, obj := range diff.Changed {
		f.Upsert(obj.Entry(diff.ContainerID))
	}
	for _, id := range diff.Removed {
		f.Remove(diff.ContainerID, id)
	}
}

// Sections serialises the replica: one section per container, one option per
// child mapping its id to its display name.
func (f *Forest) Sections() Sections {
	s := NewSections()
	for id, children := range f.containers {
		s.Add(id)
		for childID, e := range children {
			s.Set(id, childID, e.DisplayName)
		}
	}
	return s
}

// ForestFromSections rebuilds a replica from its serialised form. A child is a
// container exactly when a section with its id exists.
func ForestFromSections(s Sections) *Forest {
	f := NewForest()
	for section, opts := range s {
		f.EnsureContainer(section)
		for childID, name := range opts {
			kind := KindItem
			if s.Has(childID) {
				kind = KindContainer
			}
			f.containers[section][childID] = ReplicaEntry{
				ID:          childID,
				ParentID:    section,
				DisplayName: name,
				Kind:        kind,
			}
		}
	}
	return f
}
