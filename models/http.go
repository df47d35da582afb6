// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ServersResponse is returned by the bridge for GET /api/servers.
type ServersResponse struct {
	Servers []ServerHandle `json:"servers"`
}

// SearchRequest is sent to the bridge for POST /api/objects/search.
type SearchRequest struct {
	// Path is the object path of the container searched from.
	Path string `json:"path"`

	// Query is a ContentDirectory search criteria string, e.g.
	// `Type derivedfrom "container"`.
	Query string `json:"query"`

	// Fields lists the object fields the bridge must return.
	Fields []string `json:"fields"`
}

// ChildrenRequest is sent to the bridge for POST /api/objects/children.
type ChildrenRequest struct {
	Path   string   `json:"path"`
	Fields []string `json:"fields"`
}

// BridgeObject is one object as returned by the bridge: requested field
// name → value.
type BridgeObject map[string]string

// ObjectsResponse is returned by the bridge for search and children calls.
type ObjectsResponse struct {
	Objects []BridgeObject `json:"objects"`
}

// RemoteObject converts the bridge representation. Ids are derived from the
// last element of the object and parent paths.
func (o BridgeObject) RemoteObject() RemoteObject {
	return RemoteObject{
		ID:          ObjectIDFromPath(o[FieldPath]),
		ParentID:    ObjectIDFromPath(o[FieldParent]),
		DisplayName: o[FieldDisplayName],
		Type:        o[FieldType],
		Path:        o[FieldPath],
		ParentPath:  o[FieldParent],
		RefPath:     o[FieldRefPath],
	}
}
