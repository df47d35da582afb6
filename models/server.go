// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Remote property names read from media servers.
const (
	PropertyUDN                = "UDN"
	PropertyFriendlyName       = "FriendlyName"
	PropertyDisplayName        = "DisplayName"
	PropertyServiceResetToken  = "ServiceResetToken"
	PropertySystemUpdateID     = "SystemUpdateID"
	PropertyDLNACaps           = "DLNACaps"
	PropertySearchCaps         = "SearchCaps"
	CapContentSynchronization  = "content-synchronization"
	SearchCapObjectUpdateID    = "ObjectUpdateID"
	SearchCapContainerUpdateID = "ContainerUpdateID"
)

// ServerHandle addresses a remote media server through the bridge.
// Path is the object path of the server root container.
type ServerHandle struct {
	Path string `json:"path"`
}

// ServerInfo is one row of the online servers listing.
type ServerInfo struct {
	Handle  ServerHandle `json:"handle"`
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Tracked bool         `json:"tracked"`
}

// Property is a single remote property value as reported by the bridge.
// Value keeps the raw JSON so callers decide how to read it.
type Property struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// String decodes the value as a string. Numbers are formatted as decimal.
func (p Property) String() (string, error) {
	var s string
	if err := json.Unmarshal(p.Value, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(p.Value, &n); err == nil {
		return n.String(), nil
	}

	return "", fmt.Errorf("property %s is not a string: %s", p.Name, string(p.Value))
}

// Strings decodes the value as a list of strings.
func (p Property) Strings() ([]string, error) {
	var list []string
	if err := json.Unmarshal(p.Value, &list); err != nil {
		return nil, fmt.Errorf("property %s is not a string list: %w", p.Name, err)
	}
	return list, nil
}

// Int64 decodes the value as an integer. Quoted integers are accepted.
func (p Property) Int64() (int64, error) {
	s, err := p.String()
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("property %s is not an integer: %w", p.Name, err)
	}
	return v, nil
}

// ServerCapabilities is the result of one probing pass over a server.
// A nil field means the property could not be read.
type ServerCapabilities struct {
	ResetToken *string
	DLNACaps   []string
	SearchCaps []string
}

// RemoteSnapshot is the freshly read sync state of an online server.
type RemoteSnapshot struct {
	ServerID       string
	Handle         ServerHandle
	ResetToken     string
	SystemUpdateID int64
}
