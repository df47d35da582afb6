// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedServer is returned when a server lacks a capability that
	// change tracking depends on.
	ErrUnsupportedServer = errors.New("unsupported server")

	// ErrTransport wraps failures talking to the bridge or a media server.
	ErrTransport = errors.New("transport error")

	// ErrPersistence wraps failures reading or writing the registry or the
	// mirror store.
	ErrPersistence = errors.New("persistence error")

	ErrSyncInProgress        = errors.New("sync pass already in progress")
	ErrServerNotFound        = errors.New("server not found")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// UnsupportedServerError names the server and the missing capability.
type UnsupportedServerError struct {
	ServerID string
	Reason   string
}

func (e *UnsupportedServerError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrUnsupportedServer, e.ServerID, e.Reason)
}

// Unwrap makes errors.Is(err, ErrUnsupportedServer) hold.
func (e *UnsupportedServerError) Unwrap() error {
	return ErrUnsupportedServer
}

func transportError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

func persistenceError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
