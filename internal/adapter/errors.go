// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by [MediaServerAdapter] implementations.
var (
	// ErrPropertyUnavailable is returned when the server does not expose the
	// requested property (bridge answers 404 or 501).
	ErrPropertyUnavailable = errors.New("property unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrDecodeResponse is returned when a 2xx body cannot be decoded.
	ErrDecodeResponse = errors.New("failed to decode bridge response")
)
