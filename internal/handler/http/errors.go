// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidServerParam is returned when the {server} path parameter is empty
// or cannot be unescaped.
var ErrInvalidServerParam = errors.New("invalid server parameter")

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}
