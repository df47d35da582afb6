// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON response writing, the bridge HTTP
// client and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the status API stores the trace id of
// the current request.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id stored by [WithTraceID].
// ok is false when no trace id is present.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
