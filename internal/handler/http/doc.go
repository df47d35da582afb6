// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the status API of the mirror daemon.
//
// It exposes the online servers, the tracked-server registry, the committed
// replicas and two triggers: a sync pass and a full reset. Every request is
// tagged with a trace id and logged once it completes; service errors are
// translated into HTTP status codes by statusFromError.
package http
