// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the mirror daemon: the status API and the periodic
// sync job, from startup until a stop signal, followed by a graceful
// shutdown of both.
package server
