// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the daemon.
type Server interface {
	// RunServer serves until ctx is cancelled or SIGINT, SIGTERM or SIGQUIT
	// arrives, then shuts down. It returns the first serving error.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops serving and the background job.
	Shutdown(ctx context.Context) error
}
