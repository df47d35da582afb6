// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-media-mirror/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, address string, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// listen binds the configured address.
func (h *httpServer) listen() (net.Listener, error) {
	l, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", h.server.Addr, err)
	}
	return l, nil
}

// serve blocks until the server is shut down. A graceful shutdown is not an
// error.
func (h *httpServer) serve(l net.Listener) error {
	h.logger.Info().Str("address", l.Addr().String()).Msg("Launching HTTP server")
	if err := h.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http serve: %w", err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
