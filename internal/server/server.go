// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/handler"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/service"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	syncJob    service.SyncJob
	interval   time.Duration

	// ready receives the bound address once the listener is open.
	ready chan net.Addr

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, syncJob service.SyncJob, cfg config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.Server.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg.Server.HTTPAddress, logger),
		syncJob:    syncJob,
		interval:   cfg.Workers.SyncInterval,
		ready:      make(chan net.Addr, 1),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	s.ready <- l.Addr()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.serve(l)
	})

	s.logger.Info().Dur("interval", s.interval).Msg("Launching sync job")
	s.syncJob.Start(gctx, s.interval)

	// stop everything once a signal arrives or serving fails
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	s.syncJob.Stop()
	return s.httpServer.shutdown(ctx)
}
