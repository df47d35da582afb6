// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-media-mirror/internal/adapter"
	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/service"
	"github.com/MKhiriev/go-media-mirror/internal/store"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/spf13/cobra"
)

// App holds what every command shares.
type App struct {
	buildInfo models.AppBuildInfo
	flags     *config.Flags

	// connect wires the service layer for one command run.
	connect connectFunc
}

type connectFunc func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*session, error)

// session is the wired service layer of one command run.
type session struct {
	cfg      *config.StructuredConfig
	log      *logger.Logger
	services *service.Services
	close    func() error
}

// New returns an App that wires the real storages and bridge adapter.
func New(buildInfo models.AppBuildInfo) *App {
	a := &App{buildInfo: buildInfo}
	a.connect = a.connectServices
	return a
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo, args []string) int {
	root := NewRootCommand(New(buildInfo))
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln(renderError(err))
		return 1
	}
	return 0
}

// open loads the configuration and wires the services. Logs go to the
// configured log file, or to stdout for the daemon.
func (a *App) open(cmd *cobra.Command, daemon bool) (*session, error) {
	cfg, err := config.GetStructuredConfig(a.flags.Config())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	var log *logger.Logger
	if daemon {
		log = logger.NewLogger("mirror-daemon", cfg.App.LogLevel)
	} else {
		log = logger.NewFileLogger("mirror-cli", cfg.App.LogLevel, cfg.App.LogFile)
	}
	log.Debug().Str("command", cmd.CommandPath()).Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	s, err := a.connect(ctx, cfg, log)
	if err != nil {
		log.Err(err).Str("func", "*App.open").Msg("error wiring services")
		return nil, err
	}
	return s, nil
}

// run opens a session, calls fn and closes the session.
func (a *App) run(cmd *cobra.Command, fn func(s *session) error) (err error) {
	s, err := a.open(cmd, false)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.close())
	}()

	return fn(s)
}

func (a *App) connectServices(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*session, error) {
	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPMediaServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("error creating adapter: %w", err), storages.Close())
	}

	services, err := service.NewServices(ctx, storages, serverAdapter, a.buildInfo, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("error creating services: %w", err), storages.Close())
	}

	return &session{cfg: cfg, log: log, services: services, close: storages.Close}, nil
}
