// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-media-mirror/internal/handler"
	"github.com/MKhiriev/go-media-mirror/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the status API and sync periodically until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			s, err := app.open(cmd, true)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, s.close())
			}()

			s.log.Info().
				Str("version", app.buildInfo.BuildVersion()).
				Str("commit", app.buildInfo.BuildCommit()).
				Str("data_path", s.services.Registry.DataPath()).
				Msg("starting media mirror daemon")

			handlers, err := handler.NewHandlers(s.services, s.cfg.Server, s.log)
			if err != nil {
				return fmt.Errorf("error creating handlers: %w", err)
			}

			srv, err := server.NewServer(handlers, s.services.SyncJob, *s.cfg, s.log)
			if err != nil {
				return fmt.Errorf("error creating server: %w", err)
			}

			return srv.RunServer(cmd.Context())
		},
	}
}
