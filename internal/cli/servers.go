// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newServersCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List the media servers currently online.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(s *session) error {
				servers, err := s.services.Registry.Servers(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderServers(servers))
				return nil
			})
		},
	}
}

func newTrackedCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tracked",
		Short: "List the tracked servers and their sync cursors.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(s *session) error {
				fmt.Fprintln(cmd.OutOrStdout(), renderTracked(s.services.Registry.Tracked()))
				return nil
			})
		},
	}
}
