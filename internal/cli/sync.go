// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync pass over every tracked server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(s *session) error {
				report, err := s.services.Sync.Sync(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))

				if failed := report.Failed(); len(failed) > 0 {
					return fmt.Errorf("%w: %d of %d", ErrSyncFailed, len(failed), len(report.Results))
				}
				return nil
			})
		},
	}
}

func newResetCommand(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Untrack every server and delete every mirror.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("nothing done: pass --yes to drop every mirror"))
				return nil
			}

			return app.run(cmd, func(s *session) error {
				if err := s.services.Registry.Reset(cmd.Context()); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Registry reset, mirrors under "+
					s.services.Registry.DataPath()+" removed"))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")

	return cmd
}
