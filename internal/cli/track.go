// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const serverArgHelp = "<server> is a server UDN or the object path of its root container."

func newTrackCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "track <server>",
		Short: "Start tracking a media server.",
		Long: "Validate that the server can report changes and record it with an empty\n" +
			"sync cursor. The next sync pass mirrors it in full.\n\n" + serverArgHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, func(s *session) error {
				record, err := s.services.Registry.Track(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTrackedServer("Tracking", record))
				return nil
			})
		},
	}
}

func newUntrackCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "untrack <server>",
		Short: "Stop tracking a media server and drop its mirror.",
		Long:  "Forget the server and delete its replica.\n\n" + serverArgHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, func(s *session) error {
				if err := s.services.Registry.Untrack(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Untracked "+args[0]))
				return nil
			})
		},
	}
}

func newTrackResetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "track-reset <server>",
		Short: "Drop the mirror of a server and track it again from scratch.",
		Long: "Untrack the server, then track it again. When the second step fails the\n" +
			"server stays untracked.\n\n" + serverArgHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, func(s *session) error {
				record, err := s.services.Registry.TrackReset(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTrackedServer("Tracking again", record))
				return nil
			})
		},
	}
}
