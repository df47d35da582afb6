// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the media-mirror command tree on app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "media-mirror",
		Short: "Mirror the container trees of media servers into local documents.",
		Long: "media-mirror tracks media servers reachable through the bridge and keeps a\n" +
			"local replica of their container trees, syncing only what changed.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newServersCommand(app),
		newTrackedCommand(app),
		newTrackCommand(app),
		newUntrackCommand(app),
		newTrackResetCommand(app),
		newSyncCommand(app),
		newResetCommand(app),
		newServeCommand(app),
		newVersionCommand(app),
	)

	return root
}
