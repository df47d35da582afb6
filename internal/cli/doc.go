// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the media-mirror command line.
//
// Every sub-command is built by its own constructor and shares an [App]
// that owns the parsed flags, the build info and the way the service layer
// is wired. Commands that touch the registry open a [session], run and close
// it before returning. Listings are rendered as lipgloss tables.
package cli
