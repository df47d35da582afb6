// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-media-mirror/internal/cli"
	"github.com/MKhiriev/go-media-mirror/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	os.Exit(cli.Execute(context.Background(), info, os.Args[1:]))
}
