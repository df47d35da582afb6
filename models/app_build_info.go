// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown in
// CLI/TUI version output for diagnostics and release traceability.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String formats the build metadata for version output. Missing values are
// shown as "N/A".
func (a AppBuildInfo) String() string {
	return "Build version: " + orNA(a.buildVersion) +
		"\nBuild date: " + orNA(a.buildDate) +
		"\nBuild commit: " + orNA(a.buildCommit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
