// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildValueNotAvailable = "N/A"

// AppBuildInfo is the version metadata injected with -ldflags at build time.
// Any part may be empty for local builds.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// Banner renders the three values one per line, printing N/A for the
// missing ones. It is written to stdout when the server starts.
func (a AppBuildInfo) Banner() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orNotAvailable(a.version), orNotAvailable(a.date), orNotAvailable(a.commit))
}

func orNotAvailable(value string) string {
	if value == "" {
		return buildValueNotAvailable
	}
	return value
}
