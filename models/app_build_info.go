// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfoUnknown replaces build metadata that was not linked into the binary.
const BuildInfoUnknown = "N/A"

// AppBuildInfo is the version metadata set with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}

// Resolved returns a copy with blank values replaced by [BuildInfoUnknown].
func (a AppBuildInfo) Resolved() AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(a.Version),
		Date:    orUnknown(a.Date),
		Commit:  orUnknown(a.Commit),
	}
}

// String renders the banner printed on startup.
func (a AppBuildInfo) String() string {
	r := a.Resolved()

	var b strings.Builder
	b.WriteString("Build version: " + r.Version + "\n")
	b.WriteString("Build date: " + r.Date + "\n")
	b.WriteString("Build commit: " + r.Commit + "\n")
	return b.String()
}

func orUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return BuildInfoUnknown
	}
	return v
}
