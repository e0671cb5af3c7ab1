// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// DefaultVersion is the latest EditorConfig spec version supported.
const DefaultVersion = "0.17.2"

// versionIndentSizeTab enables indent_size=tab default for indent_style=tab.
const versionIndentSizeTab = "v0.10.0"

// parseVersion validates version and returns canonical "vX.Y.Z" form.
// Empty input selects DefaultVersion; versions newer than DefaultVersion are rejected.
func parseVersion(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultVersion
	}

	v := raw
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}

	v = semver.Canonical(v)
	if semver.Compare(v, "v"+DefaultVersion) > 0 {
		return "", fmt.Errorf("%w: %q is newer than supported %s", ErrInvalidVersion, raw, DefaultVersion)
	}

	return v, nil
}

// versionAtLeast reports whether canonical version v is at least minimum.
func versionAtLeast(v string, minimum string) bool {
	return semver.Compare(v, minimum) >= 0
}

// displayVersion strips "v" prefix of canonical version.
func displayVersion(v string) string {
	return strings.TrimPrefix(v, "v")
}
