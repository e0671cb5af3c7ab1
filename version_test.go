// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "v" + DefaultVersion},
		{in: "0.12.0", want: "v0.12.0"},
		{in: "v0.9", want: "v0.9.0"},
		{in: " 0.17.2 ", want: "v0.17.2"},
	}

	for _, tt := range tests {
		got, err := parseVersion(tt.in)
		require.NoError(t, err, "parseVersion(%q)", tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestParseVersionRejects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"latest", "1.x", "99.0.0", "0.18.0"} {
		_, err := parseVersion(in)
		require.Truef(t, errors.Is(err, ErrInvalidVersion), "parseVersion(%q) err=%v, want ErrInvalidVersion", in, err)
	}
}

func TestVersionAtLeast(t *testing.T) {
	t.Parallel()

	require.True(t, versionAtLeast("v0.10.0", versionIndentSizeTab))
	require.True(t, versionAtLeast("v0.17.2", versionIndentSizeTab))
	require.False(t, versionAtLeast("v0.9.1", versionIndentSizeTab))
	require.Equal(t, "0.9.1", displayVersion("v0.9.1"))
}
