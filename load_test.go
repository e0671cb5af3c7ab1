// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".editorconfig")
	content := []byte("root = true\n[*.go]\nindent_style = tab\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cf, err := LoadConfigFile(path)
	require.NoError(t, err)

	require.Equal(t, path, cf.Path)
	require.Equal(t, normalizeAnchor(filepath.ToSlash(dir)), cf.Dir)
	require.True(t, cf.Root)
	require.Len(t, cf.Sections, 1)
	require.Equal(t, blake3.Sum256(content), cf.Digest)
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrReadConfig), "err=%v, want ErrReadConfig", err)
}
