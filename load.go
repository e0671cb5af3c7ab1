// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// LoadConfigFile reads and parses one config file.
//
// Returned file carries absolute Path, slash-normalized anchor Dir
// and BLAKE3 Digest of raw content.
func LoadConfigFile(path string) (*ConfigFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPathNotFound, path, err)
	}

	content, err := os.ReadFile(abs) // #nosec G304 -- config discovery reads caller-selected tree
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, abs, err)
	}

	cf, err := ParseConfig(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrReadConfig, abs, err)
	}

	cf.Path = abs
	cf.Dir = normalizeAnchor(filepath.ToSlash(filepath.Dir(abs)))
	cf.Digest = blake3.Sum256(content)
	return cf, nil
}
