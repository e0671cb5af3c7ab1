// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"
	"github.com/woozymasta/editorconfig"
)

// errUnsupportedOptionsFile is returned for options files with unknown extension.
var errUnsupportedOptionsFile = errors.New("unsupported options file extension")

// loadOptions reads resolver options from YAML or JSON(C) file.
// Empty path yields zero options.
func loadOptions(path string) (editorconfig.ResolverOptions, error) {
	var opts editorconfig.ResolverOptions
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return opts, fmt.Errorf("reading options %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parsing options %q: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &opts); err != nil {
			return opts, fmt.Errorf("parsing options %q: %w", path, err)
		}
	default:
		return opts, fmt.Errorf("%w: %q", errUnsupportedOptionsFile, path)
	}

	return opts, nil
}
