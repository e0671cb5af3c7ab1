// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"fmt"
	"path/filepath"
	"strings"
)

// normalizeSlashes converts Windows separators to canonical "/".
func normalizeSlashes(raw string) string {
	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}

	return raw
}

// normalizeAnchor normalizes anchor directory to slash form without trailing separator.
//
// Filesystem root "/" becomes empty string, so anchor + "/" + pattern never doubles the slash.
func normalizeAnchor(dir string) string {
	dir = normalizeSlashes(strings.TrimSpace(dir))
	return strings.TrimRight(dir, "/")
}

// absPath resolves target path to absolute OS form and canonical slash form.
func absPath(raw string) (string, string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", fmt.Errorf("%w: empty path", ErrPathNotFound)
	}

	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrPathNotFound, raw, err)
	}

	return abs, normalizeSlashes(filepath.ToSlash(abs)), nil
}

// volumeAnchor returns the anchor of filesystem root for slash-normalized absolute path.
func volumeAnchor(slashPath string) string {
	if i := strings.IndexByte(slashPath, '/'); i >= 0 {
		return slashPath[:i]
	}

	return slashPath
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
