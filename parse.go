// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds one config line accepted by the scanner.
const maxLineSize = 1 << 20

// ParseConfig parses EditorConfig text from reader.
//
// Semantics:
// - UTF-8 by default, a UTF-8 or UTF-16 BOM selects the encoding
// - blank lines and lines starting with "#" or ";" are ignored
// - "[pattern]" starts a section, pattern is taken verbatim
// - "key = value" splits on first "=", key is lower-cased, both sides trimmed
// - lines without "=" or with empty key are skipped
// - before the first section only "root = true" is meaningful
//
// Returned file has empty Path and Dir.
func ParseConfig(r io.Reader) (*ConfigFile, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	s := bufio.NewScanner(decoded)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)

	cf := &ConfigFile{}
	current := -1

	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if line[0] == '[' {
			if end := strings.LastIndexByte(line, ']'); end > 0 {
				cf.Sections = append(cf.Sections, Section{Pattern: line[1:end]})
				current = len(cf.Sections) - 1
			}

			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		name = asciiLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		value = strings.TrimSpace(value)
		if current < 0 {
			if name == "root" {
				cf.Root = asciiLower(value) == "true"
			}

			continue
		}

		cf.Sections[current].Properties = append(cf.Sections[current].Properties, Property{
			Name:  name,
			Value: value,
		})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan config: %w", err)
	}

	return cf, nil
}

// ParseConfigString parses EditorConfig text from string input.
func ParseConfigString(src string) (*ConfigFile, error) {
	return ParseConfig(strings.NewReader(src))
}
