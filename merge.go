// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import "strings"

// Well-known property names.
const (
	PropertyIndentStyle            = "indent_style"
	PropertyIndentSize             = "indent_size"
	PropertyTabWidth               = "tab_width"
	PropertyEndOfLine              = "end_of_line"
	PropertyCharset                = "charset"
	PropertyTrimTrailingWhitespace = "trim_trailing_whitespace"
	PropertyInsertFinalNewline     = "insert_final_newline"
	PropertyMaxLineLength          = "max_line_length"
)

// caseInsensitiveValues lists properties whose values are enumerations compared case-insensitively.
var caseInsensitiveValues = map[string]struct{}{
	PropertyIndentStyle:            {},
	PropertyIndentSize:             {},
	PropertyTabWidth:               {},
	PropertyEndOfLine:              {},
	PropertyCharset:                {},
	PropertyTrimTrailingWhitespace: {},
	PropertyInsertFinalNewline:     {},
	PropertyMaxLineLength:          {},
}

// propertySet folds section properties preserving first-definition order.
type propertySet struct {
	values map[string]string
	names  []string
}

// newPropertySet creates empty property set.
func newPropertySet() *propertySet {
	return &propertySet{
		values: make(map[string]string),
	}
}

// set assigns value, overriding earlier assignment of the same name.
func (s *propertySet) set(name string, value string) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}

	s.values[name] = value
}

// has reports whether name is assigned.
func (s *propertySet) has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// foldSection applies all properties of one matched section.
func (s *propertySet) foldSection(section Section) {
	for _, p := range section.Properties {
		name := asciiLower(strings.TrimSpace(p.Name))
		if name == "" {
			continue
		}

		s.set(name, p.Value)
	}
}

// finalize sanitizes values and applies version-gated defaults.
func (s *propertySet) finalize(version string) {
	for _, name := range s.names {
		s.values[name] = sanitizeValue(name, s.values[name])
	}

	// indent_style=tab without indent_size means indent by one tab.
	if s.values[PropertyIndentStyle] == "tab" && !s.has(PropertyIndentSize) &&
		versionAtLeast(version, versionIndentSizeTab) {
		s.set(PropertyIndentSize, "tab")
	}

	if s.has(PropertyIndentSize) && !s.has(PropertyTabWidth) && s.values[PropertyIndentSize] != "tab" {
		s.set(PropertyTabWidth, s.values[PropertyIndentSize])
	}

	if s.values[PropertyIndentSize] == "tab" && s.has(PropertyTabWidth) {
		s.set(PropertyIndentSize, s.values[PropertyTabWidth])
	}
}

// sanitizeValue lower-cases values of well-known enumeration properties.
// Unknown names and unrecognized values pass through unchanged otherwise.
func sanitizeValue(name string, value string) string {
	if _, ok := caseInsensitiveValues[name]; ok {
		return asciiLower(value)
	}

	return value
}

// MergeSections merges section slices preserving input order.
func MergeSections(sets ...[]Section) []Section {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]Section, 0, total)
	for _, set := range sets {
		out = append(out, set...)
	}

	return out
}
