// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import "strings"

// ExtensionsPattern converts extension list to one section pattern.
//
// Accepted extension forms:
//   - "go"
//   - ".go"
//   - "*.go"
//
// Empty values and duplicates are skipped. One extension yields "*.ext",
// several yield "*.{a,b}" in input order, none yields empty pattern which
// matches nothing. Glob meta in extensions is escaped.
func ExtensionsPattern(exts []string) string {
	seen := make(map[string]struct{}, len(exts))
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		if ext == "" {
			continue
		}

		if _, ok := seen[ext]; ok {
			continue
		}

		seen[ext] = struct{}{}
		out = append(out, escapeGlob(ext))
	}

	switch len(out) {
	case 0:
		return ""
	case 1:
		return "*." + out[0]
	default:
		return "*.{" + strings.Join(out, ",") + "}"
	}
}

// ExtensionsSection builds in-memory section for extension list, suitable for
// ResolverOptions.BaseSections.
func ExtensionsSection(exts []string, props ...Property) Section {
	return Section{
		Pattern:    ExtensionsPattern(exts),
		Properties: props,
	}
}

// escapeGlob escapes glob meta characters of literal text.
func escapeGlob(s string) string {
	if !strings.ContainsAny(s, `*?[]{},\/`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[', ']', '{', '}', ',', '\\':
			b.WriteByte('\\')
		case '/':
			// Separator would anchor section pattern; drop it.
			continue
		}

		b.WriteByte(s[i])
	}

	return b.String()
}
