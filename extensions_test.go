// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import "testing"

func TestExtensionsPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "blank only", in: []string{"", "   "}, want: ""},
		{name: "single", in: []string{".go"}, want: "*.go"},
		{
			name: "mixed forms",
			in:   []string{"go", ".mod", "*.sum", " ..cfg  ", "go"},
			want: "*.{go,mod,sum,cfg}",
		},
		{name: "meta escaped", in: []string{"c{x}", "a,b"}, want: `*.{c\{x\},a\,b}`},
		{name: "separator dropped", in: []string{"tar/gz"}, want: "*.targz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExtensionsPattern(tt.in); got != tt.want {
				t.Fatalf("ExtensionsPattern(%q)=%q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtensionsSectionMatches(t *testing.T) {
	t.Parallel()

	section := ExtensionsSection([]string{"go", "c{x}"}, Property{Name: "indent_style", Value: "tab"})
	if len(section.Properties) != 1 {
		t.Fatalf("len(properties)=%d, want 1", len(section.Properties))
	}

	m, err := Compile(section.Pattern, "/proj")
	if err != nil {
		t.Fatalf("Compile(%q): %v", section.Pattern, err)
	}

	for path, want := range map[string]bool{
		"/proj/main.go":      true,
		"/proj/pkg/sub/x.go": true,
		"/proj/a.c{x}":       true,
		"/proj/a.cx":         false,
		"/other/main.go":     false,
		"/proj/main.go.orig": false,
		"/proj/README.md":    false,
	} {
		if got := m.Match(path); got != want {
			t.Fatalf("Match(%q)=%v, want %v", path, got, want)
		}
	}
}

func TestExtensionsSectionEmptyMatchesNothing(t *testing.T) {
	t.Parallel()

	m, err := Compile(ExtensionsSection(nil).Pattern, "/proj")
	if err != nil {
		t.Fatalf("Compile(empty): %v", err)
	}

	if m.Match("/proj/a.go") {
		t.Fatal("empty extension section must match nothing")
	}
}
