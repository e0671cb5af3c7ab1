// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

func TestRunINISinglePath(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		".editorconfig": "root = true\n[*]\nindent_style = space\n[*.go]\nindent_size = 2\n",
	})

	stdout, stderr, code := runCommand(t, filepath.Join(root, "main.go"))
	require.Equal(t, exitOK, code, stderr)
	require.Equal(t, "indent_style=space\nindent_size=2\ntab_width=2\n", stdout)
	require.Empty(t, stderr)
}

func TestRunINIMultiplePathsHaveHeaders(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		".editorconfig": "root = true\n[*.md]\ntrim_trailing_whitespace = false\n[*.go]\nindent_style = tab\n",
	})
	md := filepath.Join(root, "README.md")
	goFile := filepath.Join(root, "main.go")

	stdout, _, code := runCommand(t, md, goFile)
	require.Equal(t, exitOK, code)
	require.Equal(t,
		"["+md+"]\ntrim_trailing_whitespace=false\n"+
			"["+goFile+"]\nindent_style=tab\nindent_size=tab\n",
		stdout,
	)
}

func TestRunJSONOutput(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		".editorconfig": "root = true\n[*]\ncharset = UTF-8\n",
	})
	target := filepath.Join(root, "a.txt")

	stdout, _, code := runCommand(t, "--format", "json", target)
	require.Equal(t, exitOK, code)

	var entries []outputEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, target, entries[0].Path)
	require.Equal(t, map[string]string{"charset": "utf-8"}, entries[0].Properties)
	require.Equal(t, []string{filepath.Join(root, ".editorconfig")}, entries[0].Sources)
	require.NotEmpty(t, entries[0].Fingerprint)
}

func TestRunYAMLOutputReportsErrors(t *testing.T) {
	t.Parallel()

	good := writeTree(t, map[string]string{".editorconfig": "root = true\n[*]\nend_of_line = lf\n"})
	bad := writeTree(t, map[string]string{".editorconfig": "root = true\n[{a,b]\nend_of_line = crlf\n"})

	stdout, _, code := runCommand(t, "--format=yaml", "--cache",
		filepath.Join(good, "x.txt"),
		filepath.Join(bad, "x.txt"),
	)
	require.Equal(t, exitFailed, code)

	var entries []outputEntry
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "lf", entries[0].Properties["end_of_line"])
	require.Empty(t, entries[0].Error)
	require.Contains(t, entries[1].Error, "malformed")
	require.Empty(t, entries[1].Properties)
}

func TestRunINIFailureGoesToStderr(t *testing.T) {
	t.Parallel()

	good := writeTree(t, map[string]string{".editorconfig": "root = true\n[*]\ntab_width = 4\n"})
	bad := writeTree(t, map[string]string{".editorconfig": "root = true\n[*.[ch]\ntab_width = 8\n"})
	goodPath := filepath.Join(good, "a.c")
	badPath := filepath.Join(bad, "a.c")

	stdout, stderr, code := runCommand(t, badPath, goodPath)
	require.Equal(t, exitFailed, code)
	require.Equal(t, "["+goodPath+"]\ntab_width=4\n", stdout)
	require.Contains(t, stderr, "error: "+badPath+": ")
}

func TestRunConfigNameAndVersionFlags(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		".editorconfig": "root = true\n[*]\nindent_size = 8\n",
		".styleconfig":  "root = true\n[*]\nindent_style = tab\n",
	})
	target := filepath.Join(root, "a.txt")

	stdout, _, code := runCommand(t, "-f", ".styleconfig", target)
	require.Equal(t, exitOK, code)
	require.Equal(t, "indent_style=tab\nindent_size=tab\n", stdout)

	stdout, _, code = runCommand(t, "-f", ".styleconfig", "-b", "0.9.0", target)
	require.Equal(t, exitOK, code)
	require.Equal(t, "indent_style=tab\n", stdout)
}

func TestRunOptionsFileWithFlagOverride(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		".editorconfig": "root = true\n[*]\nindent_size = 8\n",
		".styleconfig":  "root = true\n[*]\nindent_size = 3\n",
		"opts.yaml":     "config_file_name: .styleconfig\nuse_cache: true\nbase_sections:\n  - pattern: \"*.txt\"\n    properties:\n      - name: charset\n        value: latin1\n",
	})
	target := filepath.Join(root, "a.txt")
	opts := filepath.Join(root, "opts.yaml")

	stdout, _, code := runCommand(t, "--options", opts, target)
	require.Equal(t, exitOK, code)
	require.Equal(t, "charset=latin1\nindent_size=3\ntab_width=3\n", stdout)

	stdout, _, code = runCommand(t, "--options", opts, "--config-name", ".editorconfig", target)
	require.Equal(t, exitOK, code)
	require.Equal(t, "charset=latin1\nindent_size=8\ntab_width=8\n", stdout)
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"opts.toml": "x = 1\n"})

	tests := []struct {
		name string
		args []string
	}{
		{name: "no paths", args: nil},
		{name: "bad format", args: []string{"--format", "xml", "a.txt"}},
		{name: "unknown flag", args: []string{"--nope", "a.txt"}},
		{name: "bad version", args: []string{"-b", "banana", "a.txt"}},
		{name: "bad config name", args: []string{"-f", "../x", "a.txt"}},
		{name: "unsupported options", args: []string{"--options", filepath.Join(root, "opts.toml"), "a.txt"}},
		{name: "missing options", args: []string{"--options", filepath.Join(root, "none.yaml"), "a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, stderr, code := runCommand(t, tt.args...)
			require.Equal(t, exitUsage, code)
			require.Contains(t, stderr, "error:")
		})
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	t.Parallel()

	stdout, _, code := runCommand(t, "--version")
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, programName+" "+Version)

	_, stderr, code := runCommand(t, "--help")
	require.Equal(t, exitOK, code)
	require.Contains(t, stderr, "--config-name")
	require.Contains(t, stderr, "Usage:")
}

func TestRunDebugLogging(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{".editorconfig": "root = true\n[*]\nindent_style = space\n"})

	_, stderr, code := runCommand(t, "--log-level", "debug", "--log-format", "json", filepath.Join(root, "a.txt"))
	require.Equal(t, exitOK, code)
	require.Contains(t, stderr, `"msg":"section matched"`)
}

func runCommand(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

// writeTree writes files relative to a fresh temporary directory and returns it.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return root
}
