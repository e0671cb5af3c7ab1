// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

// Command editorconfig prints EditorConfig properties resolved for files.
//
// Usage:
//
//	editorconfig [flags] FILE...
//
// With one file, properties are printed as "name=value" lines. With several
// files, each block is preceded by a "[FILE]" header. Files are resolved
// independently: a failure on one file is reported on stderr and the others
// are still printed. Exit status is 1 when any file failed.
//
// Resolver options may be loaded from a YAML (.yaml, .yml) or JSON
// (.json, .jsonc, comments allowed) file with --options; flags override it.
package main
