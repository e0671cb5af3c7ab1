// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

/*
Package editorconfig resolves EditorConfig properties for files.

Properties are collected from every config file (".editorconfig" by default)
found in the directory chain of a target file, up to the filesystem root or the
first file declaring "root = true". Files are merged root-first, so nearer files
override farther ones, and later sections override earlier ones in one file.

Basic flow:
  - create resolver (`NewResolver`)
  - resolve one path (`Resolve`) or a batch (`ResolveAll`)
  - read properties from `Resolution`

Lower-level building blocks:
  - parse config text (`ParseConfig` / `ParseConfigString`)
  - load config file from disk (`LoadConfigFile`)
  - compile section glob (`Compile`, or `CompileExact` which matches direct children only)
  - share parsed files between resolutions (`Cache`, or `ResolverOptions.UseCache`)

Glob dialect:
  - "*" any run without "/", "**" any run including "/"
  - "?" one character except "/"
  - "[abc]", "[a-z]", "[!abc]", "[^abc]" character classes
  - "{a,b}" alternation, "{1..5}" numeric range
  - "\" escapes the next character
*/
package editorconfig
