// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import "errors"

// Sentinel errors for editorconfig operations.
var (
	// ErrPathNotFound indicates target path cannot be resolved to an absolute path.
	ErrPathNotFound = errors.New("path not found")
	// ErrReadConfig indicates an existing config file cannot be read.
	ErrReadConfig = errors.New("read config file")
	// ErrMalformedPattern indicates a section pattern cannot be compiled.
	ErrMalformedPattern = errors.New("malformed pattern")
	// ErrInvalidConfigFileName indicates invalid resolver config file name.
	ErrInvalidConfigFileName = errors.New("invalid config file name")
	// ErrInvalidVersion indicates unsupported or malformed parser version.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrNilResolver indicates a nil Resolver receiver.
	ErrNilResolver = errors.New("resolver is nil")
)
