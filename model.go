// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import "log/slog"

// Property is one name/value assignment of a section.
type Property struct {
	// Name is a property name, lower-cased by the parser.
	Name string `json:"name" yaml:"name"`
	// Value is a raw property value as written in the config file.
	Value string `json:"value" yaml:"value"`
}

// Section is one glob pattern with its ordered property assignments.
type Section struct {
	// Pattern is a glob taken verbatim from the section header.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Properties preserve file order; later duplicates win on merge.
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// ConfigFile is one parsed config file. It is never mutated after construction.
type ConfigFile struct {
	// Path is absolute config file path, empty for in-memory input.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// Dir is slash-normalized absolute directory used as pattern anchor.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
	// Sections preserve file order.
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
	// Digest is BLAKE3 hash of raw file content.
	Digest [32]byte `json:"-" yaml:"-"`
	// Root reports "root = true" in the preamble.
	Root bool `json:"root,omitempty" yaml:"root,omitempty"`
}

// Resolution is the merged property set for one target file.
type Resolution struct {
	// Properties maps sanitized property name to sanitized value.
	Properties map[string]string `json:"properties" yaml:"properties"`
	// Path is the normalized absolute target path.
	Path string `json:"path" yaml:"path"`
	// Version is the parser version used for resolution.
	Version string `json:"version" yaml:"version"`
	// Fingerprint is hex BLAKE3 digest over contributing config files.
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
	// Names lists property names in first-definition order.
	Names []string `json:"-" yaml:"-"`
	// Sources lists contributing config file paths root-first.
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// ResolverOptions configures resolver behavior.
type ResolverOptions struct {
	// Logger receives debug records; nil disables logging.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// ConfigFileName is the config file looked up in each directory.
	// Empty value defaults to ".editorconfig".
	ConfigFileName string `json:"config_file_name,omitempty" yaml:"config_file_name,omitempty"`
	// Version is EditorConfig spec version (without "v" prefix) gating property post-processing.
	// Empty value defaults to DefaultVersion.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// BaseSections are in-memory sections folded before any config file.
	BaseSections []Section `json:"base_sections,omitempty" yaml:"base_sections,omitempty"`
	// UseCache enables reuse of parsed config files across resolutions.
	UseCache bool `json:"use_cache,omitempty" yaml:"use_cache,omitempty"`
}

// BatchResult is one entry of ResolveAll output.
type BatchResult struct {
	// Resolution is nil when Err is set.
	Resolution *Resolution
	// Err is the resolution error for Path.
	Err error
	// Path is the input path as passed by caller.
	Path string
}

// Get returns one resolved property value.
func (r *Resolution) Get(name string) (string, bool) {
	if r == nil {
		return "", false
	}

	v, ok := r.Properties[asciiLower(name)]
	return v, ok
}

// Ordered returns resolved properties in first-definition order.
func (r *Resolution) Ordered() []Property {
	if r == nil {
		return nil
	}

	out := make([]Property, 0, len(r.Names))
	for _, name := range r.Names {
		out = append(out, Property{Name: name, Value: r.Properties[name]})
	}

	return out
}
