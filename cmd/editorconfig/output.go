// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/woozymasta/editorconfig"
)

// Output formats.
const (
	formatINI  = "ini"
	formatJSON = "json"
	formatYAML = "yaml"
)

// outputEntry is one structured output record.
type outputEntry struct {
	Properties  map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Path        string            `json:"path" yaml:"path"`
	Version     string            `json:"version,omitempty" yaml:"version,omitempty"`
	Fingerprint string            `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Error       string            `json:"error,omitempty" yaml:"error,omitempty"`
	Sources     []string          `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// writeResults renders batch results in requested format.
// Failed entries go to errOut in ini format and into records otherwise.
func writeResults(out io.Writer, errOut io.Writer, format string, results []editorconfig.BatchResult) error {
	switch format {
	case formatINI:
		return writeINI(out, errOut, results)
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(outputEntries(results))
	case formatYAML:
		data, err := yaml.Marshal(outputEntries(results))
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}

		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// writeINI writes "name=value" lines, with "[path]" headers for several paths.
func writeINI(out io.Writer, errOut io.Writer, results []editorconfig.BatchResult) error {
	headers := len(results) > 1
	for _, res := range results {
		if res.Err != nil {
			if _, err := fmt.Fprintf(errOut, "error: %s: %v\n", res.Path, res.Err); err != nil {
				return err
			}

			continue
		}

		if headers {
			if _, err := fmt.Fprintf(out, "[%s]\n", res.Path); err != nil {
				return err
			}
		}

		for _, p := range res.Resolution.Ordered() {
			if _, err := fmt.Fprintf(out, "%s=%s\n", p.Name, p.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

// outputEntries converts batch results into structured records.
func outputEntries(results []editorconfig.BatchResult) []outputEntry {
	entries := make([]outputEntry, 0, len(results))
	for _, res := range results {
		entry := outputEntry{Path: res.Path}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		} else {
			entry.Properties = res.Resolution.Properties
			entry.Version = res.Resolution.Version
			entry.Fingerprint = res.Resolution.Fingerprint
			entry.Sources = res.Resolution.Sources
		}

		entries = append(entries, entry)
	}

	return entries
}
