// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/woozymasta/editorconfig"
	"github.com/woozymasta/editorconfig/internal/logging"
)

// Version is the command version, set via ldflags.
var Version = "dev" //nolint:gochecknoglobals // set via ldflags at build time.

const programName = "editorconfig"

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns exit status.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	var (
		configName    string
		versionCompat string
		optionsPath   string
		format        string
		logLevel      string
		logFormat     string
		useCache      bool
		showVersion   bool
		help          bool
	)

	flagSet := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&configName, "config-name", "f", "", "config file name looked up in each directory (default .editorconfig)")
	flagSet.StringVarP(&versionCompat, "version-compat", "b", "", "EditorConfig version to emulate (default "+editorconfig.DefaultVersion+")")
	flagSet.StringVar(&optionsPath, "options", "", "load resolver options from .yaml, .yml, .json or .jsonc file")
	flagSet.StringVar(&format, "format", formatINI, "output format: ini, json, yaml")
	flagSet.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flagSet.StringVar(&logFormat, "log-format", logging.FormatText, "log format: text, json")
	flagSet.BoolVar(&useCache, "cache", false, "reuse parsed config files between paths")
	flagSet.BoolVarP(&showVersion, "version", "v", false, "print version and exit")
	flagSet.BoolVarP(&help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return exitOK
		}

		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	if help {
		printHelp(stderr, flagSet)
		return exitOK
	}

	if showVersion {
		fmt.Fprintf(stdout, "%s %s (EditorConfig spec %s)\n", programName, Version, editorconfig.DefaultVersion)
		return exitOK
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		fmt.Fprintf(stderr, "error: at least one file path is required\n")
		printHelp(stderr, flagSet)
		return exitUsage
	}

	switch format {
	case formatINI, formatJSON, formatYAML:
	default:
		fmt.Fprintf(stderr, "error: unsupported format %q\n", format)
		return exitUsage
	}

	opts, err := loadOptions(optionsPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	if flagSet.Changed("config-name") {
		opts.ConfigFileName = configName
	}

	if flagSet.Changed("version-compat") {
		opts.Version = versionCompat
	}

	if flagSet.Changed("cache") {
		opts.UseCache = useCache
	}

	opts.Logger = logging.NewLogger(logging.LoggerConfig{Level: logLevel, Format: logFormat}, stderr)

	resolver, err := editorconfig.NewResolver(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	results := resolver.ResolveAll(paths...)
	if err := writeResults(stdout, stderr, format, results); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailed
	}

	for _, res := range results {
		if res.Err != nil {
			return exitFailed
		}
	}

	return exitOK
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `%s prints EditorConfig properties resolved for files.

Usage:
  %s [flags] FILE...

Flags:
%s`, programName, programName, flagSet.FlagUsages())
}
