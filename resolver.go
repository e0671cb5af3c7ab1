// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/zeebo/blake3"
)

const defaultConfigFileName = ".editorconfig"

// Resolver resolves EditorConfig properties for target files.
//
// Resolver is safe for concurrent use.
type Resolver struct {
	// cache stores parsed config files, nil when caching is disabled.
	cache *Cache
	// logger receives debug records.
	logger *slog.Logger
	// configFileName is per-directory config file name.
	configFileName string
	// version is canonical parser version ("vX.Y.Z").
	version string
	// baseSections are folded before any config file.
	baseSections []Section
	// baseDigest is BLAKE3 digest of baseSections, part of every fingerprint.
	baseDigest [32]byte
}

// NewResolver creates resolver with validated options.
func NewResolver(opts ResolverOptions) (*Resolver, error) {
	configFileName, err := cleanConfigFileName(opts.ConfigFileName)
	if err != nil {
		return nil, err
	}

	version, err := parseVersion(opts.Version)
	if err != nil {
		return nil, err
	}

	for i := range opts.BaseSections {
		if _, err := Compile(opts.BaseSections[i].Pattern, ""); err != nil {
			return nil, fmt.Errorf("base section %d: %w", i, err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := &Resolver{
		configFileName: configFileName,
		version:        version,
		baseSections:   MergeSections(opts.BaseSections),
		logger:         logger,
	}
	r.baseDigest = sectionsDigest(r.baseSections)

	if opts.UseCache {
		r.cache = NewCache(LoadConfigFile)
	}

	return r, nil
}

// Resolve returns merged properties for one target file.
//
// Merge order:
// 1. BaseSections.
// 2. Config files from the farthest ancestor (or nearest root file) to the file's directory.
// Later matching sections override earlier ones.
func (r *Resolver) Resolve(path string) (*Resolution, error) {
	if r == nil {
		return nil, ErrNilResolver
	}

	osPath, target, err := absPath(path)
	if err != nil {
		return nil, err
	}

	files, err := r.configFiles(osPath)
	if err != nil {
		return nil, err
	}

	props := newPropertySet()
	if err := r.applySections(props, r.baseSections, volumeAnchor(target), target, "base"); err != nil {
		return nil, err
	}

	sources := make([]string, 0, len(files))
	for _, cf := range files {
		if err := r.applySections(props, cf.Sections, cf.Dir, target, cf.Path); err != nil {
			return nil, err
		}

		sources = append(sources, cf.Path)
	}

	props.finalize(r.version)

	return &Resolution{
		Properties:  props.values,
		Names:       props.names,
		Path:        target,
		Version:     displayVersion(r.version),
		Sources:     sources,
		Fingerprint: fingerprint(r.version, r.baseDigest, files),
	}, nil
}

// ResolveAll resolves every path independently.
//
// A failure on one path is reported in its BatchResult and never affects other paths.
func (r *Resolver) ResolveAll(paths ...string) []BatchResult {
	results := make([]BatchResult, len(paths))
	for i, path := range paths {
		res, err := r.Resolve(path)
		results[i] = BatchResult{
			Path:       path,
			Resolution: res,
			Err:        err,
		}
	}

	return results
}

// ConfigFiles returns config files applying to path, root-first.
func (r *Resolver) ConfigFiles(path string) ([]*ConfigFile, error) {
	if r == nil {
		return nil, ErrNilResolver
	}

	osPath, _, err := absPath(path)
	if err != nil {
		return nil, err
	}

	return r.configFiles(osPath)
}

// ClearCache drops all cached config files. It is a no-op when caching is disabled.
func (r *Resolver) ClearCache() {
	if r == nil || r.cache == nil {
		return
	}

	r.cache.Clear()
}

// configFiles walks from the file's directory up to filesystem root and
// returns found config files root-first, stopping at the first root file.
func (r *Resolver) configFiles(osPath string) ([]*ConfigFile, error) {
	files := make([]*ConfigFile, 0, 4)

	dir := filepath.Dir(osPath)
	for {
		cf, err := r.loadDirConfig(dir)
		if err != nil {
			return nil, err
		}

		if cf != nil {
			files = append(files, cf)
			if cf.Root {
				r.logger.Debug("root config reached", slog.String("config", cf.Path))
				break
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	slices.Reverse(files)
	return files, nil
}

// loadDirConfig returns config file of one directory, nil when directory has none.
func (r *Resolver) loadDirConfig(dir string) (*ConfigFile, error) {
	configPath := filepath.Join(dir, r.configFileName)

	info, err := os.Stat(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: stat %s: %v", ErrReadConfig, configPath, err)
	}

	if info.IsDir() {
		return nil, nil
	}

	load := LoadConfigFile
	if r.cache != nil {
		load = r.cache.Get
	}

	cf, err := load(configPath)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("config file ready",
		slog.String("config", cf.Path),
		slog.Int("sections", len(cf.Sections)),
		slog.Bool("root", cf.Root),
	)

	return cf, nil
}

// applySections folds every section of one source whose pattern matches target.
func (r *Resolver) applySections(
	props *propertySet,
	sections []Section,
	anchor string,
	target string,
	source string,
) error {
	for i := range sections {
		m, err := Compile(sections[i].Pattern, anchor)
		if err != nil {
			return fmt.Errorf("%s: section %d: %w", source, i, err)
		}

		if !m.Match(target) {
			continue
		}

		r.logger.Debug("section matched",
			slog.String("config", source),
			slog.String("pattern", sections[i].Pattern),
			slog.String("path", target),
		)

		props.foldSection(sections[i])
	}

	return nil
}

// fingerprint hashes parser version, base sections and contributing files in merge order.
func fingerprint(version string, baseDigest [32]byte, files []*ConfigFile) string {
	h := blake3.New()
	_, _ = h.Write([]byte(version))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(baseDigest[:])
	for _, cf := range files {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(cf.Path))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write(cf.Digest[:])
	}

	return hex.EncodeToString(h.Sum(nil))
}

// sectionsDigest hashes in-memory sections. Quoting keeps field boundaries unambiguous.
func sectionsDigest(sections []Section) [32]byte {
	h := blake3.New()
	for _, section := range sections {
		_, _ = fmt.Fprintf(h, "[%q]\n", section.Pattern)
		for _, p := range section.Properties {
			_, _ = fmt.Fprintf(h, "%q=%q\n", p.Name, p.Value)
		}
	}

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// cleanConfigFileName validates and normalizes resolver config file name.
func cleanConfigFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = defaultConfigFileName
	}

	if filepath.IsAbs(name) {
		return "", ErrInvalidConfigFileName
	}

	name = filepath.ToSlash(name)
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", ErrInvalidConfigFileName
	}

	return name, nil
}
