// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import "sync"

// LoadFunc loads one config file by absolute path.
type LoadFunc func(path string) (*ConfigFile, error)

// Cache maps absolute config file path to parsed config file.
//
// Cache is safe for concurrent use. Entries are never evicted automatically:
// callers that change config files on disk must call Clear.
type Cache struct {
	// entries stores loaded or loading files by absolute path.
	entries map[string]*cacheEntry
	// load parses one config file on cache miss.
	load LoadFunc

	// mu guards entries.
	mu sync.Mutex
}

// cacheEntry stores one config file or an in-flight load.
type cacheEntry struct {
	// file is nil until load finished or when load failed.
	file *ConfigFile
	// err is load error observed by concurrent waiters of the same attempt.
	err error
	// loading reports whether file is currently being loaded by another goroutine.
	loading bool
	// wg coordinates concurrent waiters for one load attempt.
	wg sync.WaitGroup
}

// NewCache creates cache backed by load, or LoadConfigFile when load is nil.
func NewCache(load LoadFunc) *Cache {
	if load == nil {
		load = LoadConfigFile
	}

	return &Cache{
		entries: make(map[string]*cacheEntry),
		load:    load,
	}
}

// Get returns cached config file for path, loading it on first use.
//
// Load errors are returned to every caller waiting on that attempt but are
// not stored, so the next Get retries.
func (c *Cache) Get(path string) (*ConfigFile, error) {
	c.mu.Lock()
	entry, ok := c.entries[path]
	if ok {
		loading := entry.loading
		c.mu.Unlock()
		if loading {
			entry.wg.Wait()
		}

		return entry.file, entry.err
	}

	entry = &cacheEntry{
		loading: true,
	}
	entry.wg.Add(1)
	c.entries[path] = entry
	c.mu.Unlock()

	file, err := c.load(path)

	c.mu.Lock()
	entry.file = file
	entry.err = err
	entry.loading = false
	if err != nil && c.entries[path] == entry {
		delete(c.entries, path)
	}
	entry.wg.Done()
	c.mu.Unlock()

	return file, err
}

// Clear removes all entries. Loads in flight finish but are not stored.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// Len returns number of cached entries, including loads in flight.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
