package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// diskExt is the extension for cache entry files.
const diskExt = ".cache"

// Disk is a durable cache that stores one file per key under a directory.
// Entries survive process restarts.
//
// Keys are expected to be MakeKey digests; anything that is not a clean path
// segment is rejected at the Get/Set level to keep entries inside the cache
// directory.
type Disk struct {
	dir string
}

// DefaultDiskDir returns the default disk cache location under the system
// temp directory.
func DefaultDiskDir() string {
	return filepath.Join(os.TempDir(), "abacus-cache")
}

// NewDisk creates a disk cache rooted at dir, creating the directory if
// needed. An empty dir selects DefaultDiskDir.
func NewDisk(dir string) (*Disk, error) {
	if dir == "" {
		dir = DefaultDiskDir()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Disk{dir: dir}, nil
}

// Dir returns the cache directory.
func (d *Disk) Dir() string {
	return d.dir
}

// Get returns the value for key. Unreadable or missing files report a miss.
func (d *Disk) Get(key string) ([]byte, bool) {
	path, ok := d.path(key)
	if !ok {
		return nil, false
	}

	value, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set stores value under key. Write failures are silently dropped; a cache
// that cannot persist behaves like a cache that forgot.
func (d *Disk) Set(key string, value []byte) {
	path, ok := d.path(key)
	if !ok {
		return
	}

	_ = os.WriteFile(path, value, 0o644)
}

// Clear removes all entry files. Removal failures are best effort.
func (d *Disk) Clear() {
	matches, err := filepath.Glob(filepath.Join(d.dir, "*"+diskExt))
	if err != nil {
		return
	}

	for _, match := range matches {
		_ = os.Remove(match)
	}
}

// path maps a key to its file, refusing keys that would escape the cache
// directory.
func (d *Disk) path(key string) (string, bool) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", false
	}
	return filepath.Join(d.dir, key+diskExt), true
}
