package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// cacheSchemaVersion invalidates every stored entry when the payload
// layout or the lint semantics change.
const cacheSchemaVersion uint16 = 1

// cachePayload is the stored record for one (content, config) pair.
// Only clean results are cached; anything with violations is re-linted
// so the diagnostics stay fresh.
type cachePayload struct {
	Schema       uint16   `msgpack:"schema"`
	Path         string   `msgpack:"path"`
	ContentHash  [32]byte `msgpack:"content_hash"`
	ConfigDigest string   `msgpack:"config_digest"`
	Clean        bool     `msgpack:"clean"`
}

// DiskCache stores lint results keyed by content and configuration.
// Entries are msgpack files named by the hex key; writes go through a
// temp file and rename so a crashed run never leaves a torn entry.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache opens (creating if needed) the cache directory under
// XDG_CACHE_HOME, falling back to ~/.cache.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cache: resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "files")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create %s: %w", dir, err)
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create %s: %w", dir, err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Get loads the entry for key into out. A missing entry or a schema
// mismatch is a miss, not an error.
func (c *DiskCache) Get(key [32]byte, out *cachePayload) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: read entry: %w", err)
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		// A corrupt entry is a miss; it gets overwritten on the
		// next Put.
		return false, nil
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// Put stores the entry for key atomically.
func (c *DiskCache) Put(key [32]byte, payload *cachePayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := msgpack.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cache: encode entry: %w", err)
	}
	tmp, err := os.CreateTemp(c.dir, "entry-*.tmp")
	if err != nil {
		return fmt.Errorf("cache: create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("cache: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cache: close temp: %w", err)
	}
	if err := os.Rename(tmpName, c.pathFor(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cache: publish entry: %w", err)
	}
	return nil
}

// DropAll removes every stored entry.
func (c *DiskCache) DropAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cache: list entries: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return fmt.Errorf("cache: remove %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// cacheKey derives the entry key from file content and the
// configuration digest. Any change to either misses the cache.
func cacheKey(content []byte, cfgDigest string) [32]byte {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(cfgDigest))
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}
