package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as JSON files under a directory, fanned out by
// key hash. Writes go through a temp file and rename, so concurrent runs
// sharing the directory never observe a half-written entry.
type FileCache struct {
	dir string
}

// NewFileCache opens a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// record is the on-disk entry format. A nil Expires never expires.
type record struct {
	Payload []byte     `json:"payload"`
	Expires *time.Time `json:"expires,omitempty"`
}

// Get returns the stored value. Corrupt and expired entries are removed
// and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if rec.Expires != nil && time.Now().After(*rec.Expires) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return rec.Payload, true, nil
}

// Set stores a value. Any nonzero ttl sets an expiration, so a negative
// ttl writes an entry that is already stale.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	rec := record{Payload: data}
	if ttl != 0 {
		t := time.Now().Add(ttl)
		rec.Expires = &t
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".write-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the entry if present.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; every operation leaves the directory consistent.
func (c *FileCache) Close() error { return nil }

// entryPath fans keys out into 256 subdirectories by hash prefix, keeping
// any single directory small.
func (c *FileCache) entryPath(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
