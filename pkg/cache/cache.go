// Package cache provides a small persistent cache for probe results.
//
// Probing video dimensions shells out to ffprobe, which dominates startup
// time for directories full of clips. Results are keyed by path, size, and
// modification time, so a changed file never serves a stale entry.
//
// Two implementations are provided:
//   - FileCache: entries as files under a directory (CLI default)
//   - NullCache: stores nothing, for --no-cache and tests
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
