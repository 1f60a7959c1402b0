package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ProbeKey builds the cache key for one file's probe result. Size and
// modification time are part of the key, so editing a file in place
// invalidates its entry without any explicit bookkeeping.
func ProbeKey(path string, size, mtimeUnix int64) string {
	return fmt.Sprintf("probe:%s", Hash(fmt.Appendf(nil, "%s|%d|%d", path, size, mtimeUnix)))
}
