package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-value cache with per-entry TTL. Used for external lookup
// results (verification responses, fetched pages), never for pipeline state.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from an arbitrary lookup string.
func Key(lookup string) string {
	hash := sha256.Sum256([]byte(lookup))
	return "factyne:v1:" + hex.EncodeToString(hash[:])
}
