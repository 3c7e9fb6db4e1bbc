package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores extracted document text between runs. Only raw text is
// ever cached; indexes and assessment results are rebuilt every run so
// a stale cache can never change a status.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a document source (URL or file path)
func Key(source string) string {
	hash := sha256.Sum256([]byte(source))
	return "attestor:v1:" + hex.EncodeToString(hash[:])
}
