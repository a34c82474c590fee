package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"time"
)

// Cache defines the interface for caching parsed dictionary data
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
}

// CacheKey generates a cache key from a dictionary file path
func CacheKey(path string) string {
	hash := sha256.Sum256([]byte(filepath.Clean(path)))
	return "akkad:v1:" + hex.EncodeToString(hash[:])
}

// Nop is a Cache that never stores anything
type Nop struct{}

func (Nop) Get(string) (interface{}, bool)         { return nil, false }
func (Nop) Set(string, interface{}, time.Duration) {}
func (Nop) Delete(string)                          {}
func (Nop) Clear()                                 {}
func (Nop) Len() int                               { return 0 }
