// Package cache wraps a ristretto cache for response caching: a small
// Cache interface so the handlers never depend on ristretto directly,
// and a no-op implementation selected when the configured size is zero.
package cache

import (
	"fmt"
	"os"

	"github.com/dgraph-io/ristretto"
)

// Cache stores already-computed locate/clip results keyed by a caller-
// supplied digest (geometry + operation + parameters), so that repeat
// queries against a large linestring don't re-walk it.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, cost int64)
}

type ristrettoCache struct {
	rc *ristretto.Cache
}

// NewCache returns a Cache backed by ristretto sized to sizeMB megabytes.
// A sizeMB of zero returns a no-op cache: "--cache-size 0" effectively
// disables caching.
func NewCache(sizeMB uint64) Cache {
	if sizeMB == 0 {
		return noopCache{}
	}

	maxCost := int64(sizeMB) * 1024 * 1024
	rc, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost / 100, // ~100 bytes/entry average working estimate
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		// A misconfigured cache should not take the server down; fall
		// back to a no-op rather than panic.
		fmt.Fprintf(os.Stderr, "cache: failed to construct ristretto cache, caching disabled: %v\n", err)
		return noopCache{}
	}

	return &ristrettoCache{rc: rc}
}

func (c *ristrettoCache) Get(key string) ([]byte, bool) {
	v, ok := c.rc.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (c *ristrettoCache) Set(key string, value []byte, cost int64) {
	c.rc.SetWithTTL(key, value, cost, 0)
}

type noopCache struct{}

func (noopCache) Get(string) ([]byte, bool) { return nil, false }
func (noopCache) Set(string, []byte, int64) {}
