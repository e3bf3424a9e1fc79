// Package cache provides the TTL memo used to bound the cost of upstream
// discovery calls. It is advisory: concurrent misses on an expired key may
// both refetch, and the last writer wins.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the staleness window for discovery results.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
}

// Cache is a process-wide key/value store with a fixed time-to-live.
// The key set is small and fixed (one key per discovery call), so there is
// no eviction beyond the staleness check and no explicit invalidation.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// New creates a Cache with the given TTL. A ttl of zero uses DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// NewWithClock creates a Cache with an injected clock, for tests.
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	c := New(ttl)
	c.now = now
	return c
}

// Get returns the value stored under key, or false if the key was never set
// or its entry is at least TTL old. An expired entry is treated as absent,
// not returned.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the current time. A concurrent Set for the
// same key simply overwrites.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, storedAt: c.now()}
}
