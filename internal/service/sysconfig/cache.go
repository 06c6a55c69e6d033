package sysconfig

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
)

// DefaultCacheTTL is how long a snapshot is served before the next read refreshes it
const DefaultCacheTTL = 5 * time.Minute

// Cache holds one whole snapshot of system_configs.
// Snapshots are replaced, never mutated, so a reader sees either the old or the new map.
type Cache struct {
	mu         sync.RWMutex
	snapshot   map[string]sysconfig.EntryValue
	fetchedAt  time.Time
	generation uint64
	ttl        time.Duration
	now        func() time.Time
}

type CacheOption func(*Cache)

// WithClock overrides time.Now, mainly for tests
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

func NewCache(ttl time.Duration, opts ...CacheOption) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	c := &Cache{ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the snapshot if one exists and is younger than the TTL
func (c *Cache) Lookup() (map[string]sysconfig.EntryValue, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.snapshot, true
}

// Generation identifies the current invalidation epoch. Pass it to Replace.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// Replace installs snapshot unless the cache was invalidated after generation was read.
// A refresh that raced with Invalidate is dropped so the next read fetches again.
func (c *Cache) Replace(generation uint64, snapshot map[string]sysconfig.EntryValue) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return false
	}
	c.snapshot = snapshot
	c.fetchedAt = c.now()
	return true
}

// Invalidate clears the snapshot. Safe to call repeatedly.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
	c.fetchedAt = time.Time{}
	c.generation++
}

// FetchedAt is the time of the last successful refresh, zero when empty
func (c *Cache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}
