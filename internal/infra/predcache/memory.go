// Package predcache holds the single most recent raw prediction set with a
// two-tier freshness policy: fresh within the TTL, stale-but-usable after.
package predcache

import (
	"context"
	"sync"
	"time"

	"github.com/surfapp/recommender/internal/domain/recommend"
)

// DefaultTTL matches the server-side cache window of the original system.
const DefaultTTL = 5 * time.Minute

// MemoryCache is the in-process single-slot implementation.
type MemoryCache struct {
	mu    sync.RWMutex
	data  []recommend.SpotForecast
	setAt time.Time
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryCache constructs a cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{ttl: ttl, now: time.Now}
}

// NewMemoryCacheWithClock lets tests substitute a deterministic clock.
func NewMemoryCacheWithClock(ttl time.Duration, now func() time.Time) *MemoryCache {
	c := NewMemoryCache(ttl)
	c.now = now
	return c
}

// Get returns the entry only while it is fresh.
func (c *MemoryCache) Get(_ context.Context) ([]recommend.SpotForecast, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.data == nil {
		return nil, false, nil
	}
	if c.now().Sub(c.setAt) >= c.ttl {
		return nil, false, nil
	}
	return c.data, true, nil
}

// Put replaces the single slot atomically.
func (c *MemoryCache) Put(_ context.Context, data []recommend.SpotForecast) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
	c.setAt = c.now()
	return nil
}

// GetStale returns the last successful Put regardless of age. It reports
// empty only when nothing was ever stored.
func (c *MemoryCache) GetStale(_ context.Context) ([]recommend.SpotForecast, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.data == nil {
		return nil, false, nil
	}
	return c.data, true, nil
}

var _ recommend.PredictionCache = (*MemoryCache)(nil)
