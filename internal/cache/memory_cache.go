package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is a single-slot in-process cache: it retains only the most
// recently set key. A read at or past the expiry reports ErrNotFound, never
// a stale value. The slot is not cleared before that; a failed refresh keeps
// serving the previous value until its TTL elapses.
type MemoryCache struct {
	mu        sync.RWMutex
	key       string
	value     float64
	expiresAt time.Time
	now       func() time.Time
}

type MemoryCacheOption func(*MemoryCache)

// WithClock overrides the cache's notion of the current time.
func WithClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.now = now
	}
}

func NewMemoryCache(opts ...MemoryCacheOption) *MemoryCache {
	c := &MemoryCache{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MemoryCache) Get(ctx context.Context, key string) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.key != key || c.key == "" {
		return 0, ErrNotFound
	}
	if !c.expiresAt.IsZero() && !c.now().Before(c.expiresAt) {
		return 0, ErrNotFound
	}
	return c.value, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value float64, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = key
	c.value = value
	if expiration > 0 {
		c.expiresAt = c.now().Add(expiration)
	} else {
		c.expiresAt = time.Time{}
	}
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key == key {
		c.key = ""
		c.value = 0
		c.expiresAt = time.Time{}
	}
	return nil
}

func (c *MemoryCache) Close() error {
	return nil
}
