// Package cache provides a tiny in-memory TTL cache.
package cache

import (
	"sync"
	"time"
)

// Cache is an in-memory TTL cache. Entries expire on read; there is no
// background eviction, so a cache keyed by an unbounded key space grows
// unboundedly.
type Cache[T any] struct {
	mu   sync.RWMutex
	data map[string]entry[T]
	now  func() time.Time
}

type entry[T any] struct {
	value T
	exp   time.Time
}

// New returns an empty cache instance.
func New[T any]() *Cache[T] {
	return &Cache[T]{
		data: make(map[string]entry[T]),
		now:  time.Now,
	}
}

// Get returns the cached value, or false if absent or expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T

	c.mu.RLock()
	item, ok := c.data[key]
	c.mu.RUnlock()
	if !ok || c.now().After(item.exp) {
		return zero, false
	}
	return item.value, true
}

// Set stores a value with the provided TTL.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	c.data[key] = entry[T]{value: value, exp: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Len returns the number of entries held, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// SetClock overrides the time source. Used by tests.
func (c *Cache[T]) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}
