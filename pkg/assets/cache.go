package assets

import "sync"

// Cache is a provider-owned, evict-never asset cache. The asset catalog is
// static, so entries are written once and read forever; concurrent lookups of
// the same key are safe. Providers own their cache explicitly instead of
// sharing module-level state.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// NewCache returns an empty cache.
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]V)}
}

// Get returns the cached value for key.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores value under key. Later writes win when two loads race; both
// loads of a static catalog produce the same value, so the race is benign.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len reports the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
