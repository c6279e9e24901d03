package repository

import "sync"

// CollectionCache holds the resolved task-database id for the process
// lifetime. It is created at the composition root and injected into the
// repository so tests can reset it and operators can force re-resolution.
type CollectionCache struct {
	mu sync.RWMutex
	id string
}

// NewCollectionCache returns an empty cache.
func NewCollectionCache() *CollectionCache {
	return &CollectionCache{}
}

// Get returns the cached collection id, or "" when unresolved.
func (c *CollectionCache) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// Set stores the resolved collection id.
func (c *CollectionCache) Set(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = id
}

// Invalidate clears the cached id so the next EnsureCollection re-resolves.
func (c *CollectionCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = ""
}
