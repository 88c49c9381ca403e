package memory

import (
	"context"
	"sync"
)

// Cache implements ports.VerdictCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]bool
	mu   sync.RWMutex
}

// NewCache creates a new in-memory verdict cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]bool),
	}
}

// Get retrieves a verdict.
func (c *Cache) Get(ctx context.Context, key string) (bool, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	accepted, ok := c.data[key]
	return accepted, ok, nil
}

// Set stores a verdict.
func (c *Cache) Set(ctx context.Context, key string, accepted bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = accepted
	return nil
}

// Len returns the number of cached verdicts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
