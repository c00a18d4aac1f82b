package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type inMemoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// InMemoryDashboardCache is a process-local dashboard cache. State is not
// shared across instances, so it fits single-node deployments and tests.
type InMemoryDashboardCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
	now     func() time.Time
}

// NewInMemoryDashboardCache creates an empty in-memory cache
func NewInMemoryDashboardCache() *InMemoryDashboardCache {
	return &InMemoryDashboardCache{
		entries: make(map[string]inMemoryEntry),
		now:     time.Now,
	}
}

// Get loads a cached payload into out. Expired entries count as misses and
// are dropped lazily.
func (c *InMemoryDashboardCache) Get(_ context.Context, key string, out any) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(entry.payload, out); err != nil {
		return false, fmt.Errorf("failed to decode cached payload for %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key for at most ttl
func (c *InMemoryDashboardCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode payload for %s: %w", key, err)
	}

	c.mu.Lock()
	c.entries[key] = inMemoryEntry{payload: payload, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
