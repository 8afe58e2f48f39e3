package reconcile

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// BuildFunc produces a fresh audit snapshot.
type BuildFunc func(ctx context.Context) (*Snapshot, error)

// Cache holds audit snapshots keyed by a caller-chosen key.
type Cache struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	sf        singleflight.Group
}

// NewCache creates an empty snapshot cache.
func NewCache() *Cache {
	return &Cache{
		snapshots: make(map[string]*Snapshot),
	}
}

// GetOrBuild returns the cached snapshot for key, or builds a new one if it
// doesn't exist or has expired. Concurrent callers share a single build.
func (c *Cache) GetOrBuild(ctx context.Context, key string, build BuildFunc) (*Snapshot, error) {
	// Fast path: check if snapshot exists and is fresh
	c.mu.RLock()
	snap, exists := c.snapshots[key]
	c.mu.RUnlock()

	if exists && !snap.IsExpired() {
		return snap, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		snap, exists := c.snapshots[key]
		c.mu.RUnlock()

		if exists && !snap.IsExpired() {
			return snap, nil
		}

		fresh, err := build(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshots[key] = fresh
		c.mu.Unlock()

		return fresh, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Snapshot), nil
}

// Invalidate removes the snapshot for key, forcing the next call to rebuild.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.snapshots, key)
	c.mu.Unlock()
}
