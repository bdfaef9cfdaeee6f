package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-pkgz/lcw/v2"
)

// Cached wraps a store Interface with a loading cache and satisfies the Interface itself.
// Reads fill the cache through the wrapped store, writes invalidate the entry.
type Cached struct {
	store Interface
	cache lcw.LoadingCache[string]

	// readers hold it shared while loading, writers exclusively over write and invalidation,
	// so a fill loaded before a write can't land in the cache after it.
	mu sync.RWMutex
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of entries in the cache.
func NewCached(store Interface, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[string]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// Get returns the preference, loading it from the wrapped store on a cache miss.
// Misses of the wrapped store are not cached.
func (c *Cached) Get(ctx context.Context, scope, name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, err := c.cache.Get(cacheKey(scope, name), func() (string, error) {
		return c.store.Get(ctx, scope, name) //nolint:wrapcheck // ErrNotFound must pass through unwrapped
	})
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	return val, nil
}

// Set writes the preference and invalidates its cache entry.
func (c *Cached) Set(ctx context.Context, scope, name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Set(ctx, scope, name, value); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	c.invalidate(scope, name)
	return nil
}

// Delete removes the preference and invalidates its cache entry.
func (c *Cached) Delete(ctx context.Context, scope, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidate(scope, name)
	if err := c.store.Delete(ctx, scope, name); err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	return nil
}

// Close closes the cache and underlying store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}

func (c *Cached) invalidate(scope, name string) {
	key := cacheKey(scope, name)
	c.cache.Invalidate(func(k string) bool { return k == key })
}

// cacheKey joins scope and name with a byte neither can hold.
func cacheKey(scope, name string) string { return scope + "\x00" + name }
