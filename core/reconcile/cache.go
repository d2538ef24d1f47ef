package reconcile

import (
	"context"
	"sync"
	"time"

	"particle-audit/core/tables"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TableCache holds a loaded table pair for repeated reconciliation.
type TableCache struct {
	// Tables is the loaded simulation/reference pair.
	Tables *tables.Pair

	// Built is the timestamp when this cache was built.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *TableCache) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// cacheStore holds all table caches keyed by spec cache key.
type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*TableCache
	sf     singleflight.Group
}

// globalCacheStore is the singleton cache store for all reconcile operations.
var globalCacheStore = &cacheStore{
	caches: make(map[string]*TableCache),
}

// BuildCache loads both tables for the given spec.
// This function does NOT store the cache; use GetOrBuildCache for that.
func BuildCache(ctx context.Context, spec *Spec, logger *zap.Logger) (*TableCache, error) {
	pair, err := tables.Load(ctx, spec.Source, spec.Tables, logger)
	if err != nil {
		return nil, err
	}

	return &TableCache{
		Tables: pair,
		Built:  time.Now(),
		TTL:    spec.CacheTTL,
	}, nil
}

// GetOrBuildCache retrieves a cache for the given spec from the store,
// or builds a new one if it doesn't exist or has expired.
// Uses singleflight so concurrent callers share a single load.
func GetOrBuildCache(ctx context.Context, spec *Spec, logger *zap.Logger) (*TableCache, error) {
	cacheKey := spec.CacheKey()

	globalCacheStore.mu.RLock()
	cache, exists := globalCacheStore.caches[cacheKey]
	globalCacheStore.mu.RUnlock()

	if exists && !cache.IsExpired() {
		return cache, nil
	}

	result, err, _ := globalCacheStore.sf.Do(cacheKey, func() (interface{}, error) {
		// Another caller may have finished loading while we waited.
		globalCacheStore.mu.RLock()
		cache, exists := globalCacheStore.caches[cacheKey]
		globalCacheStore.mu.RUnlock()

		if exists && !cache.IsExpired() {
			return cache, nil
		}

		newCache, err := BuildCache(ctx, spec, logger)
		if err != nil {
			return nil, err
		}

		globalCacheStore.mu.Lock()
		globalCacheStore.caches[cacheKey] = newCache
		globalCacheStore.mu.Unlock()

		return newCache, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*TableCache), nil
}

// InvalidateCache removes the cache for the given spec from the store.
// The next GetOrBuildCache call re-reads both tables.
func InvalidateCache(spec *Spec) {
	cacheKey := spec.CacheKey()

	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, cacheKey)
	globalCacheStore.mu.Unlock()
}
