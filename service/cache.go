package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/NicholasMeacoe/irdpricer/curve"
	"github.com/NicholasMeacoe/irdpricer/logger"
	"github.com/NicholasMeacoe/irdpricer/marketdata"
)

// CurveCache caches parsed curve tables keyed by absolute file path.
//
// Policy (max size, TTL, enabled) is injected at construction rather than held
// in package globals, so independent service instances and tests never share
// state. Entries are invalidated when the source file's mtime changes, in
// addition to the TTL handled by the backing store.
type CurveCache struct {
	enabled bool
	maxSize int
	ttl     time.Duration
	store   *gocache.Cache

	mu        sync.Mutex
	hits      uint64
	misses    uint64
	evictions uint64
}

type cacheEntry struct {
	mtime time.Time
	crv   *curve.Curve
}

// CacheMetrics is a snapshot of cache counters and policy for observability.
type CacheMetrics struct {
	Hits       uint64 `json:"hits"`
	Misses     uint64 `json:"misses"`
	Evictions  uint64 `json:"evictions"`
	Size       int    `json:"size"`
	MaxSize    int    `json:"maxsize"`
	TTLSeconds int    `json:"ttl_seconds"`
}

// NewCurveCache builds a curve cache with the given policy.
func NewCurveCache(maxSize int, ttl time.Duration, enabled bool) *CurveCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &CurveCache{
		enabled: enabled,
		maxSize: maxSize,
		ttl:     ttl,
		store:   gocache.New(ttl, 2*ttl),
	}
}

// Load returns the parsed curve for path, from cache when fresh.
//
// Freshness requires both an unexpired entry and an unchanged file mtime.
// When the cache is disabled every call loads from disk.
func (cc *CurveCache) Load(path string, limits marketdata.Limits) (*curve.Curve, error) {
	if !cc.enabled {
		return marketdata.LoadCurveCSV(path, time.Time{}, limits)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("curve cache: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		// Delegate to the loader so the caller gets its usual error shape.
		return marketdata.LoadCurveCSV(path, time.Time{}, limits)
	}
	mtime := info.ModTime()

	cc.mu.Lock()
	if v, ok := cc.store.Get(absPath); ok {
		entry := v.(cacheEntry)
		if entry.mtime.Equal(mtime) {
			cc.hits++
			cc.mu.Unlock()
			logger.L.Debug("curve cache hit", "path", absPath)
			return entry.crv, nil
		}
		cc.store.Delete(absPath)
		logger.L.Debug("invalidated stale curve cache entry", "path", absPath)
	}
	cc.misses++
	cc.mu.Unlock()

	crv, err := marketdata.LoadCurveCSV(path, time.Time{}, limits)
	if err != nil {
		return nil, err
	}

	cc.mu.Lock()
	cc.evictOverCapacity()
	cc.store.Set(absPath, cacheEntry{mtime: mtime, crv: crv}, cc.ttl)
	cc.mu.Unlock()
	return crv, nil
}

// evictOverCapacity removes the entries closest to expiry until there is room
// for one more. Callers must hold cc.mu.
func (cc *CurveCache) evictOverCapacity() {
	for cc.store.ItemCount() >= cc.maxSize {
		var (
			oldestKey string
			oldestExp int64
		)
		for k, item := range cc.store.Items() {
			if oldestKey == "" || item.Expiration < oldestExp {
				oldestKey = k
				oldestExp = item.Expiration
			}
		}
		if oldestKey == "" {
			return
		}
		cc.store.Delete(oldestKey)
		cc.evictions++
		logger.L.Debug("evicted curve cache entry", "path", oldestKey)
	}
}

// Metrics returns a snapshot of the cache counters and policy.
func (cc *CurveCache) Metrics() CacheMetrics {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return CacheMetrics{
		Hits:       cc.hits,
		Misses:     cc.misses,
		Evictions:  cc.evictions,
		Size:       cc.store.ItemCount(),
		MaxSize:    cc.maxSize,
		TTLSeconds: int(cc.ttl / time.Second),
	}
}
