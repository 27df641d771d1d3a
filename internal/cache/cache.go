// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package cache

import (
	"math"
	"sync"
	"time"
)

// Entry represents a cached item with its write time and expiration
type Entry struct {
	Data      interface{}
	CachedAt  time.Time
	ExpiresAt time.Time
}

// Cache provides a thread-safe in-memory cache with TTL support.
// Expired entries are removed lazily on the first read after expiry;
// there is no background sweep.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
	stats   Stats
}

// Stats tracks cache performance metrics
type Stats struct {
	mu        sync.RWMutex
	Hits      int64
	Misses    int64
	Evictions int64
	TotalKeys int64
}

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a new thread-safe in-memory cache with the given entry lifetime.
//
// Every entry written with Set lives for ttl, measured from the write. The
// server builds two instances: one for rendered artifacts (minutes scale) and
// one for metadata lookups (hour scale).
//
// Example:
//
//	cards := cache.New(10 * time.Minute)
//	cards.Set("user:jellysquid:dark:{}", svg)
//	if data, ok := cards.Get("user:jellysquid:dark:{}"); ok {
//	    // Serve cached artifact
//	}
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value from the cache by key.
//
// Returns (data, true) only while the entry is present and the current time is
// strictly before its expiry. An expired entry is deleted as part of the same
// check and counted as both a miss and an eviction.
func (c *Cache) Get(key string) (interface{}, bool) {
	entry, ok := c.lookup(key)
	if !ok {
		return nil, false
	}
	return entry.Data, true
}

// GetWithMeta is Get plus the time the entry was written.
func (c *Cache) GetWithMeta(key string) (interface{}, time.Time, bool) {
	entry, ok := c.lookup(key)
	if !ok {
		return nil, time.Time{}, false
	}
	return entry.Data, entry.CachedAt, true
}

func (c *Cache) lookup(key string) (Entry, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return Entry{}, false
	}

	if !c.now().Before(entry.ExpiresAt) {
		// Re-check under the write lock so a concurrent Set of a fresh
		// entry is never deleted by a reader holding a stale copy.
		c.mu.Lock()
		current, still := c.entries[key]
		if still && !c.now().Before(current.ExpiresAt) {
			delete(c.entries, key)
			c.mu.Unlock()
			c.recordMiss()
			c.recordEviction()
			c.updateTotalKeys()
			return Entry{}, false
		}
		c.mu.Unlock()
		if !still {
			c.recordMiss()
			return Entry{}, false
		}
		entry = current
	}

	c.recordHit()
	return entry, true
}

// Set stores a value in the cache with the TTL configured at construction.
// Overwriting an existing key resets its lifetime.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value in the cache with a custom TTL
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	now := c.now()

	c.mu.Lock()
	c.entries[key] = Entry{
		Data:      value,
		CachedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	c.mu.Unlock()

	c.updateTotalKeys()
}

// Delete removes a specific cache entry by key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if existed {
		c.recordEviction()
	}
	c.updateTotalKeys()
}

// Clear removes all entries from the cache in a single atomic operation.
func (c *Cache) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = 0
	c.stats.mu.Unlock()
}

// Size returns the number of stored entries, including expired ones that
// have not been read since they expired.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TTL returns the default entry lifetime.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// MaxAgeSeconds returns the TTL in whole seconds, rounded down, for use in
// Cache-Control max-age directives.
func (c *Cache) MaxAgeSeconds() int {
	return int(math.Floor(c.ttl.Seconds()))
}

// GetStats returns a snapshot of current cache performance statistics.
func (c *Cache) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:      c.stats.Hits,
		Misses:    c.stats.Misses,
		Evictions: c.stats.Evictions,
		TotalKeys: c.stats.TotalKeys,
	}
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (c *Cache) updateTotalKeys() {
	size := int64(c.Size())
	c.stats.mu.Lock()
	c.stats.TotalKeys = size
	c.stats.mu.Unlock()
}

// recordHit increments the hit counter
func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
}

// recordMiss increments the miss counter
func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
}

// recordEviction increments the eviction counter
func (c *Cache) recordEviction() {
	c.stats.mu.Lock()
	c.stats.Evictions++
	c.stats.mu.Unlock()
}
