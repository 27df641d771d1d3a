// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package cache

import "time"

// Cacher defines the interface the HTTP handlers depend on. The artifact
// cache and the metadata cache are both *Cache values with different TTLs,
// injected through this interface so tests can substitute their own.
type Cacher interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found and not expired.
	Get(key string) (interface{}, bool)

	// GetWithMeta is Get plus the time the entry was written.
	GetWithMeta(key string) (interface{}, time.Time, bool)

	// Set stores a value in the cache with the default TTL.
	Set(key string, value interface{})

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all entries from the cache.
	Clear()

	// Size returns the number of stored entries.
	Size() int

	// MaxAgeSeconds returns the default TTL in whole seconds.
	MaxAgeSeconds() int

	// GetStats returns cache statistics.
	GetStats() Stats

	// HitRate returns the cache hit rate as a percentage.
	HitRate() float64
}

// Verify interface implementations at compile time
var _ Cacher = (*Cache)(nil)
