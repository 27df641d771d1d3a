// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestCacheBasicOperations(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	_, exists = c.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiryBoundary(t *testing.T) {
	clock := newFakeClock()
	c := New(10*time.Second, WithClock(clock.Now))

	c.Set("k", "v")

	clock.Advance(10*time.Second - time.Nanosecond)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("Expected entry to be present just before expiry")
	}

	clock.Advance(time.Nanosecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("Expected entry to be absent at expiry")
	}
	if c.Size() != 0 {
		t.Errorf("Expected expired entry to be deleted on read, size = %d", c.Size())
	}
}

func TestCacheExpiredEntryStaysUntilRead(t *testing.T) {
	clock := newFakeClock()
	c := New(time.Second, WithClock(clock.Now))

	c.Set("k", "v")
	clock.Advance(5 * time.Second)

	if c.Size() != 1 {
		t.Errorf("Expected no background sweep, size = %d", c.Size())
	}
	c.Get("k")
	if c.Size() != 0 {
		t.Errorf("Expected lazy deletion, size = %d", c.Size())
	}
}

func TestCacheOverwriteResetsTTL(t *testing.T) {
	clock := newFakeClock()
	c := New(10*time.Second, WithClock(clock.Now))

	c.Set("k", "old")
	clock.Advance(8 * time.Second)
	c.Set("k", "new")
	clock.Advance(8 * time.Second)

	value, ok := c.Get("k")
	if !ok {
		t.Fatal("Expected overwritten entry to have a fresh TTL")
	}
	if value != "new" {
		t.Errorf("Expected new, got %v", value)
	}
	if c.Size() != 1 {
		t.Errorf("Expected a single entry per key, size = %d", c.Size())
	}
}

func TestCacheGetWithMeta(t *testing.T) {
	clock := newFakeClock()
	c := New(time.Hour, WithClock(clock.Now))

	written := clock.Now()
	c.Set("meta:modrinth:user:alice", "Alice")
	clock.Advance(15 * time.Minute)

	value, cachedAt, ok := c.GetWithMeta("meta:modrinth:user:alice")
	if !ok {
		t.Fatal("Expected entry to exist")
	}
	if value != "Alice" {
		t.Errorf("Expected Alice, got %v", value)
	}
	if !cachedAt.Equal(written) {
		t.Errorf("Expected cachedAt %v, got %v", written, cachedAt)
	}

	clock.Advance(time.Hour)
	if _, _, ok := c.GetWithMeta("meta:modrinth:user:alice"); ok {
		t.Error("Expected GetWithMeta to honor expiry")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Delete("key1")

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be deleted")
	}
	if stats := c.GetStats(); stats.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestCacheClear(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	c.Clear()

	for _, key := range []string{"key1", "key2", "key3"} {
		if _, exists := c.Get(key); exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
	if c.Size() != 0 {
		t.Errorf("Expected size 0 after clear, got %d", c.Size())
	}
}

func TestCacheMaxAgeSeconds(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want int
	}{
		{"ten minutes", 10 * time.Minute, 600},
		{"one hour", time.Hour, 3600},
		{"fractional second rounds down", 1500 * time.Millisecond, 1},
		{"sub-second", 999 * time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.ttl).MaxAgeSeconds(); got != tt.want {
				t.Errorf("MaxAgeSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCacheStats(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Get("key1")
	c.Get("key1")
	c.Get("missing")

	stats := c.GetStats()
	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
	if stats.TotalKeys != 1 {
		t.Errorf("Expected 1 key, got %d", stats.TotalKeys)
	}

	rate := c.HitRate()
	if rate < 66.6 || rate > 66.7 {
		t.Errorf("Expected hit rate ~66.67%%, got %.2f", rate)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(1 * time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", n%10)
			c.Set(key, n)
			c.Get(key)
			c.GetWithMeta(key)
		}(i)
	}
	wg.Wait()

	if c.Size() != 10 {
		t.Errorf("Expected 10 keys, got %d", c.Size())
	}
}
