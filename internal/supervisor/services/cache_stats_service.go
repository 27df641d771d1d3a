// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package services

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/metrics"
)

// Sizer reports how many entries a cache holds.
type Sizer interface {
	Size() int
}

// CacheStatsService periodically publishes cache sizes as Prometheus gauges.
// It only reads sizes; expired entries stay until a lookup removes them.
type CacheStatsService struct {
	caches   map[string]Sizer
	interval time.Duration
	publish  func(name string, size int)
	logger   zerolog.Logger
}

// NewCacheStatsService creates a reporter for the named caches. A
// non-positive interval falls back to one minute.
func NewCacheStatsService(caches map[string]Sizer, interval time.Duration) *CacheStatsService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheStatsService{
		caches:   caches,
		interval: interval,
		publish:  metrics.SetCacheEntries,
		logger:   logging.WithComponent("cache-stats"),
	}
}

// Serve implements suture.Service.
func (s *CacheStatsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.report()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *CacheStatsService) report() {
	names := make([]string, 0, len(s.caches))
	for name := range s.caches {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		size := s.caches[name].Size()
		s.publish(name, size)
		s.logger.Debug().Str("cache", name).Int("entries", size).Msg("Cache size")
	}
}

func (s *CacheStatsService) String() string {
	return "cache-stats"
}
