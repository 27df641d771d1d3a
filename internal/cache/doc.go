// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package cache provides the in-memory TTL cache and the request deduplicator
used by the card and badge handlers.

# Overview

The package provides:
  - Cache: thread-safe key/value storage with a fixed lifetime per entry
  - Lazy expiration (an entry is removed on the first read after it expires)
  - GetWithMeta for callers that report how old a cached value is
  - Deduplicator: singleflight-based coalescing of concurrent identical work
  - Key builders shared by handlers and the collector

# Instances

The server builds two caches with the same implementation:

	artifacts := cache.New(cfg.Cache.CardTTL) // rendered SVG/PNG, 10 minutes
	metadata := cache.New(cfg.Cache.MetaTTL)  // display names, 60 minutes

Both are injected into the API layer through the Cacher interface.

# Deduplication

	dedupe := cache.NewDeduplicator()
	versions, err := cache.Do(ctx, dedupe, cache.VersionsKey("modrinth", id),
	    func(ctx context.Context) ([]models.Version, error) {
	        return client.FetchVersionList(ctx, id, 100)
	    })

Concurrent callers with the same key share one producer call. Failures are
handed to every waiter and then forgotten.

# Thread Safety

Cache guards its map with sync.RWMutex. The expiry check and the delete of an
expired entry happen under the write lock, so a concurrent Set is never lost.
*/
package cache
