// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package services provides suture.Service implementations for Modfolio.

Each service implements:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so suture can name it in its event log.

# Available Services

HTTPServerService wraps *http.Server. ListenAndServe runs in a goroutine and
context cancellation triggers Shutdown with a bounded timeout.

CacheStatsService publishes the entry count of each named cache to the
cache_entries gauge on a fixed interval. It never removes entries;
the caches expire lazily on lookup.

# Usage

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(services.NewCacheStatsService(map[string]services.Sizer{
	    "artifact": cardCache,
	    "meta":     metaCache,
	}, cfg.Cache.StatsInterval))
*/
package services
