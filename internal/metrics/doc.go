// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Cards and badges served, by source (cache, rendered, error)
  - SVG and PNG render time
  - Artifact and metadata cache hit rates and sizes
  - Request deduplication effectiveness
  - Platform API latency and status codes
  - Circuit breaker state transitions

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:3000/metrics

# Example Queries

Artifact cache hit rate:

	sum(rate(cache_hits_total{cache="artifact"}[5m]))
	  / (sum(rate(cache_hits_total{cache="artifact"}[5m])) + sum(rate(cache_misses_total{cache="artifact"}[5m])))

Upstream error ratio per platform:

	sum by (platform) (rate(upstream_requests_total{status_code!~"2.."}[5m]))
	  / sum by (platform) (rate(upstream_requests_total[5m]))

Requests saved by deduplication:

	rate(dedupe_shared_results_total[5m])

# Thread Safety

All collectors are registered once at package init via promauto and are
safe for concurrent use.
*/
package metrics
