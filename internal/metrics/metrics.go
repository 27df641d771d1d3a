// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Artifact Metrics
	ArtifactsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artifacts_served_total",
			Help: "Total number of cards and badges served",
		},
		[]string{"platform", "artifact", "format", "source"}, // source: "cache", "rendered", "error"
	)

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "render_duration_seconds",
			Help:    "Time spent rendering SVG or rasterizing PNG",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"format"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"}, // "artifact", "meta"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of stored cache entries, including expired entries not yet read",
		},
		[]string{"cache"},
	)

	// Deduplication Metrics
	DedupeExecutions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dedupe_executions_total",
			Help: "Total number of producer calls started by the request deduplicator",
		},
	)

	DedupeShared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dedupe_shared_results_total",
			Help: "Total number of callers that received a result shared with other callers",
		},
	)

	// Upstream Metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests sent to platform APIs",
		},
		[]string{"platform", "status_code"}, // status_code "error" for transport failures
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Platform API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"platform"},
	)

	ImageFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_fetches_total",
			Help: "Total number of icon and avatar fetches",
		},
		[]string{"result"}, // "success", "failure", "converted"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordArtifact records one served card or badge.
func RecordArtifact(platform, artifact, format, source string) {
	ArtifactsServed.WithLabelValues(platform, artifact, format, source).Inc()
}

// RecordRender records how long producing one SVG or PNG took.
func RecordRender(format string, duration time.Duration) {
	RenderDuration.WithLabelValues(format).Observe(duration.Seconds())
}

// RecordCacheLookup records a hit or miss against the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}

// SetCacheEntries publishes the current size of the named cache.
func SetCacheEntries(cache string, size int) {
	CacheEntries.WithLabelValues(cache).Set(float64(size))
}

// RecordUpstreamRequest records one platform API call. A statusCode of 0
// means the request never got a response.
func RecordUpstreamRequest(platform string, statusCode int, duration time.Duration) {
	code := "error"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	UpstreamRequests.WithLabelValues(platform, code).Inc()
	UpstreamDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

// RecordImageFetch records the outcome of an icon fetch.
func RecordImageFetch(result string) {
	ImageFetches.WithLabelValues(result).Inc()
}

// RecordDedupeExecution counts a producer call started by the deduplicator.
func RecordDedupeExecution(string) {
	DedupeExecutions.Inc()
}

// RecordDedupeShared counts a caller that received a shared result.
func RecordDedupeShared(string) {
	DedupeShared.Inc()
}
