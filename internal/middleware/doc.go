// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Compression: Gzip compression for SVG, JSON and text responses
  - Prometheus Metrics: HTTP request/response instrumentation

Both use the http.HandlerFunc signature; the api package adapts them to
chi's func(http.Handler) http.Handler.

Compression Details:

The decision to compress is made when the handler writes its header, so it
follows the Content-Type the handler chose:
  - image/svg+xml, application/json and text/* are compressed
  - image/png is passed through untouched
  - Vary: Accept-Encoding is always added so shared caches keep both variants

Metrics Details:

Requests are labeled by the chi route pattern, for example
"/modrinth/project/{id}", never by the raw path. Requests that match no route
share the "unmatched" label.

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
