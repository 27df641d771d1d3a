// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package api provides the HTTP layer for Modfolio.

It serves embeddable stat cards and badges for mod-hosting platforms, small
JSON metadata lookups, health and metrics endpoints, and the API docs.

Key Components:

  - Router: chi route table and middleware stack
  - Handler: card, badge, meta and health handlers
  - ChiMiddleware: CORS (go-chi/cors) and inbound rate limiting (go-chi/httprate)
  - Error mapping: collection errors to HTTP status and error artifacts

Endpoints:

 1. Cards: /{platform}/{kind}/{id}
    - /modrinth/{user|project|organization|collection}/{id}
    - /curseforge/project/{id}
    - /hangar/{user|project}/{id}
    - /spigot/{author|resource}/{id}

 2. Badges: /{platform}/{kind}/{id}/{stat}

 3. Meta: /{platform}/meta/{kind}/{id} returns {"name": "..."}

 4. Legacy: /user/{id}, /project/{id}, /organization/{id} and
    /collection/{id} redirect permanently to /modrinth/...

 5. Operations: /health/live, /metrics, /docs/

Request Flow:

A card or badge request computes its cache key from the platform, kind,
identifier and parsed options. A hit is answered directly. A miss collects
data through the DataSource, renders it and stores the SVG; concurrent
identical misses share one render. PNG requests (format=png, or a
link-preview crawler User-Agent) look for a cached PNG, then rasterize the
cached SVG, and only render from scratch when neither exists.

Failures never surface as bare errors: the handler renders an error card or
badge of the requested media type with the mapped status and
Cache-Control: no-cache, no-store, must-revalidate.

Status Mapping:

	not found / unknown stat   404
	platform not configured    503
	upstream rate limited      429
	upstream unavailable       503
	other upstream failure     502
	anything else              500

Thread Safety:

Handler holds no per-request state. The caches and the deduplicator it
shares are safe for concurrent use.
*/
package api
