// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

// @title Modfolio API
// @version 1.0
// @description Embeddable SVG and PNG stat cards and badges for Modrinth, CurseForge, Hangar and Spigot.
// @description
// @description ## Artifacts
// @description
// @description Card and badge endpoints answer with `image/svg+xml`. Add `format=png`, or request
// @description from a known crawler User-Agent, to receive `image/png` instead.
// @description
// @description Failures are rendered as error cards or error badges so that embeds never break.
// @description The HTTP status still reflects the failure (404, 429, 502, 503, 500) and error
// @description artifacts are never cached.
// @description
// @description ## Caching
// @description
// @description Successful artifacts are cached for 10 minutes and display names for 60 minutes.
// @description Responses carry `Cache-Control: public, max-age=<seconds>`.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 120 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description JSON endpoints report errors in this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Not Found"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-01T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/modfolio/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @tag.name Cards
// @tag.description Stat cards for users, projects, organizations, collections, authors and resources
//
// @tag.name Badges
// @tag.description Single-statistic badges
//
// @tag.name Meta
// @tag.description Display-name lookups used by embed previews
//
// @tag.name Core
// @tag.description Health checks
package main
