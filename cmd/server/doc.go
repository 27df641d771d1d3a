// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package main is the entry point for the Modfolio server.

Modfolio renders embeddable stat cards and badges for Minecraft mod authors
and projects on Modrinth, CurseForge, Hangar and Spigot. Statistics are
fetched live from each platform API, rendered to SVG (or PNG for crawlers)
and cached in memory.

# Application Architecture

	RootSupervisor ("modfolio")
	├── APISupervisor ("api-layer")
	│   └── HTTP Server (chi router)
	└── MaintenanceSupervisor ("maintenance-layer")
	    └── Cache stats reporter

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Caches: artifact cache (CARD_CACHE_TTL) and metadata cache (META_CACHE_TTL)
 4. Deduplicator: shared by the image fetcher, the collector and the handlers
 5. Platform clients: rate limited and wrapped in circuit breakers
 6. Collector and renderer
 7. Supervisor Tree: Suture v4 process supervision
 8. HTTP Server: chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	PORT=3000
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	CARD_CACHE_TTL=10m
	META_CACHE_TTL=60m

	CURSEFORGE_API_KEY=<key>     # Required for CurseForge routes
	USER_AGENT="modfolio/{version} (github.com/tomtom215/modfolio)"

	RATE_LIMIT_REQUESTS=120
	RATE_LIMIT_WINDOW=1m
	CORS_ORIGINS=*

The config file is read from CONFIG_PATH, ./config.yaml, ./config.yml or
/etc/modfolio/config.yaml, whichever exists first.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and waits up to server.shutdown_timeout (15s by
default) for in-flight renders. Services that fail to stop in time are logged and the process
exits non-zero.

# Example Usage

	export CURSEFORGE_API_KEY=your-key
	./modfolio

	curl http://localhost:3000/modrinth/project/sodium
	curl http://localhost:3000/modrinth/project/sodium/downloads?format=png
*/
package main
