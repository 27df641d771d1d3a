// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package config loads and validates Modfolio's configuration.

# Sources

Configuration is layered with koanf, later sources overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. YAML file from CONFIG_PATH, ./config.yaml or /etc/modfolio/config.yaml
 3. Environment variables

# Environment Variables

	PORT, HOST                        listener address
	CACHE_TTL, META_CACHE_TTL         cache lifetimes (Go durations, e.g. 10m)
	USER_AGENT                        upstream User-Agent, {version} is substituted
	MAX_CONCURRENT_REQUESTS           fan-out limit for per-project fetches
	UPSTREAM_TIMEOUT, UPSTREAM_RPS    upstream request timeout and rate
	MODRINTH_API_URL, MODRINTH_API_V3_URL
	CURSEFORGE_API_URL, CURSEFORGE_API_KEY
	HANGAR_API_URL
	SPIGOT_API_URL, SPIGOT_ICON_FALLBACK_URL
	CORS_ORIGINS                      comma-separated
	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example YAML

	server:
	  port: 3000
	cache:
	  card_ttl: 10m
	  meta_ttl: 1h
	curseforge:
	  api_key: "$2a$10$..."
*/
package config
