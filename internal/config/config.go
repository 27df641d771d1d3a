// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package config

import (
	"strings"
	"time"
)

// Version is the application version reported in the upstream User-Agent.
// Overridden at build time with -ldflags "-X .../internal/config.Version=...".
var Version = "dev"

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Cache      CacheConfig      `koanf:"cache"`
	Upstream   UpstreamConfig   `koanf:"upstream"`
	Modrinth   ModrinthConfig   `koanf:"modrinth"`
	CurseForge CurseForgeConfig `koanf:"curseforge"`
	Hangar     HangarConfig     `koanf:"hangar"`
	Spigot     SpigotConfig     `koanf:"spigot"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development" or "production"
}

// CacheConfig holds lifetimes of the two in-memory caches
type CacheConfig struct {
	// CardTTL is the lifetime of rendered cards and badges.
	CardTTL time.Duration `koanf:"card_ttl"`
	// MetaTTL is the lifetime of display-name lookups.
	MetaTTL time.Duration `koanf:"meta_ttl"`
	// StatsInterval is how often cache sizes are published as metrics.
	StatsInterval time.Duration `koanf:"stats_interval"`
}

// UpstreamConfig holds settings shared by every platform client
type UpstreamConfig struct {
	// UserAgent may contain a {version} placeholder.
	UserAgent             string        `koanf:"user_agent"`
	Timeout               time.Duration `koanf:"timeout"`
	MaxConcurrentRequests int           `koanf:"max_concurrent_requests"`
	RequestsPerSecond     float64       `koanf:"requests_per_second"`
	Burst                 int           `koanf:"burst"`
	CircuitBreaker        bool          `koanf:"circuit_breaker"`
}

// ResolvedUserAgent returns UserAgent with {version} substituted.
func (u UpstreamConfig) ResolvedUserAgent() string {
	return strings.ReplaceAll(u.UserAgent, "{version}", Version)
}

// ModrinthConfig holds Modrinth API endpoints
type ModrinthConfig struct {
	APIURL   string `koanf:"api_url"`
	APIV3URL string `koanf:"api_v3_url"`
}

// CurseForgeConfig holds CurseForge API settings. CurseForge requires an API
// key; without one its routes answer with an error artifact.
type CurseForgeConfig struct {
	APIURL string `koanf:"api_url"`
	APIKey string `koanf:"api_key"`
	GameID int    `koanf:"game_id"`
}

// Enabled reports whether an API key is configured.
func (c CurseForgeConfig) Enabled() bool {
	return c.APIKey != ""
}

// HangarConfig holds Hangar API settings
type HangarConfig struct {
	APIURL string `koanf:"api_url"`
}

// SpigotConfig holds Spiget API settings
type SpigotConfig struct {
	APIURL          string `koanf:"api_url"`
	IconFallbackURL string `koanf:"icon_fallback_url"`
}

// SecurityConfig holds inbound HTTP protections
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
