// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/modfolio/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Cache: CacheConfig{
			CardTTL:       10 * time.Minute,
			MetaTTL:       60 * time.Minute,
			StatsInterval: 30 * time.Second,
		},
		Upstream: UpstreamConfig{
			UserAgent:             "modfolio/{version} (github.com/tomtom215/modfolio)",
			Timeout:               15 * time.Second,
			MaxConcurrentRequests: 10,
			RequestsPerSecond:     10,
			Burst:                 20,
			CircuitBreaker:        true,
		},
		Modrinth: ModrinthConfig{
			APIURL:   "https://api.modrinth.com/v2",
			APIV3URL: "https://api.modrinth.com/v3",
		},
		CurseForge: CurseForgeConfig{
			APIURL: "https://api.curseforge.com",
			GameID: 432,
		},
		Hangar: HangarConfig{
			APIURL: "https://hangar.papermc.io/api/v1",
		},
		Spigot: SpigotConfig{
			APIURL:          "https://api.spiget.org/v2",
			IconFallbackURL: "https://www.spigotmc.org/data/resource_icons",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   120,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in that order of precedence, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are keys whose environment values are comma-separated lists.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config keys.
// Variables that are not listed are ignored.
var envMappings = map[string]string{
	"port":        "server.port",
	"host":        "server.host",
	"environment": "server.environment",

	"cache_ttl":            "cache.card_ttl",
	"card_cache_ttl":       "cache.card_ttl",
	"meta_cache_ttl":       "cache.meta_ttl",
	"cache_stats_interval": "cache.stats_interval",

	"user_agent":              "upstream.user_agent",
	"upstream_timeout":        "upstream.timeout",
	"max_concurrent_requests": "upstream.max_concurrent_requests",
	"upstream_rps":            "upstream.requests_per_second",
	"upstream_burst":          "upstream.burst",
	"circuit_breaker":         "upstream.circuit_breaker",

	"modrinth_api_url":    "modrinth.api_url",
	"modrinth_api_v3_url": "modrinth.api_v3_url",

	"curseforge_api_url": "curseforge.api_url",
	"curseforge_api_key": "curseforge.api_key",

	"hangar_api_url": "hangar.api_url",

	"spigot_api_url":           "spigot.api_url",
	"spigot_icon_fallback_url": "spigot.icon_fallback_url",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
