// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Cache.CardTTL != 10*time.Minute {
		t.Errorf("Cache.CardTTL = %v, want 10m", cfg.Cache.CardTTL)
	}
	if cfg.Cache.MetaTTL != time.Hour {
		t.Errorf("Cache.MetaTTL = %v, want 1h", cfg.Cache.MetaTTL)
	}
	if cfg.Upstream.MaxConcurrentRequests != 10 {
		t.Errorf("Upstream.MaxConcurrentRequests = %d, want 10", cfg.Upstream.MaxConcurrentRequests)
	}
	if cfg.CurseForge.GameID != 432 {
		t.Errorf("CurseForge.GameID = %d, want 432", cfg.CurseForge.GameID)
	}
	if cfg.CurseForge.Enabled() {
		t.Error("CurseForge should be disabled without an API key")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Modrinth.APIURL != "https://api.modrinth.com/v2" {
		t.Errorf("Modrinth.APIURL = %q", cfg.Modrinth.APIURL)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PORT", "8080")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("META_CACHE_TTL", "2h")
	t.Setenv("CURSEFORGE_API_KEY", "secret")
	t.Setenv("MAX_CONCURRENT_REQUESTS", "4")
	t.Setenv("CORS_ORIGINS", "https://example.com, https://docs.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Cache.CardTTL != 5*time.Minute {
		t.Errorf("Cache.CardTTL = %v, want 5m", cfg.Cache.CardTTL)
	}
	if cfg.Cache.MetaTTL != 2*time.Hour {
		t.Errorf("Cache.MetaTTL = %v, want 2h", cfg.Cache.MetaTTL)
	}
	if !cfg.CurseForge.Enabled() {
		t.Error("CurseForge should be enabled with an API key")
	}
	if cfg.Upstream.MaxConcurrentRequests != 4 {
		t.Errorf("MaxConcurrentRequests = %d, want 4", cfg.Upstream.MaxConcurrentRequests)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://docs.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 4000
hangar:
  api_url: https://hangar.example.com/api/v1
upstream:
  user_agent: "custom/{version}"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("PORT", "4500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 4500 {
		t.Errorf("environment should override file, Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Hangar.APIURL != "https://hangar.example.com/api/v1" {
		t.Errorf("Hangar.APIURL = %q", cfg.Hangar.APIURL)
	}
	if got := cfg.Upstream.ResolvedUserAgent(); got != "custom/"+Version {
		t.Errorf("ResolvedUserAgent() = %q", got)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"PORT", "server.port"},
		{"MODRINTH_API_URL", "modrinth.api_url"},
		{"curseforge_api_key", "curseforge.api_key"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
