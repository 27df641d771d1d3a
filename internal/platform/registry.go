// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package platform

import (
	"github.com/tomtom215/modfolio/internal/config"
	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/models"
)

// Registry resolves a platform name to its client.
type Registry struct {
	clients map[models.Platform]Client
}

// NewRegistry registers the given clients, replacing earlier ones for the
// same platform.
func NewRegistry(clients ...Client) *Registry {
	r := &Registry{clients: make(map[models.Platform]Client, len(clients))}
	for _, c := range clients {
		r.clients[c.Platform()] = c
	}
	return r
}

// NewRegistryFromConfig builds a client per configured platform. CurseForge
// is skipped when no API key is set.
func NewRegistryFromConfig(cfg *config.Config) *Registry {
	clients := []Client{
		NewModrinthClient(cfg.Modrinth, NewOptions(cfg.Upstream, "modrinth")),
		NewHangarClient(cfg.Hangar, NewOptions(cfg.Upstream, "hangar")),
		NewSpigotClient(cfg.Spigot, NewOptions(cfg.Upstream, "spigot")),
	}
	if cfg.CurseForge.Enabled() {
		clients = append(clients, NewCurseForgeClient(cfg.CurseForge, NewOptions(cfg.Upstream, "curseforge")))
	} else {
		logging.Warn().Msg("CurseForge API key not configured, CurseForge routes are disabled")
	}
	return NewRegistry(clients...)
}

// Get returns the client for p.
func (r *Registry) Get(p models.Platform) (Client, bool) {
	c, ok := r.clients[p]
	return c, ok
}
