// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package cache

import "testing"

type keyOptions struct {
	MaxProjects int    `json:"maxProjects"`
	Color       string `json:"color"`
}

func TestCardKey(t *testing.T) {
	got := CardKey("modrinth", "user", "jellysquid", "dark", keyOptions{MaxProjects: 5, Color: "#ff0000"})
	want := `modrinth:user:jellysquid:dark:{"maxProjects":5,"color":"#ff0000"}`
	if got != want {
		t.Errorf("CardKey() = %q, want %q", got, want)
	}

	if PNGKey(got) != want+":png" {
		t.Errorf("PNGKey() = %q", PNGKey(got))
	}
}

func TestCardKeyDistinguishesOptions(t *testing.T) {
	a := CardKey("modrinth", "project", "sodium", "dark", keyOptions{MaxProjects: 3})
	b := CardKey("modrinth", "project", "sodium", "dark", keyOptions{MaxProjects: 4})
	c := CardKey("modrinth", "project", "sodium", "light", keyOptions{MaxProjects: 3})

	if a == b || a == c {
		t.Errorf("Expected distinct keys, got %q %q %q", a, b, c)
	}
}

func TestAuxiliaryKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"image png", ImageKey("https://cdn/a.webp", true), "image:https://cdn/a.webp:true"},
		{"image svg", ImageKey("https://cdn/a.webp", false), "image:https://cdn/a.webp:false"},
		{"versions", VersionsKey("hangar", "ViaVersion"), "versions:hangar:ViaVersion"},
		{"badge", BadgeKey("modrinth", "user", "downloads", "alice", "#1bd96a"), "badge:modrinth:user:downloads:alice:#1bd96a"},
		{"meta", MetaKey("spigot", "author", "42"), "meta:spigot:author:42"},
		{"entity", EntityKey("curseforge", "project", "238222"), "entity:curseforge:project:238222"},
		{"projects", ProjectsKey("modrinth", "organization", "caffeinemc"), "projects:modrinth:organization:caffeinemc"},
		{"render", RenderKey("badge:hangar:user:stars:kenny:"), "render:badge:hangar:user:stars:kenny:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
