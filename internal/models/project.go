// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package models

import "time"

// Project is one project as reported by a platform, normalized across
// platforms. VersionDates and IconData are filled in by the collector for
// projects that make it into a card's top list.
type Project struct {
	ID              string      `json:"id"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Downloads       uint64      `json:"downloads"`
	Followers       uint64      `json:"followers"`
	Rating          float64     `json:"rating,omitempty"`
	DateCreated     time.Time   `json:"date_created"`
	IconURL         string      `json:"icon_url,omitempty"`
	IconFallbackURL string      `json:"-"`
	IconData        string      `json:"-"`
	Loaders         []string    `json:"loaders,omitempty"`
	ProjectType     string      `json:"project_type,omitempty"`
	GameVersions    []string    `json:"game_versions,omitempty"`
	VersionDates    []time.Time `json:"-"`
}

// Version is one published version of a project.
type Version struct {
	Number        string    `json:"version_number"`
	Name          string    `json:"name,omitempty"`
	DatePublished time.Time `json:"date_published"`
	Loaders       []string  `json:"loaders,omitempty"`
	GameVersions  []string  `json:"game_versions,omitempty"`
	Downloads     uint64    `json:"downloads"`
}

// Entity is the subject of a card: a user, organization, collection or
// author for list cards, or the project itself for project cards.
type Entity struct {
	Platform        Platform           `json:"platform"`
	Kind            EntityKind         `json:"kind"`
	ID              string             `json:"id"`
	Slug            string             `json:"slug,omitempty"`
	Name            string             `json:"name"`
	Description     string             `json:"description,omitempty"`
	IconURL         string             `json:"icon_url,omitempty"`
	IconFallbackURL string             `json:"-"`
	IconData        string             `json:"-"`
	DateCreated     time.Time          `json:"date_created,omitempty"`
	Loaders         []string           `json:"loaders,omitempty"`
	GameVersions    []string           `json:"game_versions,omitempty"`
	Stats           map[string]float64 `json:"stats,omitempty"`
}

// Stat returns a platform-reported stat, or zero when absent.
func (e *Entity) Stat(key string) float64 {
	if e == nil || e.Stats == nil {
		return 0
	}
	return e.Stats[key]
}

// AggregatedStats is the summary of an entity's project list.
type AggregatedStats struct {
	TotalDownloads  uint64      `json:"total_downloads"`
	TotalFollowers  uint64      `json:"total_followers"`
	ProjectCount    int         `json:"project_count"`
	TopProjects     []Project   `json:"top_projects"`
	AllVersionDates []time.Time `json:"-"`
}

// CardData is everything the renderer needs for one card.
type CardData struct {
	Entity Entity
	// Stats is populated for list kinds.
	Stats AggregatedStats
	// Versions holds the newest versions for project kinds.
	Versions []Version
	// VersionDates feeds the activity sparkline.
	VersionDates []time.Time
	// Values holds the numbers shown in the stat grid, keyed by Field* names.
	Values map[string]float64
}

// BadgeData is everything the renderer needs for one badge.
type BadgeData struct {
	Platform Platform
	Kind     EntityKind
	Stat     string
	Name     string
	Value    float64
}
