// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package render

import (
	"strings"

	"github.com/tomtom215/modfolio/internal/models"
)

// StatField is one cell of a card's stat grid.
type StatField struct {
	Label string
	Field string
}

// Style holds everything that differs between platforms on a card.
type Style struct {
	Platform     models.Platform
	Name         string
	DefaultColor string
	// Glyph is the platform mark as SVG markup on a 24x24 grid; %[1]s is the fill color.
	Glyph string

	Fields map[models.EntityKind][]StatField
	// StatLabels names each badge stat.
	StatLabels map[string]string

	LatestVersionsLabel string
	TopProjectsLabel    string
	NotFound            map[models.EntityKind]string
}

var listFields = []StatField{
	{"Downloads", models.FieldTotalDownloads},
	{"Followers", models.FieldTotalFollowers},
	{"Projects", models.FieldProjectCount},
}

var styles = map[models.Platform]*Style{
	models.PlatformModrinth: {
		Platform:     models.PlatformModrinth,
		Name:         "Modrinth",
		DefaultColor: "#1bd96a",
		Glyph:        `<path d="M12 2 L21 7 L21 17 L12 22 L3 17 L3 7 Z M12 7 L16 9.5 L16 14.5 L12 17 L8 14.5 L8 9.5 Z" fill="%[1]s" fill-rule="evenodd"/>`,
		Fields: map[models.EntityKind][]StatField{
			models.KindProject: {
				{"Downloads", models.FieldDownloads},
				{"Followers", models.FieldFollowers},
				{"Versions", models.FieldVersionCount},
			},
			models.KindUser:         listFields,
			models.KindOrganization: listFields,
			models.KindCollection:   listFields,
		},
		StatLabels: map[string]string{
			models.StatDownloads: "Downloads",
			models.StatFollowers: "Followers",
			models.StatVersions:  "Versions",
			models.StatProjects:  "Projects",
		},
		LatestVersionsLabel: "Latest Versions",
		TopProjectsLabel:    "Top Projects",
		NotFound: map[models.EntityKind]string{
			models.KindProject:      "Project not found",
			models.KindUser:         "User not found",
			models.KindOrganization: "Organization not found",
			models.KindCollection:   "Collection not found",
		},
	},
	models.PlatformCurseForge: {
		Platform:     models.PlatformCurseForge,
		Name:         "CurseForge",
		DefaultColor: "#F16436",
		Glyph:        `<path d="M2 8 H22 L19 12 H15 L17 18 H7 L9 12 H5 Z" fill="%[1]s"/>`,
		Fields: map[models.EntityKind][]StatField{
			models.KindProject: {
				{"Downloads", models.FieldDownloads},
				{"Files", models.FieldVersionCount},
				{"Rank", models.FieldRank},
			},
		},
		StatLabels: map[string]string{
			models.StatDownloads: "Downloads",
			models.StatVersions:  "Files",
			models.StatRank:      "Rank",
		},
		LatestVersionsLabel: "Latest Files",
		TopProjectsLabel:    "Top Projects",
		NotFound: map[models.EntityKind]string{
			models.KindProject: "Project not found",
		},
	},
	models.PlatformHangar: {
		Platform:     models.PlatformHangar,
		Name:         "Hangar",
		DefaultColor: "#3371ED",
		Glyph:        `<path d="M3 21 V10 L12 3 L21 10 V21 H16 V14 H8 V21 Z" fill="%[1]s"/>`,
		Fields: map[models.EntityKind][]StatField{
			models.KindProject: {
				{"Downloads", models.FieldDownloads},
				{"Stars", models.FieldStars},
				{"Versions", models.FieldVersionCount},
			},
			models.KindUser: {
				{"Downloads", models.FieldTotalDownloads},
				{"Stars", models.FieldTotalStars},
				{"Projects", models.FieldProjectCount},
			},
		},
		StatLabels: map[string]string{
			models.StatDownloads: "Downloads",
			models.StatStars:     "Stars",
			models.StatVersions:  "Versions",
			models.StatViews:     "Views",
			models.StatProjects:  "Projects",
		},
		LatestVersionsLabel: "Latest Versions",
		TopProjectsLabel:    "Top Projects",
		NotFound: map[models.EntityKind]string{
			models.KindProject: "Project not found",
			models.KindUser:    "User not found",
		},
	},
	models.PlatformSpigot: {
		Platform:     models.PlatformSpigot,
		Name:         "Spigot",
		DefaultColor: "#E8A838",
		Glyph:        `<path d="M4 5 H14 V9 H21 V13 H14 V15 H9 V9 H4 Z M10.5 17 H12.5 L11.5 21 Z" fill="%[1]s"/>`,
		Fields: map[models.EntityKind][]StatField{
			models.KindResource: {
				{"Downloads", models.FieldDownloads},
				{"Likes", models.FieldLikes},
				{"Rating", models.FieldRating},
			},
			models.KindAuthor: {
				{"Downloads", models.FieldTotalDownloads},
				{"Resources", models.FieldResourceCount},
				{"Rating", models.FieldAvgRating},
			},
		},
		StatLabels: map[string]string{
			models.StatDownloads: "Downloads",
			models.StatLikes:     "Likes",
			models.StatRating:    "Rating",
			models.StatVersions:  "Versions",
			models.StatResources: "Resources",
		},
		LatestVersionsLabel: "Latest Versions",
		TopProjectsLabel:    "Top Resources",
		NotFound: map[models.EntityKind]string{
			models.KindResource: "Resource not found",
			models.KindAuthor:   "Author not found",
		},
	},
}

// StyleFor returns the style of p, falling back to Modrinth for unknown
// platforms.
func StyleFor(p models.Platform) *Style {
	if s, ok := styles[p]; ok {
		return s
	}
	return styles[models.PlatformModrinth]
}

// NotFoundMessage returns the message shown on a not-found card.
func NotFoundMessage(p models.Platform, kind models.EntityKind) string {
	if s, ok := styles[p]; ok {
		if msg, ok := s.NotFound[kind]; ok {
			return msg
		}
	}
	return "Resource not found"
}

// StatLabel returns the badge label for stat on p.
func StatLabel(p models.Platform, stat string) string {
	if label, ok := StyleFor(p).StatLabels[stat]; ok {
		return label
	}
	if stat == "" {
		return stat
	}
	return strings.ToUpper(stat[:1]) + stat[1:]
}

// loaderColors are the brand colors of mod and plugin loaders.
var loaderColors = map[string]string{
	"fabric":        "#8a7b71",
	"quilt":         "#8b61b4",
	"forge":         "#5b6197",
	"neoforge":      "#dc895c",
	"liteloader":    "#4c90de",
	"bukkit":        "#e78362",
	"bungeecord":    "#c69e39",
	"folia":         "#6aa54f",
	"paper":         "#e67e7e",
	"purpur":        "#7763a3",
	"spigot":        "#cd7a21",
	"velocity":      "#4b98b0",
	"waterfall":     "#5f83cb",
	"sponge":        "#c49528",
	"ornithe":       "#6097ca",
	"bta-babric":    "#5ba938",
	"legacy-fabric": "#6879f6",
	"nilloader":     "#dd5088",
	"minecraft":     "#62C940",
}

// LoaderColor returns the brand color of a loader, or a neutral gray.
func LoaderColor(loader string) string {
	if c, ok := loaderColors[strings.ToLower(loader)]; ok {
		return c
	}
	return "#8b949e"
}
