// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package models

// Platform identifies a mod-hosting service.
type Platform string

const (
	PlatformModrinth   Platform = "modrinth"
	PlatformCurseForge Platform = "curseforge"
	PlatformHangar     Platform = "hangar"
	PlatformSpigot     Platform = "spigot"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformModrinth, PlatformCurseForge, PlatformHangar, PlatformSpigot}

// EntityKind is the kind of thing a card describes.
type EntityKind string

const (
	KindUser         EntityKind = "user"
	KindProject      EntityKind = "project"
	KindOrganization EntityKind = "organization"
	KindCollection   EntityKind = "collection"
	// KindAuthor and KindResource are Spigot's names for user and project.
	KindAuthor   EntityKind = "author"
	KindResource EntityKind = "resource"
)

// IsList reports whether the entity owns a list of projects (user,
// organization, collection, author) rather than being a project itself.
func (k EntityKind) IsList() bool {
	switch k {
	case KindUser, KindOrganization, KindCollection, KindAuthor:
		return true
	default:
		return false
	}
}

// Stat value keys shared by platform clients, the collector and the renderer.
const (
	StatDownloads = "downloads"
	StatFollowers = "followers"
	StatProjects  = "projects"
	StatVersions  = "versions"
	StatRank      = "rank"
	StatLikes     = "likes"
	StatRating    = "rating"
	StatViews     = "views"
	StatStars     = "stars"
	StatResources = "resources"
)

// Card fields are the keys of CardData.Values, one per number a card can show.
const (
	FieldDownloads      = "downloads"
	FieldFollowers      = "followers"
	FieldVersionCount   = "versionCount"
	FieldRank           = "rank"
	FieldStars          = "stars"
	FieldLikes          = "likes"
	FieldRating         = "rating"
	FieldViews          = "views"
	FieldTotalDownloads = "totalDownloads"
	FieldTotalFollowers = "totalFollowers"
	FieldTotalStars     = "totalStars"
	FieldProjectCount   = "projectCount"
	FieldResourceCount  = "resourceCount"
	FieldAvgRating      = "avgRating"
)
