// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package cache

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// PNGSuffix is appended to an artifact key to store the rasterized variant.
const PNGSuffix = ":png"

// CardKey builds the artifact cache key for a card:
// {platform}:{kind}:{identifier}:{theme}:{json(options)}.
// Options are serialized in struct field order so equal options always
// produce equal keys.
func CardKey(platform, kind, identifier, theme string, options interface{}) string {
	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Sprintf("%s:%s:%s:%s:%v", platform, kind, identifier, theme, options)
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s", platform, kind, identifier, theme, data)
}

// PNGKey returns the key of the PNG variant stored next to an SVG artifact.
func PNGKey(key string) string {
	return key + PNGSuffix
}

// BadgeKey builds the artifact cache key for a badge.
func BadgeKey(platform, kind, stat, identifier, color string) string {
	return fmt.Sprintf("badge:%s:%s:%s:%s:%s", platform, kind, stat, identifier, color)
}

// MetaKey builds the metadata cache key for a display-name lookup.
func MetaKey(platform, kind, identifier string) string {
	return fmt.Sprintf("meta:%s:%s:%s", platform, kind, identifier)
}

// ImageKey is the dedupe key for an image fetch. The PNG flag is always part
// of the key because the two variants produce different payloads.
func ImageKey(url string, convertToPNG bool) string {
	return "image:" + url + ":" + strconv.FormatBool(convertToPNG)
}

// VersionsKey is the dedupe key for a project's version list.
func VersionsKey(platform, projectID string) string {
	return fmt.Sprintf("versions:%s:%s", platform, projectID)
}

// EntityKey is the dedupe key for an entity lookup.
func EntityKey(platform, kind, identifier string) string {
	return fmt.Sprintf("entity:%s:%s:%s", platform, kind, identifier)
}

// ProjectsKey is the dedupe key for an entity's project list.
func ProjectsKey(platform, kind, identifier string) string {
	return fmt.Sprintf("projects:%s:%s:%s", platform, kind, identifier)
}

// RenderKey is the dedupe key for producing the artifact stored under key.
func RenderKey(key string) string {
	return "render:" + key
}
