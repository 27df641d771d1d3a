// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package models

// Card option bounds.
const (
	DefaultListSize = 5
	MinListSize     = 1
	MaxListSize     = 50
)

// Options are the per-request rendering options of a card. Field order is
// the serialization order used in cache keys.
type Options struct {
	ShowProjects    bool   `json:"showProjects"`
	ShowVersions    bool   `json:"showVersions"`
	MaxProjects     int    `json:"maxProjects" validate:"min=1,max=50"`
	MaxVersions     int    `json:"maxVersions" validate:"min=1,max=50"`
	RelativeTime    bool   `json:"relativeTime"`
	Color           string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"backgroundColor,omitempty" validate:"omitempty,hexcolor"`
}

// DefaultOptions returns the options used when a request sets none.
func DefaultOptions() Options {
	return Options{
		ShowProjects: true,
		ShowVersions: true,
		MaxProjects:  DefaultListSize,
		MaxVersions:  DefaultListSize,
		RelativeTime: true,
	}
}

// ClampListSize bounds n to [MinListSize, MaxListSize].
func ClampListSize(n int) int {
	if n < MinListSize {
		return MinListSize
	}
	if n > MaxListSize {
		return MaxListSize
	}
	return n
}
