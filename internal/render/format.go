// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/modfolio/internal/models"
)

// FormatNumber abbreviates large counts with one decimal: 1234 → "1.2K",
// 3400000 → "3.4M". Values below 1000 are printed as integers.
func FormatNumber(n float64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(n/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(n/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(math.Trunc(n), 'f', 0, 64)
	}
}

// FormatStat formats a value for display in a badge or stat grid.
// Counts print as integers, ratings with one decimal and everything else
// through FormatNumber.
func FormatStat(key string, value float64) string {
	switch key {
	case models.StatProjects, models.StatResources, models.StatVersions,
		models.FieldProjectCount, models.FieldResourceCount, models.FieldVersionCount:
		return strconv.FormatFloat(math.Trunc(value), 'f', 0, 64)
	case models.StatRank:
		if value <= 0 {
			return "N/A"
		}
		return "#" + strconv.FormatFloat(math.Trunc(value), 'f', 0, 64)
	case models.StatRating, models.FieldAvgRating:
		return fmt.Sprintf("%.1f", value)
	default:
		return FormatNumber(value)
	}
}

// EscapeXML escapes the five XML special characters.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Truncate shortens s to max runes and appends "..." when it was cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// FormatDate renders a publish date either relative to now ("3 days ago")
// or as an absolute date ("Jan 2, 2006").
func FormatDate(t, now time.Time, relative bool) string {
	if t.IsZero() {
		return "unknown"
	}
	if relative {
		return humanize.RelTime(t, now, "ago", "from now")
	}
	return t.Format("Jan 2, 2006")
}

// formatCoord prints an SVG coordinate without trailing zeros.
func formatCoord(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
