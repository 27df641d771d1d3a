// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package render

import (
	"strings"
	"time"
)

// sparklineBuckets is the number of equal time slices a sparkline shows.
const sparklineBuckets = 24

// Sparkline is an activity curve as SVG path data: Line is the stroke and
// Fill closes it against the baseline.
type Sparkline struct {
	Line string
	Fill string
}

// BuildSparkline buckets release dates into equal slices between the oldest
// date and now and draws the per-slice counts into a width x height box,
// with y growing downward from the top of the box. Without dates the line
// lies flat on the baseline.
func BuildSparkline(dates []time.Time, now time.Time, width, height float64) Sparkline {
	counts := make([]int, sparklineBuckets)

	var oldest time.Time
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		if oldest.IsZero() || d.Before(oldest) {
			oldest = d
		}
	}

	if !oldest.IsZero() && now.After(oldest) {
		span := now.Sub(oldest)
		for _, d := range dates {
			if d.IsZero() || d.After(now) {
				continue
			}
			i := int(float64(d.Sub(oldest)) / float64(span) * sparklineBuckets)
			if i >= sparklineBuckets {
				i = sparklineBuckets - 1
			}
			counts[i]++
		}
	}

	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	step := width / float64(sparklineBuckets-1)
	var line strings.Builder
	for i, c := range counts {
		x := float64(i) * step
		y := height
		if peak > 0 {
			y = height - float64(c)/float64(peak)*height*0.9
		}
		if i == 0 {
			line.WriteString("M")
		} else {
			line.WriteString(" L")
		}
		line.WriteString(formatCoord(x))
		line.WriteString(" ")
		line.WriteString(formatCoord(y))
	}

	fill := line.String() + " L" + formatCoord(width) + " " + formatCoord(height) + " L0 " + formatCoord(height) + " Z"
	return Sparkline{Line: line.String(), Fill: fill}
}
