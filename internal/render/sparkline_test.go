// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package render

import (
	"strings"
	"testing"
	"time"
)

func TestBuildSparklineFlatWithoutDates(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := BuildSparkline(nil, now, 230, 30)

	if !strings.HasPrefix(s.Line, "M0 30 L10 30") {
		t.Errorf("Line = %q, want a flat line on the baseline", s.Line)
	}
	if got := strings.Count(s.Line, "L"); got != sparklineBuckets-1 {
		t.Errorf("Line has %d segments, want %d", got, sparklineBuckets-1)
	}
	if !strings.HasSuffix(s.Fill, "L230 30 L0 30 Z") {
		t.Errorf("Fill = %q, want it closed against the baseline", s.Fill)
	}
}

func TestBuildSparklineScalesToPeak(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		now.Add(-24 * time.Hour),
		now.Add(-time.Minute),
		now.Add(-2 * time.Minute),
		{},
	}
	s := BuildSparkline(dates, now, 230, 100)

	// One release in the first bucket, two in the last.
	if !strings.HasPrefix(s.Line, "M0 55 ") {
		t.Errorf("Line = %q, want first bucket at half the peak", s.Line)
	}
	if !strings.HasSuffix(s.Line, "L230 10") {
		t.Errorf("Line = %q, want last bucket at the peak", s.Line)
	}
}

func TestBuildSparklineSingleDate(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := BuildSparkline([]time.Time{now}, now, 230, 30)
	if got := strings.Count(s.Line, " 30"); got != sparklineBuckets {
		t.Errorf("Line = %q, want a flat line when all dates equal now", s.Line)
	}
}
