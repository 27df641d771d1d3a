// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package stats

import (
	"sort"
	"time"

	"github.com/tomtom215/modfolio/internal/models"
)

// Aggregate computes totals, the top maxTop projects by downloads and the
// flattened version dates of those top projects in one pass over records.
//
// Ties on downloads keep their input order. A maxTop larger than the input
// returns every record, sorted. The input slice is not modified.
func Aggregate(records []models.Project, maxTop int) models.AggregatedStats {
	out := AggregateBasic(records, maxTop)
	out.AllVersionDates = FlattenVersionDates(out.TopProjects)
	return out
}

// AggregateBasic is Aggregate without version-date flattening. It is used
// before the top projects have been enriched with their version history.
func AggregateBasic(records []models.Project, maxTop int) models.AggregatedStats {
	if maxTop < 0 {
		maxTop = 0
	}

	out := models.AggregatedStats{
		ProjectCount:    len(records),
		TopProjects:     make([]models.Project, 0, min(maxTop, len(records))),
		AllVersionDates: []time.Time{},
	}

	for _, p := range records {
		out.TotalDownloads += p.Downloads
		out.TotalFollowers += p.Followers
		out.TopProjects = insertTop(out.TopProjects, p, maxTop)
	}

	return out
}

// insertTop places p into top (sorted by downloads, descending) after any
// entries with equal downloads, then trims to maxTop.
func insertTop(top []models.Project, p models.Project, maxTop int) []models.Project {
	if maxTop == 0 {
		return top
	}

	pos := sort.Search(len(top), func(i int) bool {
		return top[i].Downloads < p.Downloads
	})
	if pos >= maxTop {
		return top
	}

	if len(top) < maxTop {
		top = append(top, models.Project{})
	}
	copy(top[pos+1:], top[pos:len(top)-1])
	top[pos] = p
	return top
}

// FlattenVersionDates concatenates the version dates of projects in slice
// order. Projects without version history contribute nothing.
func FlattenVersionDates(projects []models.Project) []time.Time {
	n := 0
	for i := range projects {
		n += len(projects[i].VersionDates)
	}

	dates := make([]time.Time, 0, n)
	for i := range projects {
		dates = append(dates, projects[i].VersionDates...)
	}
	return dates
}

// Totals sums downloads and followers without keeping any projects. Badges
// use it because they never show a project list.
func Totals(records []models.Project) (downloads, followers uint64) {
	for i := range records {
		downloads += records[i].Downloads
		followers += records[i].Followers
	}
	return downloads, followers
}

// LatestVersions returns the n most recently published versions, newest
// first. Versions published at the same instant keep their input order.
func LatestVersions(versions []models.Version, n int) []models.Version {
	sorted := make([]models.Version, len(versions))
	copy(sorted, versions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DatePublished.After(sorted[j].DatePublished)
	})

	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// VersionDates extracts publish dates in slice order.
func VersionDates(versions []models.Version) []time.Time {
	dates := make([]time.Time, 0, len(versions))
	for i := range versions {
		dates = append(dates, versions[i].DatePublished)
	}
	return dates
}

// AverageRating averages the positive ratings in values, ignoring zeros.
// It returns 0 when nothing is rated.
func AverageRating(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
