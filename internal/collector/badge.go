// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package collector

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/modfolio/internal/models"
	"github.com/tomtom215/modfolio/internal/stats"
)

// statSet lists the badge stats of list kinds and of project kinds.
type statSet struct {
	list    []string
	project []string
}

var badgeStats = map[models.Platform]statSet{
	models.PlatformModrinth: {
		list:    []string{models.StatDownloads, models.StatProjects, models.StatFollowers},
		project: []string{models.StatDownloads, models.StatFollowers, models.StatVersions},
	},
	models.PlatformCurseForge: {
		project: []string{models.StatDownloads, models.StatVersions, models.StatRank},
	},
	models.PlatformHangar: {
		list:    []string{models.StatDownloads, models.StatProjects, models.StatStars},
		project: []string{models.StatDownloads, models.StatStars, models.StatVersions, models.StatViews},
	},
	models.PlatformSpigot: {
		list:    []string{models.StatDownloads, models.StatResources, models.StatRating},
		project: []string{models.StatDownloads, models.StatLikes, models.StatRating, models.StatVersions},
	},
}

// SupportsStat reports whether a badge for stat exists on p for kind.
func SupportsStat(p models.Platform, kind models.EntityKind, stat string) bool {
	set, ok := badgeStats[p]
	if !ok {
		return false
	}
	if kind.IsList() {
		return slices.Contains(set.list, stat)
	}
	return slices.Contains(set.project, stat)
}

// BadgeData collects the single number of a badge. List kinds look up the
// owner and its project list together, so an unknown owner fails even when
// the platform answers its list endpoint with []. Project kinds only fetch
// versions for the versions stat when the platform does not report a count.
func (c *Collector) BadgeData(ctx context.Context, p models.Platform, kind models.EntityKind, id, stat string) (*models.BadgeData, error) {
	if !SupportsStat(p, kind, stat) {
		return nil, ErrUnknownStat
	}
	client, err := c.client(p, kind)
	if err != nil {
		return nil, err
	}

	out := &models.BadgeData{Platform: p, Kind: kind, Stat: stat}

	if kind.IsList() {
		var (
			entity   models.Entity
			projects []models.Project
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			entity, err = c.entity(gctx, client, kind, id)
			return err
		})
		g.Go(func() error {
			var err error
			projects, err = c.projects(gctx, client, kind, id)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		out.Name = entity.Name

		downloads, followers := stats.Totals(projects)
		switch stat {
		case models.StatDownloads:
			out.Value = float64(downloads)
		case models.StatFollowers, models.StatStars:
			out.Value = float64(followers)
		case models.StatProjects, models.StatResources:
			out.Value = float64(len(projects))
		case models.StatRating:
			ratings := make([]float64, len(projects))
			for i := range projects {
				ratings[i] = projects[i].Rating
			}
			out.Value = stats.AverageRating(ratings)
		}
		return out, nil
	}

	entity, err := c.entity(ctx, client, kind, id)
	if err != nil {
		return nil, err
	}
	out.Name = entity.Name

	switch stat {
	case models.StatStars:
		out.Value = entity.Stat(models.StatFollowers)
	case models.StatVersions:
		out.Value = entity.Stat(models.StatVersions)
		if out.Value == 0 {
			versions, err := c.versions(ctx, client, id)
			if err != nil {
				return nil, err
			}
			out.Value = float64(len(versions))
		}
	default:
		out.Value = entity.Stat(stat)
	}
	return out, nil
}
