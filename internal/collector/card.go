// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package collector

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/modfolio/internal/models"
	"github.com/tomtom215/modfolio/internal/parallel"
	"github.com/tomtom215/modfolio/internal/platform"
	"github.com/tomtom215/modfolio/internal/stats"
)

// CardData collects the data of one stat card. png selects PNG-safe icons
// for cards that will be rasterized.
//
// The entity lookup and, for list kinds, the project list decide success.
// Icons and version histories, both of a project card and of individual top
// projects, fall back to empty values.
func (c *Collector) CardData(ctx context.Context, p models.Platform, kind models.EntityKind, id string, opts models.Options, png bool) (*models.CardData, error) {
	client, err := c.client(p, kind)
	if err != nil {
		return nil, err
	}
	if kind.IsList() {
		return c.listCard(ctx, client, kind, id, opts, png)
	}
	return c.projectCard(ctx, client, kind, id, opts, png)
}

func (c *Collector) listCard(ctx context.Context, client platform.Client, kind models.EntityKind, id string, opts models.Options, png bool) (*models.CardData, error) {
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

	agg := stats.AggregateBasic(projects, opts.MaxProjects)

	// Only the projects that end up on the card are enriched.
	iconDone := make(chan string, 1)
	go func() {
		iconDone <- c.icon(ctx, entity.IconURL, entity.IconFallbackURL, png)
	}()
	agg.TopProjects = parallel.Map(ctx, agg.TopProjects, c.concurrency, func(ctx context.Context, proj models.Project) models.Project {
		proj.VersionDates = stats.VersionDates(c.versionsOrEmpty(ctx, client, proj.ID))
		proj.IconData = c.icon(ctx, proj.IconURL, proj.IconFallbackURL, png)
		return proj
	})
	entity.IconData = <-iconDone
	agg.AllVersionDates = stats.FlattenVersionDates(agg.TopProjects)

	return &models.CardData{
		Entity:       entity,
		Stats:        agg,
		VersionDates: agg.AllVersionDates,
		Values:       listValues(&entity, projects, agg),
	}, nil
}

func (c *Collector) projectCard(ctx context.Context, client platform.Client, kind models.EntityKind, id string, opts models.Options, png bool) (*models.CardData, error) {
	var (
		entity   models.Entity
		versions []models.Version
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entity, err = c.entity(gctx, client, kind, id)
		return err
	})
	g.Go(func() error {
		versions = c.versionsOrEmpty(gctx, client, id)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entity.IconData = c.icon(ctx, entity.IconURL, entity.IconFallbackURL, png)

	return &models.CardData{
		Entity:       entity,
		Versions:     stats.LatestVersions(versions, opts.MaxVersions),
		VersionDates: stats.VersionDates(versions),
		Values:       projectValues(&entity, versions),
	}, nil
}

// listValues fills the stat grid of a list card. Counts reported by the
// platform win over the length of a possibly capped project list.
func listValues(entity *models.Entity, projects []models.Project, agg models.AggregatedStats) map[string]float64 {
	count := float64(agg.ProjectCount)
	if n := entity.Stat(models.StatProjects); n > count {
		count = n
	}

	ratings := make([]float64, len(projects))
	for i := range projects {
		ratings[i] = projects[i].Rating
	}

	return map[string]float64{
		models.FieldTotalDownloads: float64(agg.TotalDownloads),
		models.FieldTotalFollowers: float64(agg.TotalFollowers),
		models.FieldTotalStars:     float64(agg.TotalFollowers),
		models.FieldProjectCount:   count,
		models.FieldResourceCount:  count,
		models.FieldAvgRating:      stats.AverageRating(ratings),
	}
}

// projectValues fills the stat grid of a project card.
func projectValues(entity *models.Entity, versions []models.Version) map[string]float64 {
	versionCount := entity.Stat(models.StatVersions)
	if n := float64(len(versions)); n > versionCount {
		versionCount = n
	}

	return map[string]float64{
		models.FieldDownloads:    entity.Stat(models.StatDownloads),
		models.FieldFollowers:    entity.Stat(models.StatFollowers),
		models.FieldStars:        entity.Stat(models.StatFollowers),
		models.FieldVersionCount: versionCount,
		models.FieldRank:         entity.Stat(models.StatRank),
		models.FieldLikes:        entity.Stat(models.StatLikes),
		models.FieldRating:       entity.Stat(models.StatRating),
		models.FieldViews:        entity.Stat(models.StatViews),
	}
}
