// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package collector

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/modfolio/internal/cache"
	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/models"
	"github.com/tomtom215/modfolio/internal/platform"
)

// DefaultConcurrency caps auxiliary fetches per card when none is configured.
const DefaultConcurrency = 10

var (
	// ErrPlatformDisabled is returned for a known platform that has no
	// client, such as CurseForge without an API key.
	ErrPlatformDisabled = errors.New("platform is not configured")

	// ErrUnknownStat is returned for a badge stat the platform and kind do
	// not offer. It wraps platform.ErrNotFound.
	ErrUnknownStat = fmt.Errorf("unknown badge stat: %w", platform.ErrNotFound)
)

// IconSource turns icon URLs into embeddable data URIs. It returns "" when
// neither URL yields an image.
type IconSource interface {
	FetchWithFallback(ctx context.Context, primary, fallback string, convertToPNG bool) string
}

// Collector gathers everything one card or badge needs from a platform.
// Entity, project list and version lookups are coalesced across concurrent
// requests through the shared Deduplicator.
type Collector struct {
	registry    *platform.Registry
	dedupe      *cache.Deduplicator
	icons       IconSource
	concurrency int
}

// New creates a Collector. concurrency bounds the per-card fan-out of
// version and icon fetches.
func New(registry *platform.Registry, dedupe *cache.Deduplicator, icons IconSource, concurrency int) *Collector {
	if dedupe == nil {
		dedupe = cache.NewDeduplicator()
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Collector{
		registry:    registry,
		dedupe:      dedupe,
		icons:       icons,
		concurrency: concurrency,
	}
}

// Meta returns the display name of an entity.
func (c *Collector) Meta(ctx context.Context, p models.Platform, kind models.EntityKind, id string) (string, error) {
	client, err := c.client(p, kind)
	if err != nil {
		return "", err
	}
	entity, err := c.entity(ctx, client, kind, id)
	if err != nil {
		return "", err
	}
	return entity.Name, nil
}

func (c *Collector) client(p models.Platform, kind models.EntityKind) (platform.Client, error) {
	client, ok := c.registry.Get(p)
	if !ok {
		for _, known := range models.Platforms {
			if known == p {
				return nil, fmt.Errorf("%s: %w", p, ErrPlatformDisabled)
			}
		}
		return nil, fmt.Errorf("unknown platform %q: %w", p, platform.ErrNotFound)
	}
	if !client.Supports(kind) {
		return nil, fmt.Errorf("%s has no %s pages: %w", p, kind, platform.ErrNotFound)
	}
	return client, nil
}

// entity returns a copy of the entity so callers may fill in per-request
// fields such as IconData.
func (c *Collector) entity(ctx context.Context, client platform.Client, kind models.EntityKind, id string) (models.Entity, error) {
	key := cache.EntityKey(string(client.Platform()), string(kind), id)
	e, err := cache.Do(ctx, c.dedupe, key, func(ctx context.Context) (*models.Entity, error) {
		return client.FetchEntity(ctx, kind, id)
	})
	if err != nil {
		return models.Entity{}, err
	}
	if e == nil {
		return models.Entity{}, platform.ErrNotFound
	}
	return *e, nil
}

// projects returns the full project list of a list entity. The slice is
// shared between coalesced callers and must not be modified.
func (c *Collector) projects(ctx context.Context, client platform.Client, kind models.EntityKind, id string) ([]models.Project, error) {
	key := cache.ProjectsKey(string(client.Platform()), string(kind), id)
	return cache.Do(ctx, c.dedupe, key, func(ctx context.Context) ([]models.Project, error) {
		return client.FetchProjectList(ctx, kind, id, 0)
	})
}

// versions returns every version of a project, newest first. The slice is
// shared between coalesced callers and must not be modified.
func (c *Collector) versions(ctx context.Context, client platform.Client, projectID string) ([]models.Version, error) {
	key := cache.VersionsKey(string(client.Platform()), projectID)
	return cache.Do(ctx, c.dedupe, key, func(ctx context.Context) ([]models.Version, error) {
		return client.FetchVersionList(ctx, projectID, 0)
	})
}

// versionsOrEmpty is versions for auxiliary lookups: a failure is logged
// and yields an empty list.
func (c *Collector) versionsOrEmpty(ctx context.Context, client platform.Client, projectID string) []models.Version {
	versions, err := c.versions(ctx, client, projectID)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("platform", string(client.Platform())).
			Str("project", projectID).
			Msg("Failed to fetch versions")
		return nil
	}
	return versions
}

func (c *Collector) icon(ctx context.Context, primary, fallback string, png bool) string {
	if c.icons == nil || (primary == "" && fallback == "") {
		return ""
	}
	return c.icons.FetchWithFallback(ctx, primary, fallback, png)
}
