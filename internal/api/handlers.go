// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"context"
	"time"

	"github.com/tomtom215/modfolio/internal/cache"
	"github.com/tomtom215/modfolio/internal/models"
)

// DataSource collects what a card, badge or meta lookup shows.
// *collector.Collector is the production implementation.
type DataSource interface {
	CardData(ctx context.Context, p models.Platform, kind models.EntityKind, id string, opts models.Options, png bool) (*models.CardData, error)
	BadgeData(ctx context.Context, p models.Platform, kind models.EntityKind, id, stat string) (*models.BadgeData, error)
	Meta(ctx context.Context, p models.Platform, kind models.EntityKind, id string) (string, error)
}

// Renderer draws artifacts. *render.Renderer is the production
// implementation.
type Renderer interface {
	Card(data *models.CardData, theme string, opts models.Options) (string, error)
	StatBadge(data *models.BadgeData, color string) (string, error)
	ErrorCard(message, theme string) string
	ErrorBadge(message string) string
	PNG(svg string) ([]byte, error)
}

// Handler serves cards, badges and metadata.
type Handler struct {
	data      DataSource
	renderer  Renderer
	cards     cache.Cacher
	meta      cache.Cacher
	dedupe    *cache.Deduplicator
	startTime time.Time
}

// NewHandler creates a Handler. cards holds rendered artifacts and meta
// holds display-name lookups; dedupe coalesces identical concurrent misses.
func NewHandler(data DataSource, renderer Renderer, cards, meta cache.Cacher, dedupe *cache.Deduplicator) *Handler {
	if dedupe == nil {
		dedupe = cache.NewDeduplicator()
	}
	return &Handler{
		data:      data,
		renderer:  renderer,
		cards:     cards,
		meta:      meta,
		dedupe:    dedupe,
		startTime: time.Now(),
	}
}
