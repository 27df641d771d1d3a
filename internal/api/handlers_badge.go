// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/modfolio/internal/cache"
	"github.com/tomtom215/modfolio/internal/collector"
	"github.com/tomtom215/modfolio/internal/models"
)

// Badge returns the handler for single-stat badges of kind on p.
//
// @Summary Get a stat badge
// @Description Renders a label/value SVG badge for one statistic. Unknown stats answer with a 404 error badge.
// @Tags Badges
// @Produce image/svg+xml
// @Produce image/png
// @Param platform path string true "Platform" Enums(modrinth, curseforge, hangar, spigot)
// @Param kind path string true "Entity kind" Enums(user, project, organization, collection, author, resource)
// @Param id path string true "Identifier or slug"
// @Param stat path string true "Statistic" Enums(downloads, followers, projects, versions, rank, stars, views, likes, rating, resources)
// @Param color query string false "Value background color as hex"
// @Param format query string false "Force PNG output" Enums(png)
// @Success 200 {file} file "Rendered badge"
// @Failure 404 {file} file "Error badge"
// @Router /{platform}/{kind}/{id}/{stat} [get]
func (h *Handler) Badge(p models.Platform, kind models.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		stat := chi.URLParam(r, "stat")
		color := parseColor(r.URL.Query().Get("color"))

		req := artifactRequest{
			platform: p,
			kind:     kind,
			id:       id,
			artifact: "badge",
			key:      cache.BadgeKey(string(p), string(kind), stat, id, color),
			produce: func(ctx context.Context, _ bool) (string, error) {
				data, err := h.data.BadgeData(ctx, p, kind, id, stat)
				if err != nil {
					return "", err
				}
				return h.renderer.StatBadge(data, color)
			},
			failure: h.renderer.ErrorBadge,
		}

		if !collector.SupportsStat(p, kind, stat) {
			h.writeFailure(w, r, req, collector.ErrUnknownStat, wantsPNG(r))
			return
		}
		if err := validIdentifier(id); err != nil {
			h.writeFailure(w, r, req, err, wantsPNG(r))
			return
		}
		h.serveArtifact(w, r, req)
	}
}
