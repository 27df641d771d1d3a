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
	"github.com/tomtom215/modfolio/internal/models"
)

// Card returns the handler for stat cards of kind on p.
//
// @Summary Get a stat card
// @Description Renders an SVG stat card for a user, project, organization or collection. Link-preview crawlers and format=png receive a PNG.
// @Tags Cards
// @Produce image/svg+xml
// @Produce image/png
// @Param platform path string true "Platform" Enums(modrinth, curseforge, hangar, spigot)
// @Param kind path string true "Entity kind" Enums(user, project, organization, collection, author, resource)
// @Param id path string true "Identifier or slug"
// @Param theme query string false "Color theme" Enums(dark, light) default(dark)
// @Param showProjects query bool false "Show the top projects list" default(true)
// @Param showVersions query bool false "Show the latest versions list" default(true)
// @Param maxProjects query int false "Number of projects listed (1-50)" default(5)
// @Param maxVersions query int false "Number of versions listed (1-50)" default(5)
// @Param relativeTime query bool false "Show version dates as relative times" default(true)
// @Param color query string false "Accent color as hex"
// @Param backgroundColor query string false "Background color as hex"
// @Param format query string false "Force PNG output" Enums(png)
// @Success 200 {file} file "Rendered card"
// @Failure 404 {file} file "Error card"
// @Failure 429 {file} file "Error card"
// @Failure 502 {file} file "Error card"
// @Router /{platform}/{kind}/{id} [get]
func (h *Handler) Card(p models.Platform, kind models.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		q := r.URL.Query()
		theme := parseTheme(q)
		opts := parseCardOptions(q)

		req := artifactRequest{
			platform: p,
			kind:     kind,
			id:       id,
			artifact: "card",
			key:      cache.CardKey(string(p), string(kind), id, theme, opts),
			produce: func(ctx context.Context, png bool) (string, error) {
				data, err := h.data.CardData(ctx, p, kind, id, opts, png)
				if err != nil {
					return "", err
				}
				return h.renderer.Card(data, theme, opts)
			},
			failure: func(message string) string {
				return h.renderer.ErrorCard(message, theme)
			},
		}

		if err := validIdentifier(id); err != nil {
			h.writeFailure(w, r, req, err, wantsPNG(r))
			return
		}
		h.serveArtifact(w, r, req)
	}
}
