// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/modfolio/internal/cache"
	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/metrics"
	"github.com/tomtom215/modfolio/internal/models"
)

// Meta returns the handler for display-name lookups of kind on p.
//
// @Summary Get display metadata
// @Description Returns the display name of an entity, cached for an hour
// @Tags Meta
// @Produce json
// @Param platform path string true "Platform" Enums(modrinth, curseforge, hangar, spigot)
// @Param kind path string true "Entity kind" Enums(user, project, organization, collection, author, resource)
// @Param id path string true "Identifier or slug"
// @Success 200 {object} models.MetaResponse "Display name"
// @Failure 404 {object} models.APIResponse "Entity not found"
// @Failure 502 {object} models.APIResponse "Platform API failed"
// @Router /{platform}/meta/{kind}/{id} [get]
func (h *Handler) Meta(p models.Platform, kind models.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")
		if err := validIdentifier(id); err != nil {
			h.metaFailure(w, r, p, kind, id, err)
			return
		}

		key := cache.MetaKey(string(p), string(kind), id)
		if v, cachedAt, found := h.meta.GetWithMeta(key); found {
			if name, ok := v.(string); ok {
				metrics.RecordCacheLookup(metaCache, true)
				logging.Ctx(ctx).Info().
					Str("platform", string(p)).
					Str("id", sanitizeLogValue(id)).
					Int("age_minutes", int(time.Since(cachedAt).Minutes())).
					Msgf("Showing meta for %s (cached)", kind)
				respondJSON(w, http.StatusOK, models.MetaResponse{Name: name}, h.meta.MaxAgeSeconds())
				return
			}
		}
		metrics.RecordCacheLookup(metaCache, false)

		name, err := h.data.Meta(ctx, p, kind, id)
		if err != nil {
			h.metaFailure(w, r, p, kind, id, err)
			return
		}
		h.meta.Set(key, name)

		logging.Ctx(ctx).Info().
			Str("platform", string(p)).
			Str("id", sanitizeLogValue(id)).
			Msgf("Showing meta for %s", kind)
		respondJSON(w, http.StatusOK, models.MetaResponse{Name: name}, h.meta.MaxAgeSeconds())
	}
}

func (h *Handler) metaFailure(w http.ResponseWriter, r *http.Request, p models.Platform, kind models.EntityKind, id string, err error) {
	f := classifyError(err, p, kind)
	logging.Ctx(r.Context()).Warn().Err(err).
		Str("platform", string(p)).
		Str("kind", string(kind)).
		Str("id", sanitizeLogValue(id)).
		Msg("Meta lookup failed")
	respondError(w, f.Status, f.Code, f.Message)
}
