// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/modfolio/internal/config"
	"github.com/tomtom215/modfolio/internal/models"
)

// HealthLive handles liveness checks. It never calls a platform API.
//
// @Summary Liveness probe
// @Description Reports that the process is serving along with uptime and cache sizes
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is live"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:  "ok",
		Version: config.Version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Caches: map[string]int{
			artifactCache: h.cards.Size(),
			metaCache:     h.meta.Size(),
		},
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	}, 0)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Not Found")
}

// MethodNotAllowed answers known routes called with an unsupported method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}
