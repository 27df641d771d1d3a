// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/modfolio/internal/collector"
	"github.com/tomtom215/modfolio/internal/models"
	"github.com/tomtom215/modfolio/internal/platform"
	"github.com/tomtom215/modfolio/internal/render"
)

// Failure artifact messages.
const (
	msgRateLimited    = "Rate limit exceeded"
	msgUnavailable    = "Service temporarily unavailable"
	msgNotConfigured  = "Platform not configured"
	msgUnknownStat    = "Unknown stat"
	msgInternal       = "Internal Server Error"
	msgUpstreamSuffix = " API unavailable"
)

// failure is the HTTP status and user-facing message for an error.
type failure struct {
	Status  int
	Code    string
	Message string
}

// classifyError maps a collection or rendering error onto a failure. The
// message names the entity kind for not-found errors and the platform for
// upstream errors.
func classifyError(err error, p models.Platform, kind models.EntityKind) failure {
	var upstream *platform.UpstreamError

	switch {
	case errors.Is(err, collector.ErrUnknownStat):
		return failure{http.StatusNotFound, "NOT_FOUND", msgUnknownStat}
	case platform.IsNotFound(err):
		return failure{http.StatusNotFound, "NOT_FOUND", render.NotFoundMessage(p, kind)}
	case errors.Is(err, collector.ErrPlatformDisabled):
		return failure{http.StatusServiceUnavailable, "PLATFORM_DISABLED", msgNotConfigured}
	case platform.IsRateLimited(err):
		return failure{http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", msgRateLimited}
	case errors.As(err, &upstream) && upstream.StatusCode == http.StatusServiceUnavailable:
		return failure{http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", msgUnavailable}
	case errors.As(err, &upstream):
		return failure{http.StatusBadGateway, "UPSTREAM_ERROR", render.StyleFor(p).Name + msgUpstreamSuffix}
	default:
		return failure{http.StatusInternalServerError, "INTERNAL_ERROR", msgInternal}
	}
}
