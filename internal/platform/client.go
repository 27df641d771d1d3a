// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package platform

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/tomtom215/modfolio/internal/config"
	"github.com/tomtom215/modfolio/internal/models"
)

// Client is the uniform view of one mod-hosting platform.
//
// Implementations map the platform's native JSON into models types. They
// return ErrNotFound (or ErrInvalidID) for entities that do not exist and
// *UpstreamError for every other failure.
type Client interface {
	Platform() models.Platform

	// Supports reports whether kind is served by this platform.
	Supports(kind models.EntityKind) bool

	// FetchEntity returns the profile of a user, project or collection.
	FetchEntity(ctx context.Context, kind models.EntityKind, id string) (*models.Entity, error)

	// FetchProjectList returns the projects owned by a list kind entity.
	// limit <= 0 returns everything the platform hands out.
	FetchProjectList(ctx context.Context, kind models.EntityKind, id string, limit int) ([]models.Project, error)

	// FetchVersionList returns a project's versions, newest first.
	// limit <= 0 returns everything the platform hands out.
	FetchVersionList(ctx context.Context, projectID string, limit int) ([]models.Version, error)
}

// Options carries the settings shared by every platform client.
type Options struct {
	HTTPClient *http.Client
	UserAgent  string
	// Limiter throttles outbound requests. nil disables throttling.
	Limiter *rate.Limiter
	// Breaker guards the platform. nil disables the breaker.
	Breaker *CircuitBreaker
}

// NewOptions builds client options from upstream configuration. Each call
// creates a fresh limiter so platforms do not share a budget.
func NewOptions(cfg config.UpstreamConfig, name string) Options {
	opts := Options{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		UserAgent:  cfg.ResolvedUserAgent(),
	}
	if cfg.RequestsPerSecond > 0 {
		opts.Limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	if cfg.CircuitBreaker {
		opts.Breaker = NewCircuitBreaker(name, BreakerSettings{})
	}
	return opts
}
