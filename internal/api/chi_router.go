// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/modfolio/internal/middleware"
	"github.com/tomtom215/modfolio/internal/models"
)

// platformKinds lists the entity kinds each platform serves, in route
// registration order.
var platformKinds = map[models.Platform][]models.EntityKind{
	models.PlatformModrinth:   {models.KindUser, models.KindProject, models.KindOrganization, models.KindCollection},
	models.PlatformCurseForge: {models.KindProject},
	models.PlatformHangar:     {models.KindUser, models.KindProject},
	models.PlatformSpigot:     {models.KindAuthor, models.KindResource},
}

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router. A nil chiMw uses the default middleware
// configuration.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.GetHead)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(APISecurityHeaders())
	r.Use(RequestLogging())

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	// ========================
	// Cards, Badges and Meta
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		for _, p := range models.Platforms {
			prefix := "/" + string(p)
			for _, kind := range platformKinds[p] {
				r.Get(prefix+"/"+string(kind)+"/{id}", h.Card(p, kind))
				r.Get(prefix+"/"+string(kind)+"/{id}/{stat}", h.Badge(p, kind))
				r.Get(prefix+"/meta/"+string(kind)+"/{id}", h.Meta(p, kind))
			}
		}

		// Modrinth meta without a platform prefix, and CurseForge's short form.
		for _, kind := range platformKinds[models.PlatformModrinth] {
			r.Get("/meta/"+string(kind)+"/{id}", h.Meta(models.PlatformModrinth, kind))
		}
		r.Get("/meta/curseforge/{id}", h.Meta(models.PlatformCurseForge, models.KindProject))
	})

	// ========================
	// Legacy Routes
	// ========================
	router.registerLegacyRoutes(r)

	// ========================
	// Health
	// ========================
	r.Get("/health/live", h.HealthLive)

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs", redirect("/docs/index.html", http.StatusFound))
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
	r.Get("/", redirect("/docs/index.html", http.StatusFound))

	return r
}
