// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/modfolio/docs" // Import generated swagger docs
	"github.com/tomtom215/modfolio/internal/api"
	"github.com/tomtom215/modfolio/internal/cache"
	"github.com/tomtom215/modfolio/internal/collector"
	"github.com/tomtom215/modfolio/internal/config"
	"github.com/tomtom215/modfolio/internal/images"
	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/metrics"
	"github.com/tomtom215/modfolio/internal/platform"
	"github.com/tomtom215/modfolio/internal/render"
	"github.com/tomtom215/modfolio/internal/supervisor"
	"github.com/tomtom215/modfolio/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", config.Version).
		Str("environment", cfg.Server.Environment).
		Dur("card_ttl", cfg.Cache.CardTTL).
		Dur("meta_ttl", cfg.Cache.MetaTTL).
		Msg("Starting Modfolio")

	if !cfg.CurseForge.Enabled() {
		logging.Warn().Msg("CURSEFORGE_API_KEY not set - CurseForge routes will answer with an error artifact")
	}

	server, caches := buildServer(cfg)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(services.NewCacheStatsService(caches, cfg.Cache.StatsInterval))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
	if len(unstopped) > 0 {
		os.Exit(1)
	}
}

// buildServer wires caches, platform clients, the collector and the
// renderer into an *http.Server. The returned map names every cache whose
// size is published as a metric.
func buildServer(cfg *config.Config) (*http.Server, map[string]services.Sizer) {
	cards := cache.New(cfg.Cache.CardTTL)
	meta := cache.New(cfg.Cache.MetaTTL)

	dedupe := cache.NewDeduplicator()
	dedupe.OnExecute = metrics.RecordDedupeExecution
	dedupe.OnShared = metrics.RecordDedupeShared

	registry := platform.NewRegistryFromConfig(cfg)
	icons := images.NewFetcher(&http.Client{Timeout: cfg.Upstream.Timeout}, cfg.Upstream.ResolvedUserAgent(), dedupe)
	data := collector.New(registry, dedupe, icons, cfg.Upstream.MaxConcurrentRequests)
	renderer := render.New(render.WithVersion(config.Version))

	handler := api.NewHandler(data, renderer, cards, meta, dedupe)
	chiMw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server, map[string]services.Sizer{
		"artifact": cards,
		"meta":     meta,
	}
}
