// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package supervisor provides process supervision for Modfolio using suture v4.

# Overview

Long-running services are organized into two layers:

	RootSupervisor ("modfolio")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService
	└── MaintenanceSupervisor ("maintenance-layer")
	    └── CacheStatsService

Crashed services are restarted with backoff. Failures are counted per layer,
so a reporter stuck in a restart loop leaves the HTTP server alone.

Supervisor events (start, stop, panic, backoff) are logged through slog via
the sutureslog adapter.

# Usage

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(services.NewCacheStatsService(caches, cfg.Cache.StatsInterval))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Shutdown

Cancelling the context stops every service. Services that do not return
within ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
