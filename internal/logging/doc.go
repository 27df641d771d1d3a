// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package logging provides centralized zerolog-based logging for Modfolio.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Str("addr", addr).Msg("Server starting")
	logging.Ctx(ctx).Warn().Err(err).Str("platform", "hangar").Msg("Version fetch failed")

# Configuration

Level and format come from the logging section of the configuration
(LOG_LEVEL, LOG_FORMAT, LOG_CALLER environment variables).

# Request IDs

The HTTP layer stores a request ID in the request context; Ctx adds it to
every line logged for that request.

# slog

SlogHandler adapts zerolog to log/slog for the supervisor event hook.
*/
package logging
