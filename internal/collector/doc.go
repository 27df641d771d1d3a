// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

// Package collector turns a (platform, kind, identifier) triple into the
// data a card or badge shows. It calls the platform clients, aggregates
// project lists and enriches the top projects with version history and
// icons through a bounded runner. It does not cache; finished artifacts are
// cached by the HTTP layer.
package collector
