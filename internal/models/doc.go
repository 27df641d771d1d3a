// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package models defines the data structures shared across Modfolio.

Key Components:

  - Platform, EntityKind: which service and which kind of entity a request targets
  - Project, Version: normalized platform records
  - Entity: the subject of a card (user, organization, collection, author or project)
  - AggregatedStats: totals and top projects computed by the stats package
  - CardData, BadgeData: renderer inputs built by the collector
  - Options: validated per-request card options
  - APIResponse, APIError, MetaResponse: JSON bodies

Values in this package are plain data. A CardData is built by one request
and never shared across goroutines after it is handed to the renderer.
*/
package models
