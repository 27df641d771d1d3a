// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package stats reduces a platform's project list to the numbers a card shows.

All functions are pure: they read request-local slices and return new
values, so they need no locking.

Top projects are selected with a bounded insertion that keeps at most maxTop
entries, which is O(n * maxTop) and avoids sorting the full list for users
with hundreds of projects.
*/
package stats
