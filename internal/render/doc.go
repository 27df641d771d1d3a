// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package render draws stat cards and badges as SVG and rasterizes them to PNG.

Cards come in two layouts. List kinds (users, organizations, collections,
Spigot authors) show aggregate totals and a top projects list; project kinds
show the project's own numbers and its newest versions. Both carry an
activity sparkline built from version release dates.

Every platform gets its own Style: the three stat cells of each kind, badge
labels, accent color and not-found wording.

Templates are plain text/template; all user supplied text passes through the
xml template function. PNG output uses oksvg for shapes and draws text and
embedded images in a second pass with the Go fonts.
*/
package render
