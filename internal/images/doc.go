// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

// Package images fetches project icons and user avatars and turns them into
// data URIs for embedding in rendered cards. Failures never surface as
// errors: a card with a missing icon is still a valid card.
package images
