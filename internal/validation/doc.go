// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

/*
Package validation wraps go-playground/validator for request parameters.

The API layer validates two things with it:

  - Path parameters (platform, kind, identifier, theme) before any upstream call
  - Card options (list sizes, hex colors); invalid colors are dropped so the
    card falls back to the platform's accent color instead of failing

Custom tags:

  - identifier: 1-64 characters of [A-Za-z0-9_.-]

Example:

	type cardRequest struct {
	    Identifier string `validate:"required,identifier"`
	    Theme      string `validate:"oneof=dark light"`
	}
	if verr := validation.ValidateStruct(req); verr != nil {
	    // verr.Fields() lists the failing fields
	}
*/
package validation
