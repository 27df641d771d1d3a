// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/modfolio/internal/models"
)

// registerLegacyRoutes keeps URLs from before the multi-platform layout
// working. Modrinth was the only platform then, so unprefixed paths move
// under /modrinth.
func (router *Router) registerLegacyRoutes(r chi.Router) {
	for _, kind := range platformKinds[models.PlatformModrinth] {
		k := string(kind)
		r.Get("/"+k+"/{id}", redirectParams(http.StatusMovedPermanently, "/modrinth/"+k+"/{id}"))
		r.Get("/"+k+"/{id}/{stat}", redirectParams(http.StatusMovedPermanently, "/modrinth/"+k+"/{id}/{stat}"))
	}
	r.Get("/meta/modrinth/{kind}/{id}", redirectParams(http.StatusMovedPermanently, "/modrinth/meta/{kind}/{id}"))

	// Retired card types.
	r.Get("/card/summary/{id}", redirect("/", http.StatusMovedPermanently))
	r.Get("/card/user/{id}", redirect("/", http.StatusMovedPermanently))
}

// redirect answers with a redirect to a fixed target.
func redirect(target string, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, status)
	}
}

// redirectParams answers with a redirect to pattern, with each {param}
// replaced by the escaped URL parameter of the same name. The query string
// is carried over.
func redirectParams(status int, pattern string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := expandPattern(pattern, func(name string) string {
			return url.PathEscape(chi.URLParam(r, name))
		})
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, status)
	}
}

func expandPattern(pattern string, value func(name string) string) string {
	out := make([]byte, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '{' {
			out = append(out, pattern[i])
			continue
		}
		end := i + 1
		for end < len(pattern) && pattern[end] != '}' {
			end++
		}
		out = append(out, value(pattern[i+1:end])...)
		i = end
	}
	return string(out)
}
