// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/models"
	"github.com/tomtom215/modfolio/internal/platform"
	"github.com/tomtom215/modfolio/internal/validation"
)

const (
	svgContentType = "image/svg+xml"
	pngContentType = "image/png"

	noStoreCacheControl = "no-cache, no-store, must-revalidate"
)

// crawlerAgents are link-preview bots that cannot display SVG.
var crawlerAgents = []string{
	"Discordbot",
	"Twitterbot",
	"facebookexternalhit",
	"Slackbot",
	"TelegramBot",
	"WhatsApp",
	"LinkedInBot",
	"SkypeUriPreview",
}

// isCrawler reports whether userAgent belongs to a link-preview bot.
func isCrawler(userAgent string) bool {
	for _, bot := range crawlerAgents {
		if strings.Contains(userAgent, bot) {
			return true
		}
	}
	return false
}

// wantsPNG reports whether the response should be rasterized.
func wantsPNG(r *http.Request) bool {
	return r.URL.Query().Get("format") == "png" || isCrawler(r.UserAgent())
}

// parseTheme returns "light" when asked for and "dark" otherwise.
func parseTheme(q url.Values) string {
	if q.Get("theme") == "light" {
		return "light"
	}
	return "dark"
}

// parseCardOptions reads card options from the query string. Booleans are
// on unless set to "false", list sizes are clamped and colors that are not
// valid hex are dropped.
func parseCardOptions(q url.Values) models.Options {
	opts := models.DefaultOptions()
	opts.ShowProjects = q.Get("showProjects") != "false"
	opts.ShowVersions = q.Get("showVersions") != "false"
	opts.RelativeTime = q.Get("relativeTime") != "false"
	opts.MaxProjects = parseListSize(q.Get("maxProjects"))
	opts.MaxVersions = parseListSize(q.Get("maxVersions"))
	opts.Color = normalizeColor(q.Get("color"))
	opts.BackgroundColor = normalizeColor(q.Get("backgroundColor"))

	verr := validation.ValidateStruct(opts)
	if verr == nil {
		return opts
	}
	if verr.Has("MaxProjects") {
		opts.MaxProjects = models.ClampListSize(opts.MaxProjects)
	}
	if verr.Has("MaxVersions") {
		opts.MaxVersions = models.ClampListSize(opts.MaxVersions)
	}
	if verr.Has("Color") {
		opts.Color = ""
	}
	if verr.Has("BackgroundColor") {
		opts.BackgroundColor = ""
	}
	return opts
}

// parseListSize reads the leading integer of value, so "3.7" and "3rd"
// both mean 3. Missing, zero or non-numeric values give the default. Range
// checks happen in parseCardOptions.
func parseListSize(value string) int {
	value = strings.TrimSpace(value)
	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(value[:end])
	if errors.Is(err, strconv.ErrRange) {
		if value[0] == '-' {
			return models.MinListSize
		}
		return models.MaxListSize
	}
	if err != nil || n == 0 {
		return models.DefaultListSize
	}
	return n
}

// normalizeColor turns "1bd96a" into "#1bd96a".
func normalizeColor(value string) string {
	if value == "" {
		return ""
	}
	return "#" + strings.TrimPrefix(value, "#")
}

// parseColor normalizes a color and returns "" unless it is valid hex.
func parseColor(value string) string {
	c := normalizeColor(value)
	if c == "" {
		return ""
	}
	if err := validation.ValidateVar(c, "hexcolor"); err != nil {
		return ""
	}
	return c
}

// validIdentifier rejects identifiers no platform could serve before any
// upstream call is made.
func validIdentifier(id string) error {
	if err := validation.ValidateVar(id, "required,identifier"); err != nil {
		return platform.ErrInvalidID
	}
	return nil
}

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// writeArtifact sends a successful image response.
func writeArtifact(w http.ResponseWriter, contentType string, body []byte, maxAge int) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("Failed to write artifact response")
	}
}

// writeFailureArtifact sends an error card or badge that must never be cached.
func writeFailureArtifact(w http.ResponseWriter, contentType string, status int, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", noStoreCacheControl)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("Failed to write failure response")
	}
}

// respondJSON sends a JSON response. maxAge of zero or less disables caching.
func respondJSON(w http.ResponseWriter, status int, v interface{}, maxAge int) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if maxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
	} else {
		w.Header().Set("Cache-Control", noStoreCacheControl)
	}
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	}, 0)
}
