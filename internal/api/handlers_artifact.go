// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/modfolio/internal/cache"
	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/metrics"
	"github.com/tomtom215/modfolio/internal/models"
)

// Cache names used in metrics.
const (
	artifactCache = "artifact"
	metaCache     = "meta"
)

// artifactRequest describes one card or badge request.
type artifactRequest struct {
	platform models.Platform
	kind     models.EntityKind
	id       string
	artifact string // "card" or "badge"
	key      string

	// produce collects the data and renders the SVG. png is true when the
	// SVG will be rasterized, so embedded images must be PNG.
	produce func(ctx context.Context, png bool) (string, error)
	// failure renders the error artifact that replaces a failed one.
	failure func(message string) string
}

func (h *Handler) serveArtifact(w http.ResponseWriter, r *http.Request, req artifactRequest) {
	if wantsPNG(r) {
		h.servePNG(w, r, req)
		return
	}

	ctx := r.Context()
	if svg, ok := h.cachedSVG(req.key); ok {
		h.served(ctx, req, "svg", true)
		writeArtifact(w, svgContentType, []byte(svg), h.cards.MaxAgeSeconds())
		return
	}

	svg, err := h.renderSVG(ctx, req, false)
	if err != nil {
		h.writeFailure(w, r, req, err, false)
		return
	}
	h.served(ctx, req, "svg", false)
	writeArtifact(w, svgContentType, []byte(svg), h.cards.MaxAgeSeconds())
}

// servePNG answers from the cached PNG, else rasterizes the cached SVG, else
// renders and caches the SVG first.
func (h *Handler) servePNG(w http.ResponseWriter, r *http.Request, req artifactRequest) {
	ctx := r.Context()
	pngKey := cache.PNGKey(req.key)

	if out, ok := h.cachedPNG(pngKey); ok {
		h.served(ctx, req, "png", true)
		writeArtifact(w, pngContentType, out, h.cards.MaxAgeSeconds())
		return
	}

	svg, ok := h.cachedSVG(req.key)
	if !ok {
		var err error
		if svg, err = h.renderSVG(ctx, req, true); err != nil {
			h.writeFailure(w, r, req, err, true)
			return
		}
	}

	out, err := cache.Do(ctx, h.dedupe, cache.RenderKey(pngKey), func(context.Context) ([]byte, error) {
		b, err := h.renderer.PNG(svg)
		if err != nil {
			return nil, err
		}
		h.cards.Set(pngKey, b)
		return b, nil
	})
	if err != nil {
		h.writeFailure(w, r, req, err, true)
		return
	}
	h.served(ctx, req, "png", false)
	writeArtifact(w, pngContentType, out, h.cards.MaxAgeSeconds())
}

// renderSVG produces the SVG for req and stores it. Identical concurrent
// misses share one producer call.
func (h *Handler) renderSVG(ctx context.Context, req artifactRequest, png bool) (string, error) {
	return cache.Do(ctx, h.dedupe, cache.RenderKey(req.key), func(ctx context.Context) (string, error) {
		svg, err := req.produce(ctx, png)
		if err != nil {
			return "", err
		}
		h.cards.Set(req.key, svg)
		return svg, nil
	})
}

func (h *Handler) cachedSVG(key string) (string, bool) {
	v, found := h.cards.Get(key)
	svg, ok := v.(string)
	hit := found && ok
	metrics.RecordCacheLookup(artifactCache, hit)
	return svg, hit
}

func (h *Handler) cachedPNG(key string) ([]byte, bool) {
	v, found := h.cards.Get(key)
	out, ok := v.([]byte)
	hit := found && ok
	metrics.RecordCacheLookup(artifactCache, hit)
	return out, hit
}

func (h *Handler) served(ctx context.Context, req artifactRequest, format string, cached bool) {
	source := "rendered"
	if cached {
		source = "cache"
	}
	metrics.RecordArtifact(string(req.platform), req.artifact, format, source)

	logging.Ctx(ctx).Info().
		Str("platform", string(req.platform)).
		Str("kind", string(req.kind)).
		Str("id", sanitizeLogValue(req.id)).
		Str("format", format).
		Bool("cached", cached).
		Msgf("Showing %s %s", req.kind, req.artifact)
}

// writeFailure converts err into an error artifact of the requested media
// type. If the error artifact itself cannot be rasterized the SVG is sent.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, req artifactRequest, err error, png bool) {
	f := classifyError(err, req.platform, req.kind)

	event := logging.Ctx(r.Context()).Warn()
	if f.Status >= http.StatusInternalServerError && f.Status != http.StatusServiceUnavailable {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Err(err).
		Str("platform", string(req.platform)).
		Str("kind", string(req.kind)).
		Str("id", sanitizeLogValue(req.id)).
		Int("status", f.Status).
		Msgf("Failed to build %s", req.artifact)

	svg := req.failure(f.Message)
	if png {
		out, perr := h.renderer.PNG(svg)
		if perr == nil {
			metrics.RecordArtifact(string(req.platform), req.artifact, "png", "error")
			writeFailureArtifact(w, pngContentType, f.Status, out)
			return
		}
		logging.Ctx(r.Context()).Error().Err(perr).Msg("Failed to rasterize error artifact")
	}
	metrics.RecordArtifact(string(req.platform), req.artifact, "svg", "error")
	writeFailureArtifact(w, svgContentType, f.Status, []byte(svg))
}
