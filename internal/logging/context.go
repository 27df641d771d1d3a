// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// contextKey keeps logging values out of other packages' key space.
type contextKey string

// requestIDKey is the context key for HTTP request IDs.
const requestIDKey contextKey = "request_id"

// GenerateRequestID creates a new unique request ID.
// Returns a full UUID so IDs stay unique across restarts and replicas.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a new context carrying the request ID.
//
// The request ID middleware calls this once per request, reusing an
// inbound X-Request-ID header when present. Handlers and collectors then
// read it back through Ctx or RequestIDFromContext.
//
// Example usage:
//
//	id := r.Header.Get("X-Request-ID")
//	if id == "" {
//		id = logging.GenerateRequestID()
//	}
//	r = r.WithContext(logging.ContextWithRequestID(r.Context(), id))
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if not present, as with background contexts used by
// the supervisor services.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns the global logger with the request ID of ctx attached.
//
// Use it anywhere a request context is in scope so that upstream fetch
// failures, render errors and access log lines for one request share a
// request_id field. Without an ID in ctx it returns the plain global logger.
//
// Example usage:
//
//	logging.Ctx(ctx).Warn().
//		Err(err).
//		Str("platform", "modrinth").
//		Str("id", id).
//		Msg("Upstream fetch failed")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := Logger()
	if id := RequestIDFromContext(ctx); id != "" {
		logger = logger.With().Str("request_id", id).Logger()
	}
	return &logger
}
