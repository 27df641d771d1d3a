// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/metrics"
	"github.com/tomtom215/modfolio/internal/models"
)

// maxErrorBodySize limits how much of an error response is read into memory.
const maxErrorBodySize = 4096

// apiClient is the HTTP plumbing shared by the platform clients.
type apiClient struct {
	platform models.Platform
	name     string // display name used in error messages
	client   *http.Client
	ua       string
	headers  map[string]string
	limiter  *rate.Limiter
	breaker  *CircuitBreaker
}

func newAPIClient(platform models.Platform, name string, opts Options) apiClient {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return apiClient{
		platform: platform,
		name:     name,
		client:   httpClient,
		ua:       opts.UserAgent,
		headers:  make(map[string]string),
		limiter:  opts.Limiter,
		breaker:  opts.Breaker,
	}
}

// getJSON fetches reqURL and decodes the JSON body into out.
func (c *apiClient) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if c.breaker == nil {
		return c.fetch(ctx, reqURL, out)
	}
	return c.breaker.Execute(c.name, func() error {
		return c.fetch(ctx, reqURL, out)
	})
}

func (c *apiClient) fetch(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return &UpstreamError{Platform: c.name, Message: fmt.Sprintf("create request failed: %v", err), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(string(c.platform), 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &UpstreamError{Platform: c.name, Message: fmt.Sprintf("request failed: %v", err), Err: err}
	}
	defer resp.Body.Close()
	metrics.RecordUpstreamRequest(string(c.platform), resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(readBodyForError(resp.Body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		logging.Ctx(ctx).Debug().Str("platform", string(c.platform)).Int("status", resp.StatusCode).
			Str("url", reqURL).Msg("Upstream request failed")
		return &UpstreamError{Platform: c.name, StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{
			Platform:   c.name,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
			Err:        err,
		}
	}
	return nil
}

// readBodyForError safely reads response body for error messages
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

// errorMessage extracts a human readable message from an error body. The
// platforms disagree on the field name, so error, message and description
// are tried in order before falling back to the raw text.
func errorMessage(body []byte) string {
	var payload struct {
		Error       interface{} `json:"error"`
		Message     string      `json:"message"`
		Description string      `json:"description"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if s, ok := payload.Error.(string); ok && s != "" {
			return s
		}
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Description != "" {
			return payload.Description
		}
	}
	return strings.TrimSpace(string(body))
}

// joinURL appends escaped path segments to base.
func joinURL(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// withQuery appends an encoded query to u.
func withQuery(u string, q url.Values) string {
	if len(q) == 0 {
		return u
	}
	return u + "?" + q.Encode()
}

// parseTime parses an RFC 3339 timestamp, returning the zero time for
// missing or malformed input.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// truncate limits a newest-first list to n items; n <= 0 keeps everything.
func truncate[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
