// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/modfolio/internal/cache"
	"github.com/tomtom215/modfolio/internal/collector"
	"github.com/tomtom215/modfolio/internal/models"
	"github.com/tomtom215/modfolio/internal/platform"
)

// stubData is a DataSource that counts calls and returns canned data.
type stubData struct {
	cardCalls  atomic.Int32
	badgeCalls atomic.Int32
	metaCalls  atomic.Int32

	err error
	// gate, when set, blocks CardData until closed.
	gate chan struct{}

	mu       sync.Mutex
	lastOpts models.Options
	lastPNG  bool
}

func (s *stubData) CardData(ctx context.Context, p models.Platform, kind models.EntityKind, id string, opts models.Options, png bool) (*models.CardData, error) {
	s.cardCalls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	s.lastOpts, s.lastPNG = opts, png
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &models.CardData{Entity: models.Entity{Platform: p, Kind: kind, ID: id, Name: "Sodium"}}, nil
}

func (s *stubData) BadgeData(ctx context.Context, p models.Platform, kind models.EntityKind, id, stat string) (*models.BadgeData, error) {
	s.badgeCalls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &models.BadgeData{Platform: p, Kind: kind, Stat: stat, Name: id, Value: 1234}, nil
}

func (s *stubData) Meta(ctx context.Context, p models.Platform, kind models.EntityKind, id string) (string, error) {
	s.metaCalls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return "Sodium", nil
}

// stubRenderer counts renders and produces recognizable markup.
type stubRenderer struct {
	cardCalls  atomic.Int32
	badgeCalls atomic.Int32
	pngCalls   atomic.Int32
	pngErr     error
	cardPanic  bool
}

func (r *stubRenderer) Card(data *models.CardData, theme string, opts models.Options) (string, error) {
	r.cardCalls.Add(1)
	if r.cardPanic {
		var widths map[string]int
		widths[theme] = 1
	}
	return fmt.Sprintf(`<svg data-theme="%s">%s</svg>`, theme, data.Entity.Name), nil
}

func (r *stubRenderer) StatBadge(data *models.BadgeData, color string) (string, error) {
	r.badgeCalls.Add(1)
	return fmt.Sprintf(`<svg data-color="%s">%s=%.0f</svg>`, color, data.Stat, data.Value), nil
}

func (r *stubRenderer) ErrorCard(message, theme string) string {
	return fmt.Sprintf(`<svg class="error-card">%s</svg>`, message)
}

func (r *stubRenderer) ErrorBadge(message string) string {
	return fmt.Sprintf(`<svg class="error-badge">%s</svg>`, message)
}

func (r *stubRenderer) PNG(svg string) ([]byte, error) {
	r.pngCalls.Add(1)
	if r.pngErr != nil {
		return nil, r.pngErr
	}
	return []byte("PNG:" + svg), nil
}

type testServer struct {
	data     *stubData
	renderer *stubRenderer
	cards    *cache.Cache
	meta     *cache.Cache
	handler  http.Handler
}

func newTestServer(t *testing.T, cfg *ChiMiddlewareConfig) *testServer {
	t.Helper()
	ts := &testServer{
		data:     &stubData{},
		renderer: &stubRenderer{},
		cards:    cache.New(10 * time.Minute),
		meta:     cache.New(60 * time.Minute),
	}
	h := NewHandler(ts.data, ts.renderer, ts.cards, ts.meta, cache.NewDeduplicator())
	ts.handler = NewRouter(h, NewChiMiddleware(cfg)).SetupChi()
	return ts
}

func (ts *testServer) get(path string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestCardCacheHitIsIdempotent(t *testing.T) {
	ts := newTestServer(t, nil)

	first := ts.get("/modrinth/project/sodium")
	second := ts.get("/modrinth/project/sodium")

	for i, rec := range []*httptest.ResponseRecorder{first, second} {
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != svgContentType {
			t.Errorf("request %d: Content-Type = %q", i, ct)
		}
		if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=600" {
			t.Errorf("request %d: Cache-Control = %q", i, cc)
		}
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("bodies differ: %q vs %q", first.Body.String(), second.Body.String())
	}
	if got := ts.data.cardCalls.Load(); got != 1 {
		t.Errorf("CardData calls = %d, want 1", got)
	}
	if got := ts.renderer.cardCalls.Load(); got != 1 {
		t.Errorf("Card renders = %d, want 1", got)
	}
}

func TestCardOptionsAreSeparateCacheEntries(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.get("/modrinth/project/sodium")
	ts.get("/modrinth/project/sodium?theme=light")
	ts.get("/modrinth/project/sodium?maxVersions=3")
	ts.get("/modrinth/project/sodium?maxVersions=3")

	if got := ts.data.cardCalls.Load(); got != 3 {
		t.Errorf("CardData calls = %d, want 3", got)
	}

	ts.data.mu.Lock()
	defer ts.data.mu.Unlock()
	if ts.data.lastOpts.MaxVersions != 3 {
		t.Errorf("MaxVersions = %d, want 3", ts.data.lastOpts.MaxVersions)
	}
}

func TestCardPNGForCrawler(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.get("/hangar/project/ViaVersion", "User-Agent", "Mozilla/5.0 (compatible; Discordbot/2.0)")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != pngContentType {
		t.Errorf("Content-Type = %q, want %q", ct, pngContentType)
	}
	if !strings.HasPrefix(rec.Body.String(), "PNG:<svg") {
		t.Errorf("body = %q", rec.Body.String())
	}

	ts.data.mu.Lock()
	png := ts.data.lastPNG
	ts.data.mu.Unlock()
	if !png {
		t.Error("CardData was not asked for PNG-ready images")
	}

	// The PNG is cached next to the SVG.
	again := ts.get("/hangar/project/ViaVersion?format=png")
	if again.Body.String() != rec.Body.String() {
		t.Error("cached PNG differs")
	}
	if got := ts.renderer.pngCalls.Load(); got != 1 {
		t.Errorf("PNG rasterizations = %d, want 1", got)
	}

	// The SVG generated for the PNG is served to browsers.
	svg := ts.get("/hangar/project/ViaVersion")
	if svg.Header().Get("Content-Type") != svgContentType {
		t.Errorf("Content-Type = %q", svg.Header().Get("Content-Type"))
	}
	if got := ts.data.cardCalls.Load(); got != 1 {
		t.Errorf("CardData calls = %d, want 1", got)
	}
}

func TestCardPNGReusesCachedSVG(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.get("/spigot/resource/9089")
	rec := ts.get("/spigot/resource/9089?format=png")

	if rec.Header().Get("Content-Type") != pngContentType {
		t.Fatalf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
	if got := ts.data.cardCalls.Load(); got != 1 {
		t.Errorf("CardData calls = %d, want 1", got)
	}
	if got := ts.renderer.cardCalls.Load(); got != 1 {
		t.Errorf("Card renders = %d, want 1", got)
	}
	if _, ok := ts.cards.Get(cache.PNGKey(cache.CardKey("spigot", "resource", "9089", "dark", parseCardOptions(nil)))); !ok {
		t.Error("PNG was not cached under the :png key")
	}
}

func TestCardPNGRasterizeFailureFallsBackToSVG(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.renderer.pngErr = errors.New("rasterizer broke")

	rec := ts.get("/modrinth/user/jellysquid?format=png")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != svgContentType {
		t.Errorf("Content-Type = %q, want SVG fallback", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != noStoreCacheControl {
		t.Errorf("Cache-Control = %q", cc)
	}
}

func TestCardErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantText   string
	}{
		{"not found", "/modrinth/project/missing", platform.ErrNotFound, http.StatusNotFound, "Project not found"},
		{"spigot author not found", "/spigot/author/1", platform.ErrNotFound, http.StatusNotFound, "Author not found"},
		{"rate limited", "/modrinth/user/alice", &platform.UpstreamError{Platform: "Modrinth", StatusCode: 429}, http.StatusTooManyRequests, "Rate limit exceeded"},
		{"upstream failure", "/hangar/user/kenny", &platform.UpstreamError{Platform: "Hangar", StatusCode: 500}, http.StatusBadGateway, "Hangar API unavailable"},
		{"circuit open", "/modrinth/project/sodium", &platform.UpstreamError{Platform: "Modrinth", StatusCode: 503}, http.StatusServiceUnavailable, msgUnavailable},
		{"platform disabled", "/curseforge/project/238222", collector.ErrPlatformDisabled, http.StatusServiceUnavailable, msgNotConfigured},
		{"internal", "/modrinth/project/sodium", errors.New("boom"), http.StatusInternalServerError, msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			ts.data.err = tt.err

			rec := ts.get(tt.path)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != svgContentType {
				t.Errorf("Content-Type = %q", ct)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != noStoreCacheControl {
				t.Errorf("Cache-Control = %q", cc)
			}
			if !strings.Contains(rec.Body.String(), "error-card") || !strings.Contains(rec.Body.String(), tt.wantText) {
				t.Errorf("body = %q, want error card with %q", rec.Body.String(), tt.wantText)
			}

			// Failures are not cached.
			ts.get(tt.path)
			if got := ts.data.cardCalls.Load(); got != 2 {
				t.Errorf("CardData calls = %d, want 2", got)
			}
		})
	}
}

func TestCardRenderPanicBecomesErrorCard(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.renderer.cardPanic = true

	rec := ts.get("/modrinth/project/sodium")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error-card") || !strings.Contains(rec.Body.String(), msgInternal) {
		t.Errorf("body = %q, want internal error card", rec.Body.String())
	}

	ts.renderer.cardPanic = false
	if rec := ts.get("/modrinth/project/sodium"); rec.Code != http.StatusOK {
		t.Errorf("status after recovery = %d, want 200", rec.Code)
	}
}

func TestCardErrorAsPNGForCrawler(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.data.err = platform.ErrNotFound

	rec := ts.get("/modrinth/project/missing", "User-Agent", "Twitterbot/1.0")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != pngContentType {
		t.Errorf("Content-Type = %q, want PNG", ct)
	}
	if !strings.Contains(rec.Body.String(), "Project not found") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestCardInvalidIdentifier(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.get("/modrinth/project/bad!id")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if got := ts.data.cardCalls.Load(); got != 0 {
		t.Errorf("CardData calls = %d, want 0", got)
	}
}

func TestCardConcurrentMissesRenderOnce(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.data.gate = make(chan struct{})

	const callers = 8
	var wg sync.WaitGroup
	bodies := make([]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bodies[i] = ts.get("/modrinth/collection/abc123").Body.String()
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(ts.data.gate)
	wg.Wait()

	if got := ts.data.cardCalls.Load(); got != 1 {
		t.Errorf("CardData calls = %d, want 1", got)
	}
	for i, b := range bodies {
		if b != bodies[0] {
			t.Errorf("caller %d body = %q, want %q", i, b, bodies[0])
		}
	}
}

func TestBadge(t *testing.T) {
	t.Run("renders and caches", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec := ts.get("/modrinth/user/alice/downloads?color=ff0000")
		ts.get("/modrinth/user/alice/downloads?color=ff0000")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if want := `<svg data-color="#ff0000">downloads=1234</svg>`; rec.Body.String() != want {
			t.Errorf("body = %q, want %q", rec.Body.String(), want)
		}
		if got := ts.data.badgeCalls.Load(); got != 1 {
			t.Errorf("BadgeData calls = %d, want 1", got)
		}
	})

	t.Run("unknown stat", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec := ts.get("/curseforge/project/238222/followers")

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "error-badge") || !strings.Contains(rec.Body.String(), msgUnknownStat) {
			t.Errorf("body = %q", rec.Body.String())
		}
		if got := ts.data.badgeCalls.Load(); got != 0 {
			t.Errorf("BadgeData calls = %d, want 0", got)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.data.err = &platform.UpstreamError{Platform: "Spigot", StatusCode: 502}

		rec := ts.get("/spigot/resource/9089/likes")

		if rec.Code != http.StatusBadGateway {
			t.Errorf("status = %d, want 502", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Spigot API unavailable") {
			t.Errorf("body = %q", rec.Body.String())
		}
	})
}

func TestMeta(t *testing.T) {
	t.Run("caches display name", func(t *testing.T) {
		ts := newTestServer(t, nil)

		first := ts.get("/modrinth/meta/project/sodium")
		second := ts.get("/meta/project/sodium")

		for _, rec := range []*httptest.ResponseRecorder{first, second} {
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=3600" {
				t.Errorf("Cache-Control = %q", cc)
			}
			var body models.MetaResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Name != "Sodium" {
				t.Errorf("name = %q, want Sodium", body.Name)
			}
		}
		if got := ts.data.metaCalls.Load(); got != 1 {
			t.Errorf("Meta calls = %d, want 1", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.data.err = platform.ErrNotFound

		rec := ts.get("/meta/curseforge/1")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		var body models.APIResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error == nil || body.Error.Code != "NOT_FOUND" {
			t.Errorf("error = %+v, want NOT_FOUND", body.Error)
		}
		if ts.meta.Size() != 0 {
			t.Error("failed lookup was cached")
		}
	})
}

func TestLegacyRedirects(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/user/alice", "/modrinth/user/alice"},
		{"/project/sodium?theme=light", "/modrinth/project/sodium?theme=light"},
		{"/organization/caffeinemc/downloads", "/modrinth/organization/caffeinemc/downloads"},
		{"/collection/abc123", "/modrinth/collection/abc123"},
		{"/meta/modrinth/project/sodium", "/modrinth/meta/project/sodium"},
		{"/card/summary/alice", "/"},
		{"/card/user/alice", "/"},
	}

	ts := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := ts.get(tt.path)
			if rec.Code != http.StatusMovedPermanently {
				t.Errorf("status = %d, want 301", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != tt.want {
				t.Errorf("Location = %q, want %q", loc, tt.want)
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.get("/nowhere/at/all/really/deep")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "error" || body.Error == nil || body.Error.Message != "Not Found" {
		t.Errorf("body = %+v", body)
	}
}

func TestHealthLive(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.get("/modrinth/project/sodium")

	rec := ts.get("/health/live")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Status string              `json:"status"`
		Data   models.HealthStatus `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Data.Status)
	}
	if body.Data.Caches[artifactCache] != 1 {
		t.Errorf("artifact entries = %d, want 1", body.Data.Caches[artifactCache])
	}
}

func TestCORSAllowsEmbedding(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.get("/modrinth/project/sodium", "Origin", "https://example.com")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	ts := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		if rec := ts.get("/modrinth/project/sodium"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
	rec := ts.get("/modrinth/project/sodium")
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}

	// Health checks are not rate limited.
	if rec := ts.get("/health/live"); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	ts := newTestServer(t, cfg)

	for i := 0; i < 3; i++ {
		if rec := ts.get("/modrinth/project/sodium"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
}
