// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/modfolio/internal/models"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestRenderer() *Renderer {
	return New(WithClock(func() time.Time { return testNow }), WithVersion("1.2.3"))
}

func projectCard(versions int) *models.CardData {
	data := &models.CardData{
		Entity: models.Entity{
			Platform: models.PlatformModrinth,
			Kind:     models.KindProject,
			ID:       "AANobbMI",
			Name:     "Sodium",
		},
		Values: map[string]float64{
			models.FieldDownloads:    1234,
			models.FieldFollowers:    56,
			models.FieldVersionCount: float64(versions),
		},
	}
	for i := 0; i < versions; i++ {
		data.Versions = append(data.Versions, models.Version{
			Number:        "mc1.21-0.6." + string(rune('0'+i)),
			DatePublished: testNow.Add(-time.Duration(i+1) * 24 * time.Hour),
			Loaders:       []string{"fabric", "neoforge"},
			GameVersions:  []string{"1.21", "1.21.1", "1.21.2", "1.21.3"},
			Downloads:     uint64(1000 * (i + 1)),
		})
		data.VersionDates = append(data.VersionDates, data.Versions[i].DatePublished)
	}
	return data
}

func TestCardProject(t *testing.T) {
	r := newTestRenderer()
	opts := models.DefaultOptions()
	opts.MaxVersions = 2

	svg, err := r.Card(projectCard(4), "dark", opts)
	if err != nil {
		t.Fatalf("Card() error = %v", err)
	}

	for _, want := range []string{
		">Sodium</text>",
		">1.2K</text>",
		">Downloads</text>",
		">Latest Versions</text>",
		`height="250"`,
		"1.21, 1.21.1, 1.21.2...",
		"1 day ago",
		"v1.2.3 • Mar 10, 2026, 12:00",
		"#1bd96a",
		"#dc895c",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("card missing %q", want)
		}
	}
	if got := strings.Count(svg, `class="list-item"`); got != 2 {
		t.Errorf("card has %d version rows, want 2", got)
	}
}

func TestCardHidesVersions(t *testing.T) {
	r := newTestRenderer()
	opts := models.DefaultOptions()
	opts.ShowVersions = false

	svg, err := r.Card(projectCard(3), "light", opts)
	if err != nil {
		t.Fatalf("Card() error = %v", err)
	}
	if !strings.Contains(svg, `height="130"`) {
		t.Error("card without sections should be 130 high")
	}
	if strings.Contains(svg, "Latest Versions") {
		t.Error("versions section rendered although disabled")
	}
	if !strings.Contains(svg, "#1e1e2e") {
		t.Error("light theme text color missing")
	}
}

func TestCardList(t *testing.T) {
	r := newTestRenderer()
	data := &models.CardData{
		Entity: models.Entity{Platform: models.PlatformSpigot, Kind: models.KindAuthor, Name: "md_5"},
		Stats: models.AggregatedStats{
			TopProjects: []models.Project{
				{Title: "BungeeCord", Downloads: 3000, Followers: 10},
				{Title: "SpigotMC Extras", Downloads: 1000, Followers: 2},
				{Title: "Third", Downloads: 10},
			},
		},
		Values: map[string]float64{
			models.FieldTotalDownloads: 4010,
			models.FieldResourceCount:  3,
		},
	}
	opts := models.DefaultOptions()
	opts.MaxProjects = 2

	svg, err := r.Card(data, "dark", opts)
	if err != nil {
		t.Fatalf("Card() error = %v", err)
	}

	for _, want := range []string{">Top Resources</text>", ">BungeeCord</text>", ">Resources</text>", ">N/A</text>", `height="250"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("card missing %q", want)
		}
	}
	if strings.Contains(svg, ">Third</text>") {
		t.Error("card shows more projects than maxProjects")
	}
	// Download share bar of the first of two projects: 3000/4000 of 420.
	if !strings.Contains(svg, `width="315"`) {
		t.Error("download share bar missing or wrong width")
	}
}

func TestCardEscapesText(t *testing.T) {
	r := newTestRenderer()
	data := projectCard(0)
	data.Entity.Name = `<script>"x"</script>`

	svg, err := r.Card(data, "dark", models.DefaultOptions())
	if err != nil {
		t.Fatalf("Card() error = %v", err)
	}
	if strings.Contains(svg, "<script>") {
		t.Error("entity name was not escaped")
	}
	if !strings.Contains(svg, "&lt;script&gt;") {
		t.Error("escaped entity name missing")
	}
}

func TestCardCustomColors(t *testing.T) {
	r := newTestRenderer()
	opts := models.DefaultOptions()
	opts.Color = "#ff0000"
	opts.BackgroundColor = "#101010"

	svg, err := r.Card(projectCard(1), "dark", opts)
	if err != nil {
		t.Fatalf("Card() error = %v", err)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, `fill="#101010"`) {
		t.Error("custom colors not applied")
	}
}

func TestBadge(t *testing.T) {
	r := newTestRenderer()

	svg, err := r.Badge("downloads", "1.2K", "")
	if err != nil {
		t.Fatalf("Badge() error = %v", err)
	}
	// 9*7+20 + 4*8+20
	if !strings.Contains(svg, `width="135"`) {
		t.Error("badge width wrong")
	}
	if !strings.Contains(svg, badgeDefault) {
		t.Error("badge default color missing")
	}
}

func TestStatBadge(t *testing.T) {
	r := newTestRenderer()
	svg, err := r.StatBadge(&models.BadgeData{
		Platform: models.PlatformCurseForge,
		Stat:     models.StatRank,
		Value:    42,
	}, "#F16436")
	if err != nil {
		t.Fatalf("StatBadge() error = %v", err)
	}
	if !strings.Contains(svg, ">Rank</text>") || !strings.Contains(svg, ">#42</text>") {
		t.Errorf("unexpected badge: %s", svg)
	}
}

func TestErrorArtifacts(t *testing.T) {
	r := newTestRenderer()

	card := r.ErrorCard("Project not found", "light")
	if !strings.Contains(card, "Project not found") || !strings.Contains(card, "#d20f39") {
		t.Errorf("unexpected error card: %s", card)
	}

	badge := r.ErrorBadge("Rate limit exceeded")
	if !strings.Contains(badge, ">error</text>") || !strings.Contains(badge, errorBadgeTint) {
		t.Errorf("unexpected error badge: %s", badge)
	}
}

func TestNotFoundMessage(t *testing.T) {
	if got := NotFoundMessage(models.PlatformSpigot, models.KindAuthor); got != "Author not found" {
		t.Errorf("NotFoundMessage() = %q", got)
	}
	if got := NotFoundMessage("unknown", models.KindUser); got != "Resource not found" {
		t.Errorf("NotFoundMessage() fallback = %q", got)
	}
}

func TestPNGBadge(t *testing.T) {
	r := newTestRenderer()
	svg, err := r.Badge("downloads", "1.2K", "")
	if err != nil {
		t.Fatalf("Badge() error = %v", err)
	}

	out, err := r.PNG(svg)
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("output is not a PNG")
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 135 || cfg.Height != 20 {
		t.Errorf("PNG size = %dx%d, want 135x20", cfg.Width, cfg.Height)
	}
}

func TestPNGCardDrawsAvatar(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 255, 255
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	data := projectCard(0)
	data.Entity.IconData = "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	r := newTestRenderer()
	svg, err := r.Card(data, "dark", models.DefaultOptions())
	if err != nil {
		t.Fatalf("Card() error = %v", err)
	}
	out, err := ToPNG(svg)
	if err != nil {
		t.Fatalf("ToPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 450 || b.Dy() != 130 {
		t.Fatalf("PNG size = %dx%d, want 450x130", b.Dx(), b.Dy())
	}

	center := color.RGBAModel.Convert(img.At(400, 60)).(color.RGBA)
	if center.R < 200 || center.A != 255 {
		t.Errorf("avatar center = %+v, want opaque red", center)
	}
	corner := color.RGBAModel.Convert(img.At(367, 27)).(color.RGBA)
	if corner.A != 0 {
		t.Errorf("avatar corner = %+v, want it masked out", corner)
	}
}

func TestPNGRejectsEmptySVG(t *testing.T) {
	if _, err := ToPNG(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`); err == nil {
		t.Error("expected an error for an svg without dimensions")
	}
}

func TestSanitizeSVG(t *testing.T) {
	in := `<svg><style>.a{}</style><defs><clipPath id="c"/></defs><g clip-path="url(#c)" class="x"><text x="1">hi</text><image href="data:x"/><rect/></g></svg>`
	want := `<svg><g><rect/></g></svg>`
	if got := sanitizeSVG(in); got != want {
		t.Errorf("sanitizeSVG() = %q, want %q", got, want)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}, true},
		{"#f00", color.RGBA{255, 0, 0, 255}, true},
		{"1bd96a", color.RGBA{0x1b, 0xd9, 0x6a, 255}, true},
		{"none", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := parseHexColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
