// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/metrics"
	"github.com/tomtom215/modfolio/internal/models"
)

const (
	cardWidth      = 450
	listTop        = 160
	rowHeight      = 50
	maxLoaderDots  = 6
	titleMaxRunes  = 22
	rowTitleRunes  = 18
	shownGameVers  = 3
	badgeDefault   = "#1bd96a"
	errorBadgeTint = "#f38ba8"
)

var statColumns = [3]int{15, 155, 270}

// Palette is the resolved color scheme of one card.
type Palette struct {
	Background string
	Text       string
	Accent     string
	Border     string
}

// NewPalette resolves theme and the optional custom colors. An empty accent
// falls back to the platform color and an empty background is transparent.
func NewPalette(theme, accent, background, platformColor string) Palette {
	p := Palette{Background: "none", Text: "#c9d1d9", Accent: platformColor, Border: "#E4E2E2"}
	if theme == "light" {
		p.Text = "#1e1e2e"
		p.Border = "#d0d7de"
	}
	if accent != "" {
		p.Accent = accent
	}
	if background != "" {
		p.Background = background
	}
	return p
}

type statCell struct {
	X     int
	Label string
	Value string
	Delay float64
}

type loaderDot struct {
	X, Y  int
	Color string
}

type projectRow struct {
	Top             int
	IconTop         int
	TitleY          int
	Y               int
	SecondY         int
	DownloadIconTop int
	SecondIconTop   int
	Title           string
	Icon            string
	Downloads       string
	Followers       string
	BarWidth        string
	Sparkline       Sparkline
	Loaders         []loaderDot
	Delay           float64
}

type versionRow struct {
	Top             int
	TitleY          int
	Y               int
	SecondY         int
	DownloadIconTop int
	SecondIconTop   int
	GameVersionsX   int
	Number          string
	GameVersions    string
	Date            string
	Downloads       string
	Loaders         []loaderDot
	Delay           float64
}

type cardView struct {
	Width, Height int
	Animations    bool
	Colors        Palette
	Sparkline     Sparkline
	PlatformGlyph string
	KindGlyph     string
	Title         string
	Avatar        string
	Stats         []statCell
	SectionTitle  string
	Projects      []projectRow
	Versions      []versionRow
	Footer        string
	FooterDelay   float64
}

type badgeView struct {
	Width, LabelWidth int
	LabelX, ValueX    string
	Label, Value      string
	Color             string
}

// Renderer turns collected data into SVG cards and badges.
type Renderer struct {
	version string
	now     func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the time source used for relative dates, sparklines and
// the footer timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithVersion sets the version printed in the card footer.
func WithVersion(v string) Option {
	return func(r *Renderer) { r.version = v }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{version: "dev", now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Card renders a stat card. opts controls list sections and colors; theme
// is "dark" or "light".
func (r *Renderer) Card(data *models.CardData, theme string, opts models.Options) (string, error) {
	start := time.Now()
	style := StyleFor(data.Entity.Platform)
	now := r.now()

	colors := NewPalette(theme, opts.Color, opts.BackgroundColor, style.DefaultColor)

	view := cardView{
		Width:         cardWidth,
		Animations:    true,
		Colors:        colors,
		Title:         Truncate(data.Entity.Name, titleMaxRunes),
		Avatar:        data.Entity.IconData,
		Footer:        fmt.Sprintf("v%s • %s", r.version, now.UTC().Format("Jan 2, 2006, 15:04")),
		Sparkline:     BuildSparkline(data.VersionDates, now, 420, 85),
		PlatformGlyph: fmt.Sprintf(style.Glyph, colors.Accent),
		KindGlyph:     kindGlyph(data.Entity.Kind, colors.Text),
	}

	for i, f := range style.Fields[data.Entity.Kind] {
		if i >= len(statColumns) {
			break
		}
		value := "N/A"
		if v, ok := data.Values[f.Field]; ok {
			value = FormatStat(f.Field, v)
		}
		view.Stats = append(view.Stats, statCell{X: statColumns[i], Label: f.Label, Value: value, Delay: float64(i) * 0.1})
	}

	rows := 0
	if data.Entity.Kind.IsList() {
		if opts.ShowProjects {
			view.SectionTitle = style.TopProjectsLabel
			view.Projects = projectRows(data.Stats.TopProjects, opts.MaxProjects, now)
			rows = len(view.Projects)
		}
	} else if opts.ShowVersions {
		view.SectionTitle = style.LatestVersionsLabel
		view.Versions = versionRows(data.Versions, opts.MaxVersions, now, opts.RelativeTime)
		rows = len(view.Versions)
	}

	view.Height = 130
	if rows > 0 {
		view.Height = 150 + rows*rowHeight
	}
	view.FooterDelay = 0.3 + float64(rows)*0.08

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "card", view); err != nil {
		return "", fmt.Errorf("render card: %w", err)
	}
	metrics.RecordRender("svg", time.Since(start))
	return buf.String(), nil
}

func kindGlyph(kind models.EntityKind, color string) string {
	key := string(kind)
	switch kind {
	case models.KindAuthor:
		key = "user"
	case models.KindResource:
		key = "project"
	}
	glyph, ok := kindGlyphs[key]
	if !ok {
		glyph = kindGlyphs["project"]
	}
	return fmt.Sprintf(glyph, color)
}

func projectRows(projects []models.Project, max int, now time.Time) []projectRow {
	if max > 0 && len(projects) > max {
		projects = projects[:max]
	}

	var total uint64
	for _, p := range projects {
		total += p.Downloads
	}

	rows := make([]projectRow, 0, len(projects))
	for i, p := range projects {
		y := listTop + i*rowHeight
		bar := 0.0
		if total > 0 {
			bar = float64(p.Downloads) / float64(total) * 420
		}
		rows = append(rows, projectRow{
			Top:             y - 18,
			IconTop:         y - 12,
			TitleY:          y - 2,
			Y:               y,
			SecondY:         y + 18,
			DownloadIconTop: y - 12,
			SecondIconTop:   y + 6,
			Title:           Truncate(p.Title, rowTitleRunes),
			Icon:            p.IconData,
			Downloads:       FormatNumber(float64(p.Downloads)),
			Followers:       FormatNumber(float64(p.Followers)),
			BarWidth:        formatCoord(bar),
			Sparkline:       BuildSparkline(p.VersionDates, now, 252, 30),
			Loaders:         loaderDots(p.Loaders, 60, y+10),
			Delay:           0.2 + float64(i)*0.08,
		})
	}
	return rows
}

func versionRows(versions []models.Version, max int, now time.Time, relative bool) []versionRow {
	if max > 0 && len(versions) > max {
		versions = versions[:max]
	}

	rows := make([]versionRow, 0, len(versions))
	for i, v := range versions {
		y := listTop + i*rowHeight
		gameVersions := v.GameVersions
		text := strings.Join(truncateList(gameVersions, shownGameVers), ", ")
		if len(gameVersions) > shownGameVers {
			text += "..."
		}
		dots := loaderDots(v.Loaders, 26, y+10)
		number := v.Number
		if number == "" {
			number = v.Name
		}
		rows = append(rows, versionRow{
			Top:             y - 18,
			TitleY:          y - 2,
			Y:               y,
			SecondY:         y + 15,
			DownloadIconTop: y - 12,
			SecondIconTop:   y + 6,
			GameVersionsX:   20 + len(dots)*14 + 8,
			Number:          Truncate(number, rowTitleRunes),
			GameVersions:    text,
			Date:            FormatDate(v.DatePublished, now, relative),
			Downloads:       FormatNumber(float64(v.Downloads)),
			Loaders:         dots,
			Delay:           0.3 + float64(i)*0.08,
		})
	}
	return rows
}

func truncateList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func loaderDots(loaders []string, x0, y int) []loaderDot {
	n := len(loaders)
	if n > maxLoaderDots {
		n = maxLoaderDots
	}
	dots := make([]loaderDot, n)
	for i := 0; i < n; i++ {
		dots[i] = loaderDot{X: x0 + i*14, Y: y, Color: LoaderColor(loaders[i])}
	}
	return dots
}

// Badge renders a label/value badge. An empty color uses the default green.
func (r *Renderer) Badge(label, value, color string) (string, error) {
	if color == "" {
		color = badgeDefault
	}
	labelWidth := len([]rune(label))*7 + 20
	valueWidth := len([]rune(value))*8 + 20
	view := badgeView{
		Width:      labelWidth + valueWidth,
		LabelWidth: labelWidth,
		LabelX:     formatCoord(float64(labelWidth) / 2),
		ValueX:     formatCoord(float64(labelWidth) + float64(valueWidth)/2),
		Label:      label,
		Value:      value,
		Color:      color,
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "badge", view); err != nil {
		return "", fmt.Errorf("render badge: %w", err)
	}
	return buf.String(), nil
}

// StatBadge renders the badge for collected badge data.
func (r *Renderer) StatBadge(data *models.BadgeData, color string) (string, error) {
	return r.Badge(StatLabel(data.Platform, data.Stat), FormatStat(data.Stat, data.Value), color)
}

// ErrorCard renders the failure card shown in place of a stat card.
func (r *Renderer) ErrorCard(message, theme string) string {
	view := struct{ Background, Foreground, Message string }{"#1e1e2e", "#f38ba8", message}
	if theme == "light" {
		view.Background, view.Foreground = "#ffffff", "#d20f39"
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "error-card", view); err != nil {
		logging.Error().Err(err).Msg("Failed to render error card")
		return fallbackSVG
	}
	return buf.String()
}

// ErrorBadge renders the failure badge shown in place of a stat badge.
func (r *Renderer) ErrorBadge(message string) string {
	svg, err := r.Badge("error", message, errorBadgeTint)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to render error badge")
		return fallbackSVG
	}
	return svg
}

// PNG rasterizes svg and records how long it took.
func (r *Renderer) PNG(svg string) ([]byte, error) {
	start := time.Now()
	out, err := ToPNG(svg)
	if err != nil {
		return nil, err
	}
	metrics.RecordRender("png", time.Since(start))
	return out, nil
}

const fallbackSVG = `<svg width="1" height="1" viewBox="0 0 1 1" xmlns="http://www.w3.org/2000/svg"/>`
