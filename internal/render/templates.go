// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package render

import (
	"fmt"
	"text/template"
)

// Templates are not auto-escaped. User-supplied text must pass through xml.
var templates = template.Must(template.New("render").Funcs(template.FuncMap{
	"xml":     EscapeXML,
	"sub":     func(a, b int) int { return a - b },
	"animate": animate,
}).Parse(cardTemplate + badgeTemplate + errorCardTemplate))

// animate returns the class and delay attributes of an animated element.
func animate(on bool, class string, delay float64) string {
	if !on {
		return ""
	}
	return fmt.Sprintf(` class="%s" style="animation-delay: %ss"`, class, formatCoord(delay))
}

const cardStyle = `
  <style>
    @keyframes fadeIn { from { opacity: 0; } to { opacity: 1; } }
    @keyframes slideIn { from { transform: translateX(-10px); opacity: 0; } to { transform: translateX(0); opacity: 1; } }
    @keyframes slideDown { from { transform: translateY(-10px); opacity: 0; } to { transform: translateY(0); opacity: 1; } }
    @keyframes draw { from { stroke-dashoffset: 1000; } to { stroke-dashoffset: 0; } }
    .sparkline { stroke-dasharray: 1000; animation: draw 1s ease-out forwards; }
    .section-header, .fade-in { opacity: 0; animation: fadeIn 0.5s ease-out forwards; }
    .list-item { opacity: 0; animation: slideIn 0.4s ease-out forwards; }
    .stat { opacity: 0; animation: slideDown 0.25s ease-out forwards; }
    .avatar { opacity: 0; animation: fadeIn 0.4s ease-out forwards; }
  </style>`

const cardTemplate = `{{define "card"}}<svg width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}" xmlns="http://www.w3.org/2000/svg">
{{- if .Animations}}` + cardStyle + `{{end}}
  <defs>
    <clipPath id="card_clip">
      <rect width="{{.Width}}" height="{{.Height}}" rx="4.5"/>
    </clipPath>
  </defs>
  <g clip-path="url(#card_clip)">
    <rect stroke="{{.Colors.Border}}" fill="{{.Colors.Background}}" rx="4.5" x="0.5" y="0.5" width="{{sub .Width 1}}" height="{{sub .Height 1}}"/>
    <g transform="translate(15, 20)">
      <path d="{{.Sparkline.Line}}" fill="none" stroke="{{.Colors.Accent}}" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" opacity="0.4"{{if .Animations}} class="sparkline"{{end}}/>
      <path d="{{.Sparkline.Fill}}" fill="{{.Colors.Accent}}" opacity="0.1"/>
    </g>
    <g transform="translate(15, 15)">{{.PlatformGlyph}}</g>
    <g transform="translate(39, 15)">
      <path d="M9 6 L15 12 L9 18" fill="none" stroke="{{.Colors.Text}}" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>
    </g>
    <g transform="translate(58, 15)">{{.KindGlyph}}</g>
    <text x="87" y="35" font-family="Inter, sans-serif" font-size="20" font-weight="bold" fill="{{.Colors.Text}}">{{xml .Title}}</text>
{{- if .Avatar}}
    <defs>
      <clipPath id="avatar_clip">
        <circle cx="400" cy="60" r="35"/>
      </clipPath>
    </defs>
    <image x="365" y="25" width="70" height="70" href="{{.Avatar}}" clip-path="url(#avatar_clip)"{{animate .Animations "avatar" 0}}/>
{{- end}}
{{- range $i, $s := .Stats}}
    <g transform="translate({{$s.X}}, 70)">
      <text font-family="Inter, sans-serif" font-size="26" font-weight="bold" fill="{{$.Colors.Accent}}"{{animate $.Animations "stat" $s.Delay}}>{{xml $s.Value}}</text>
      <text y="20" font-family="Inter, sans-serif" font-size="12" fill="{{$.Colors.Text}}"{{animate $.Animations "stat" $s.Delay}}>{{xml $s.Label}}</text>
    </g>
{{- end}}
    <line x1="15" y1="110" x2="435" y2="110" stroke="{{.Colors.Border}}" stroke-width="1"/>
{{- if or .Projects .Versions}}
    <text x="15" y="130" font-family="Inter, sans-serif" font-size="14" font-weight="600" fill="{{.Colors.Text}}"{{animate .Animations "section-header" 0.1}}>{{xml .SectionTitle}}</text>
{{- end}}
{{- range .Projects}}
    <g{{animate $.Animations "list-item" .Delay}}>
      <rect x="15" y="{{.Top}}" width="420" height="40" fill="none" stroke="{{$.Colors.Border}}" stroke-width="1" rx="6"/>
      <g transform="translate(99, {{.Top}})">
        <path d="{{.Sparkline.Line}}" fill="none" stroke="{{$.Colors.Accent}}" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" opacity="0.4"/>
        <path d="{{.Sparkline.Fill}}" fill="{{$.Colors.Accent}}" opacity="0.1"/>
      </g>
      <rect x="15.5" y="{{.Top}}" width="{{.BarWidth}}" height="3" fill="{{$.Colors.Accent}}"/>
{{- if .Icon}}
      <image x="20" y="{{.IconTop}}" width="28" height="28" href="{{.Icon}}"/>
{{- else}}
      <rect x="20" y="{{.IconTop}}" width="28" height="28" fill="none" stroke="{{$.Colors.Border}}" stroke-width="1" rx="4"/>
{{- end}}
      <text x="54" y="{{.TitleY}}" font-family="Inter, sans-serif" font-size="13" font-weight="600" fill="{{$.Colors.Text}}">{{xml .Title}}</text>
{{- range .Loaders}}
      <circle cx="{{.X}}" cy="{{.Y}}" r="5" fill="{{.Color}}"/>
{{- end}}
      <text x="380" y="{{.Y}}" font-family="Inter, sans-serif" font-size="11" fill="{{$.Colors.Text}}" text-anchor="end">{{.Downloads}}</text>
      <g transform="translate(385, {{.DownloadIconTop}}) scale(0.5833)">` + downloadGlyph + `</g>
      <text x="380" y="{{.SecondY}}" font-family="Inter, sans-serif" font-size="11" fill="{{$.Colors.Text}}" text-anchor="end">{{.Followers}}</text>
      <g transform="translate(385, {{.SecondIconTop}}) scale(0.5833)">` + heartGlyph + `</g>
    </g>
{{- end}}
{{- range .Versions}}
    <g{{animate $.Animations "list-item" .Delay}}>
      <rect x="15" y="{{.Top}}" width="420" height="40" fill="none" stroke="{{$.Colors.Border}}" stroke-width="1" rx="6"/>
      <text x="20" y="{{.TitleY}}" font-family="Inter, sans-serif" font-size="13" font-weight="600" fill="{{$.Colors.Text}}">{{xml .Number}}</text>
{{- range .Loaders}}
      <circle cx="{{.X}}" cy="{{.Y}}" r="5" fill="{{.Color}}"/>
{{- end}}
      <text x="{{.GameVersionsX}}" y="{{.SecondY}}" font-family="Inter, sans-serif" font-size="12" fill="{{$.Colors.Text}}">{{xml .GameVersions}}</text>
      <text x="410" y="{{.Y}}" font-family="Inter, sans-serif" font-size="11" fill="{{$.Colors.Text}}" text-anchor="end">{{xml .Date}}</text>
      <g transform="translate(415, {{.DownloadIconTop}}) scale(0.5833)">` + calendarGlyph + `</g>
      <text x="410" y="{{.SecondY}}" font-family="Inter, sans-serif" font-size="11" fill="{{$.Colors.Text}}" text-anchor="end">{{.Downloads}}</text>
      <g transform="translate(415, {{.SecondIconTop}}) scale(0.5833)">` + downloadGlyph + `</g>
    </g>
{{- end}}
    <text x="15" y="{{sub .Height 5}}" font-family="Inter, sans-serif" font-size="10" fill="{{.Colors.Text}}"{{animate .Animations "fade-in" .FooterDelay}}>{{xml .Footer}}</text>
    <text x="435" y="{{sub .Height 5}}" font-family="Inter, sans-serif" font-size="10" fill="{{.Colors.Text}}" text-anchor="end"{{animate .Animations "fade-in" .FooterDelay}}>modfolio</text>
  </g>
</svg>{{end}}`

const badgeTemplate = `{{define "badge"}}<svg width="{{.Width}}" height="20" viewBox="0 0 {{.Width}} 20" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <clipPath id="badge_clip">
      <rect width="{{.Width}}" height="20" rx="4.5"/>
    </clipPath>
  </defs>
  <g clip-path="url(#badge_clip)">
    <rect stroke="#E4E2E2" fill="none" rx="4.5" x="0.5" y="0.5" width="{{sub .Width 1}}" height="19"/>
    <path d="M5 1 H{{.LabelWidth}} V19 H5 C2.5 19 1 17.5 1 15 V5 C1 2.5 2.5 1 5 1 Z" fill="#8b949e"/>
    <path d="M{{sub .LabelWidth 1}} 1 H{{sub .Width 5}} C{{sub .Width 2}} 1 {{sub .Width 1}} 2.5 {{sub .Width 1}} 5 V15 C{{sub .Width 1}} 17.5 {{sub .Width 2}} 19 {{sub .Width 5}} 19 H{{sub .LabelWidth 1}} Z" fill="{{.Color}}"/>
  </g>
  <g fill="#ffffff" text-anchor="middle" font-family="Inter, sans-serif" font-size="11" font-weight="500">
    <text x="{{.LabelX}}" y="14.5">{{xml .Label}}</text>
    <text x="{{.ValueX}}" y="14.5">{{xml .Value}}</text>
  </g>
</svg>{{end}}`

const errorCardTemplate = `{{define "error-card"}}<svg width="450" height="120" viewBox="0 0 450 120" xmlns="http://www.w3.org/2000/svg">
  <rect x="1" y="1" width="448" height="118" fill="{{.Background}}" rx="10" stroke="{{.Foreground}}" stroke-width="2"/>
  <text x="225" y="50" text-anchor="middle" font-family="Inter, sans-serif" font-size="18" font-weight="bold" fill="{{.Foreground}}">Error</text>
  <text x="225" y="80" text-anchor="middle" font-family="Inter, sans-serif" font-size="14" fill="{{.Foreground}}">{{xml .Message}}</text>
</svg>{{end}}`

// Glyphs share a 24x24 grid; templates scale them into place.
const (
	downloadGlyph = `<path d="M12 3 V15 M7 10 L12 15 L17 10 M5 21 H19" fill="none" stroke="{{$.Colors.Text}}" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`
	heartGlyph    = `<path d="M12 20 L4 12 C2 9 4 5 8 5 C10 5 11 6 12 8 C13 6 14 5 16 5 C20 5 22 9 20 12 Z" fill="none" stroke="{{$.Colors.Text}}" stroke-width="2" stroke-linejoin="round"/>`
	calendarGlyph = `<path d="M4 6 H20 V20 H4 Z M4 10 H20 M8 3 V7 M16 3 V7" fill="none" stroke="{{$.Colors.Text}}" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`
)

// kindGlyphs are the entity marks beside the card title; %[1]s is the
// stroke color.
var kindGlyphs = map[string]string{
	"user":         `<circle cx="12" cy="8" r="4" fill="none" stroke="%[1]s" stroke-width="2"/><path d="M4 21 C4 16 8 14 12 14 C16 14 20 16 20 21" fill="none" stroke="%[1]s" stroke-width="2" stroke-linecap="round"/>`,
	"project":      `<path d="M3 7 L12 2 L21 7 V17 L12 22 L3 17 Z M3 7 L12 12 L21 7 M12 12 V22" fill="none" stroke="%[1]s" stroke-width="2" stroke-linejoin="round"/>`,
	"organization": `<path d="M4 21 V3 H14 V21 M14 9 H20 V21 M2 21 H22 M8 7 H10 M8 11 H10 M8 15 H10" fill="none" stroke="%[1]s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`,
	"collection":   `<path d="M4 5 H20 V9 H4 Z M6 9 V19 H18 V9 M10 13 H14" fill="none" stroke="%[1]s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`,
}
