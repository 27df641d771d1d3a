// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/tomtom215/modfolio/internal/images"
)

// maxRasterSide bounds the pixel dimensions of a rasterized image.
const maxRasterSide = 4096

// ErrEmptySVG is returned when the document has no usable dimensions.
var ErrEmptySVG = errors.New("svg has no dimensions")

// Elements and attributes the vector rasterizer does not understand. Text
// and images are drawn in a second pass; styles only carry animations.
var (
	stripBlocks = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<style[^>]*>.*?</style>`),
		regexp.MustCompile(`(?s)<defs[^>]*>.*?</defs>`),
		regexp.MustCompile(`(?s)<text[^>]*>.*?</text>`),
		regexp.MustCompile(`(?s)<image[^>]*/>`),
	}
	stripAttrs  = regexp.MustCompile(`\s(?:class|style|clip-path)="[^"]*"`)
	translateRe = regexp.MustCompile(`translate\(\s*(-?[\d.]+)[\s,]+(-?[\d.]+)\s*\)`)
)

// ToPNG rasterizes an SVG document produced by this package. Shapes go
// through oksvg; text is drawn with the Go fonts and embedded data URI
// images are decoded and scaled into place.
func ToPNG(svg string) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(sanitizeSVG(svg)), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		return nil, ErrEmptySVG
	}
	if w > maxRasterSide || h > maxRasterSide {
		return nil, fmt.Errorf("svg too large: %dx%d", w, h)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	if err := drawOverlay(canvas, svg); err != nil {
		return nil, fmt.Errorf("draw text: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func sanitizeSVG(svg string) string {
	for _, re := range stripBlocks {
		svg = re.ReplaceAllString(svg, "")
	}
	return stripAttrs.ReplaceAllString(svg, "")
}

// drawState is the inherited presentation state of one element.
type drawState struct {
	dx, dy   float64
	fill     string
	fontSize float64
	bold     bool
	anchor   string
}

func (s drawState) apply(attrs []xml.Attr) drawState {
	for _, a := range attrs {
		switch a.Name.Local {
		case "transform":
			if m := translateRe.FindStringSubmatch(a.Value); m != nil {
				s.dx += parseFloat(m[1])
				s.dy += parseFloat(m[2])
			}
		case "fill":
			s.fill = a.Value
		case "font-size":
			if v := parseFloat(a.Value); v > 0 {
				s.fontSize = v
			}
		case "font-weight":
			s.bold = isBold(a.Value)
		case "text-anchor":
			s.anchor = a.Value
		}
	}
	return s
}

// drawOverlay walks the original document and paints the text and image
// elements that were stripped before rasterization.
func drawOverlay(dst *image.RGBA, svg string) error {
	dec := xml.NewDecoder(strings.NewReader(svg))
	stack := []drawState{{fill: "#000000", fontSize: 16, anchor: "start"}}
	faces := faceSet{}

	var (
		inText   bool
		textAttr []xml.Attr
		text     strings.Builder
		skip     int
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skip > 0 || t.Name.Local == "defs" || t.Name.Local == "style" {
				skip++
				continue
			}
			state := stack[len(stack)-1].apply(t.Attr)
			stack = append(stack, state)

			switch t.Name.Local {
			case "text":
				inText = true
				textAttr = t.Attr
				text.Reset()
			case "image":
				drawImage(dst, state, t.Attr)
			}

		case xml.CharData:
			if inText && skip == 0 {
				text.Write(t)
			}

		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			if t.Name.Local == "text" && inText {
				drawText(dst, faces, stack[len(stack)-1], textAttr, strings.TrimSpace(text.String()))
				inText = false
			}
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

func drawText(dst *image.RGBA, faces faceSet, s drawState, attrs []xml.Attr, text string) {
	if text == "" || s.fill == "none" {
		return
	}
	fill, ok := parseHexColor(s.fill)
	if !ok {
		return
	}

	face, err := faces.get(s.fontSize, s.bold)
	if err != nil {
		return
	}

	x := s.dx + attrFloat(attrs, "x")
	y := s.dy + attrFloat(attrs, "y")
	width := float64(font.MeasureString(face, text)) / 64
	switch s.anchor {
	case "middle":
		x -= width / 2
	case "end":
		x -= width
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}

func drawImage(dst *image.RGBA, s drawState, attrs []xml.Attr) {
	href := attrString(attrs, "href")
	if !strings.HasPrefix(href, "data:") {
		return
	}
	src, err := images.DecodeDataURI(href)
	if err != nil {
		return
	}

	x := s.dx + attrFloat(attrs, "x")
	y := s.dy + attrFloat(attrs, "y")
	w := attrFloat(attrs, "width")
	h := attrFloat(attrs, "height")
	if w <= 0 || h <= 0 {
		return
	}
	rect := image.Rect(int(x), int(y), int(math.Round(x+w)), int(math.Round(y+h)))

	scaled := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	var mask image.Image
	if attrString(attrs, "clip-path") != "" {
		mask = circleMask{r: float64(rect.Dx()) / 2}
	}
	xdraw.DrawMask(dst, rect, scaled, image.Point{}, mask, image.Point{}, xdraw.Over)
}

// circleMask is an alpha mask of the disc inscribed in a 2r square at the
// origin.
type circleMask struct{ r float64 }

func (c circleMask) ColorModel() color.Model { return color.AlphaModel }

func (c circleMask) Bounds() image.Rectangle {
	d := int(math.Ceil(2 * c.r))
	return image.Rect(0, 0, d, d)
}

func (c circleMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - c.r
	dy := float64(y) + 0.5 - c.r
	if dx*dx+dy*dy <= c.r*c.r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

var (
	fontsOnce   sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontsErr    error
)

type faceKey struct {
	size float64
	bold bool
}

// faceSet holds the faces of one rasterization. Faces keep scratch buffers
// and must not be shared between goroutines; the parsed fonts can be.
type faceSet map[faceKey]font.Face

func (fs faceSet) get(size float64, bold bool) (font.Face, error) {
	key := faceKey{size: size, bold: bold}
	if f, ok := fs[key]; ok {
		return f, nil
	}

	fontsOnce.Do(func() {
		if regularFont, fontsErr = opentype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
	})
	if fontsErr != nil {
		return nil, fontsErr
	}

	src := regularFont
	if bold {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	fs[key] = face
	return face, nil
}

func isBold(weight string) bool {
	if weight == "bold" || weight == "bolder" {
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

// parseHexColor parses #rgb and #rrggbb.
func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

func attrString(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func attrFloat(attrs []xml.Attr, name string) float64 {
	return parseFloat(attrString(attrs, name))
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil {
		return 0
	}
	return v
}
