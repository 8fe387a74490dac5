package render

import (
	"fmt"
	"math"
	"strings"

	"cad-engine/internal/engine/geometry"
)

// ============================================================
// Vector Rendering Converter
// ============================================================

// Fixed per-layer palette; entities on unknown layers render gray.
var layerColors = map[geometry.Layer]string{
	geometry.LayerTopView:     "#e2e8f0",
	geometry.LayerFrontView:   "#93c5fd",
	geometry.LayerSideView:    "#22d3ee",
	geometry.LayerDimensions:  "#f87171",
	geometry.LayerAnnotations: "#4ade80",
	geometry.LayerCenterLines: "#fbbf24",
}

const defaultColor = "#cbd5e1"

// EmptySceneSVG is the placeholder emitted when there is nothing to
// render. An empty scene is a defined output, not an error.
const EmptySceneSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text x="10" y="50" fill="#999">No preview</text></svg>`

// SVG renders an entity list into a self-contained vector markup
// string. The padded bounding box becomes the viewBox; width and
// height only size the rendering surface. The drawing coordinate
// system is Y-up, so the whole scene is flipped vertically, with a
// local inverse flip per text so glyphs stay upright. The output is
// deterministic: identical input yields byte-identical markup.
func SVG(entities []geometry.Entity, width, height int) string {
	minX, minY, maxX, maxY, ok := bounds(entities)
	if !ok {
		return EmptySceneSVG
	}

	dataW := maxX - minX
	if dataW == 0 {
		dataW = 1
	}
	dataH := maxY - minY
	if dataH == 0 {
		dataH = 1
	}
	padding := math.Max(dataW, dataH) * 0.1

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%d" height="%d" style="background:#0f172a;border-radius:12px;">`,
		minX-padding, minY-padding, dataW+padding*2, dataH+padding*2, width, height))
	b.WriteString("\n")

	// Flip the Y axis: drawing Y goes up, SVG Y goes down.
	b.WriteString(fmt.Sprintf(`<g transform="translate(0, %.1f) scale(1, -1)">`, minY+maxY))
	b.WriteString("\n")

	for _, e := range entities {
		b.WriteString(renderEntity(e))
		b.WriteString("\n")
	}

	b.WriteString("</g>\n</svg>")
	return b.String()
}

// ArcFlags derives the SVG arc flags purely from the two angles in
// degrees: sweep is set when the arc runs counter-clockwise (end past
// start), largeArc when the swept angle exceeds 180 degrees.
func ArcFlags(startAngle, endAngle float64) (sweep, largeArc int) {
	if endAngle > startAngle {
		sweep = 1
	}
	if math.Abs(endAngle-startAngle) > 180 {
		largeArc = 1
	}
	return sweep, largeArc
}

// ============================================================
// Entity renderers
// ============================================================

func renderEntity(e geometry.Entity) string {
	color := layerColor(e.EntityLayer())
	strokeW := strokeWidth(e.EntityLayer())

	switch v := e.(type) {
	case geometry.Polyline:
		var pts []string
		for _, p := range v.Points {
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		}
		tag := "polyline"
		if v.Closed {
			tag = "polygon"
		}
		return fmt.Sprintf(`<%s points="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
			tag, strings.Join(pts, " "), color, strokeW)

	case geometry.Line:
		return fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%s"/>`,
			v.Start.X, v.Start.Y, v.End.X, v.End.Y, color, strokeW)

	case geometry.Circle:
		return fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%s"/>`,
			v.Center.X, v.Center.Y, v.Radius, color, strokeW)

	case geometry.Arc:
		sa := v.StartAngle * math.Pi / 180
		ea := v.EndAngle * math.Pi / 180
		x1 := v.Center.X + v.Radius*math.Cos(sa)
		y1 := v.Center.Y + v.Radius*math.Sin(sa)
		x2 := v.Center.X + v.Radius*math.Cos(ea)
		y2 := v.Center.Y + v.Radius*math.Sin(ea)
		sweep, large := ArcFlags(v.StartAngle, v.EndAngle)
		return fmt.Sprintf(`<path d="M %.1f %.1f A %.1f %.1f 0 %d %d %.1f %.1f" fill="none" stroke="%s" stroke-width="%s"/>`,
			x1, y1, v.Radius, v.Radius, large, sweep, x2, y2, color, strokeW)

	case geometry.Text:
		fontSize := math.Max(v.Height*0.8, 3)
		// A second local flip keeps the glyphs upright.
		return fmt.Sprintf(`<g transform="translate(%.1f,%.1f) scale(1,-1)"><text font-size="%.1f" fill="%s" font-family="monospace">%s</text></g>`,
			v.Position.X, v.Position.Y, fontSize, color, escapeText(v.Content))
	}
	return ""
}

func layerColor(layer geometry.Layer) string {
	if color, ok := layerColors[layer]; ok {
		return color
	}
	return defaultColor
}

// Dimension entities draw at half stroke weight.
func strokeWidth(layer geometry.Layer) string {
	if layer == geometry.LayerDimensions {
		return "0.5"
	}
	return "1"
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// ============================================================
// Bounds
// ============================================================

// bounds computes the tight bounding box over every coordinate that an
// entity references. Circle and arc bounds use center +/- radius.
func bounds(entities []geometry.Entity) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64

	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
		ok = true
	}

	for _, e := range entities {
		switch v := e.(type) {
		case geometry.Polyline:
			for _, p := range v.Points {
				grow(p.X, p.Y)
			}
		case geometry.Line:
			grow(v.Start.X, v.Start.Y)
			grow(v.End.X, v.End.Y)
		case geometry.Circle:
			grow(v.Center.X-v.Radius, v.Center.Y-v.Radius)
			grow(v.Center.X+v.Radius, v.Center.Y+v.Radius)
		case geometry.Arc:
			grow(v.Center.X-v.Radius, v.Center.Y-v.Radius)
			grow(v.Center.X+v.Radius, v.Center.Y+v.Radius)
		case geometry.Text:
			grow(v.Position.X, v.Position.Y)
		}
	}
	return minX, minY, maxX, maxY, ok
}
