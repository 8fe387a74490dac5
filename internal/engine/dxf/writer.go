package dxf

import (
	"fmt"
	"io"
	"strings"

	"cad-engine/internal/engine/geometry"
)

// ============================================================
// DXF Writer
// ============================================================

// Encode serializes a drawing as an ASCII DXF document (AC1015): a
// minimal header, the six fixed layers with their ACI colors, and one
// entity record per drawing entity in z-order. Layer names and entity
// shapes are the stable contract; everything else is boilerplate a CAD
// application tolerates.
func Encode(d *geometry.Drawing) string {
	var b strings.Builder

	// Header.
	tag(&b, 0, "SECTION")
	tag(&b, 2, "HEADER")
	tag(&b, 9, "$ACADVER")
	tag(&b, 1, "AC1015")
	tag(&b, 9, "$INSUNITS")
	tag(&b, 70, "5") // centimeters
	tag(&b, 0, "ENDSEC")

	// Layer table.
	layers := geometry.Layers()
	tag(&b, 0, "SECTION")
	tag(&b, 2, "TABLES")
	tag(&b, 0, "TABLE")
	tag(&b, 2, "LAYER")
	tag(&b, 70, fmt.Sprintf("%d", len(layers)))
	for _, layer := range layers {
		tag(&b, 0, "LAYER")
		tag(&b, 2, string(layer.Name))
		tag(&b, 70, "0")
		tag(&b, 62, fmt.Sprintf("%d", layer.Color))
		tag(&b, 6, "CONTINUOUS")
	}
	tag(&b, 0, "ENDTAB")
	tag(&b, 0, "ENDSEC")

	// Entities.
	tag(&b, 0, "SECTION")
	tag(&b, 2, "ENTITIES")
	for _, e := range d.Entities() {
		writeEntity(&b, e)
	}
	tag(&b, 0, "ENDSEC")
	tag(&b, 0, "EOF")

	return b.String()
}

// Write serializes a drawing to w.
func Write(w io.Writer, d *geometry.Drawing) error {
	_, err := io.WriteString(w, Encode(d))
	return err
}

func writeEntity(b *strings.Builder, e geometry.Entity) {
	switch v := e.(type) {
	case geometry.Polyline:
		tag(b, 0, "LWPOLYLINE")
		tag(b, 8, string(v.Layer))
		tag(b, 90, fmt.Sprintf("%d", len(v.Points)))
		if v.Closed {
			tag(b, 70, "1")
		} else {
			tag(b, 70, "0")
		}
		for _, p := range v.Points {
			num(b, 10, p.X)
			num(b, 20, p.Y)
		}

	case geometry.Line:
		tag(b, 0, "LINE")
		tag(b, 8, string(v.Layer))
		num(b, 10, v.Start.X)
		num(b, 20, v.Start.Y)
		num(b, 11, v.End.X)
		num(b, 21, v.End.Y)

	case geometry.Circle:
		tag(b, 0, "CIRCLE")
		tag(b, 8, string(v.Layer))
		num(b, 10, v.Center.X)
		num(b, 20, v.Center.Y)
		num(b, 40, v.Radius)

	case geometry.Arc:
		tag(b, 0, "ARC")
		tag(b, 8, string(v.Layer))
		num(b, 10, v.Center.X)
		num(b, 20, v.Center.Y)
		num(b, 40, v.Radius)
		num(b, 50, v.StartAngle)
		num(b, 51, v.EndAngle)

	case geometry.Text:
		tag(b, 0, "TEXT")
		tag(b, 8, string(v.Layer))
		num(b, 10, v.Position.X)
		num(b, 20, v.Position.Y)
		num(b, 40, v.Height)
		tag(b, 1, v.Content)
	}
}

func tag(b *strings.Builder, code int, value string) {
	fmt.Fprintf(b, "%d\n%s\n", code, value)
}

func num(b *strings.Builder, code int, value float64) {
	fmt.Fprintf(b, "%d\n%.4f\n", code, value)
}
