package dxf

import (
	"bytes"
	"strings"
	"testing"

	"cad-engine/internal/engine/geometry"
	"cad-engine/internal/engine/shapes"
)

func TestEncode_Structure(t *testing.T) {
	d := geometry.NewDrawing()
	d.Append(geometry.Line{
		Start: geometry.Point{X: 0, Y: 0},
		End:   geometry.Point{X: 100, Y: 0},
		Layer: geometry.LayerTopView,
	})
	out := Encode(d)

	for _, want := range []string{
		"$ACADVER",
		"AC1015",
		"$INSUNITS",
		"ENTITIES",
		"EOF",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// All six layers declared with their ACI colors.
	for _, layer := range geometry.Layers() {
		if !strings.Contains(out, string(layer.Name)) {
			t.Errorf("layer table missing %s", layer.Name)
		}
	}
	if !strings.Contains(out, "62\n7\n") {
		t.Error("TOP_VIEW color 7 not declared")
	}
}

func TestEncode_EntityRecords(t *testing.T) {
	d := geometry.NewDrawing()
	d.Append(
		geometry.Polyline{
			Points: []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
			Closed: true,
			Layer:  geometry.LayerTopView,
		},
		geometry.Circle{Center: geometry.Point{X: 5, Y: 5}, Radius: 2, Layer: geometry.LayerCenterLines},
		geometry.Arc{Center: geometry.Point{X: 0, Y: 0}, Radius: 80, StartAngle: 0, EndAngle: 90, Layer: geometry.LayerTopView},
		geometry.Text{Position: geometry.Point{X: 0, Y: 20}, Content: "TOP VIEW", Height: 5, Layer: geometry.LayerAnnotations},
	)
	out := Encode(d)

	tests := []struct {
		name string
		want string
	}{
		{"closed polyline", "0\nLWPOLYLINE\n8\nTOP_VIEW\n90\n4\n70\n1\n"},
		{"circle radius", "0\nCIRCLE\n8\nCENTER_LINES\n10\n5.0000\n20\n5.0000\n40\n2.0000\n"},
		{"arc angles", "50\n0.0000\n51\n90.0000\n"},
		{"text content", "40\n5.0000\n1\nTOP VIEW\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing record:\n%s\n\nfull output:\n%s", tt.want, out)
			}
		})
	}
}

func TestEncode_PreservesEntityOrder(t *testing.T) {
	p := shapes.ApplyDefaults(shapes.Params{Kind: shapes.KindBox})
	d, err := shapes.Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := Encode(d)

	// Entities must appear in append order: the section order of the
	// drawing is the z-order CAD applications display.
	top := strings.Index(out, "ENTITIES")
	first := strings.Index(out[top:], "TOP_VIEW")
	front := strings.Index(out[top:], "FRONT_VIEW")
	side := strings.Index(out[top:], "SIDE_VIEW")
	if first < 0 || front < 0 || side < 0 {
		t.Fatal("expected all three views in the entity section")
	}
	if !(first < front && front < side) {
		t.Errorf("view order scrambled: top=%d front=%d side=%d", first, front, side)
	}
}

func TestWrite_MatchesEncode(t *testing.T) {
	d := geometry.NewDrawing()
	d.Append(geometry.Line{End: geometry.Point{X: 1, Y: 1}, Layer: geometry.LayerTopView})

	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != Encode(d) {
		t.Error("Write output differs from Encode")
	}
}
