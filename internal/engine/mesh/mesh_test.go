package mesh

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"cad-engine/internal/engine/shapes"
	"cad-engine/internal/engine/walls"
)

func TestBox_TriangleCount(t *testing.T) {
	tris := Box(walls.Vec3{}, walls.Vec3{X: 1, Y: 2, Z: 3})
	if len(tris) != 12 {
		t.Fatalf("box has %d triangles, want 12", len(tris))
	}
}

func TestBox_SignedVolume(t *testing.T) {
	// For a closed outward-wound mesh the sum of signed tetrahedron
	// volumes equals the solid volume.
	extents := walls.Vec3{X: 1, Y: 2, Z: 0.5}
	tris := Box(walls.Vec3{X: 3, Y: -1, Z: 2}, extents)

	var volume float64
	for _, tr := range tris {
		volume += signedVolume(tr)
	}
	want := extents.X * extents.Y * extents.Z
	if math.Abs(volume-want) > 1e-9 {
		t.Errorf("signed volume = %g, want %g (winding broken)", volume, want)
	}
}

func TestCylinder_TriangleCount(t *testing.T) {
	tris := Cylinder(0.5, 1.0, cylinderSections)
	// Two side triangles and two cap triangles per section.
	if want := cylinderSections * 4; len(tris) != want {
		t.Fatalf("cylinder has %d triangles, want %d", len(tris), want)
	}
}

func TestCylinder_BoundingFootprint(t *testing.T) {
	radius := 0.5
	tris := Cylinder(radius, 1.0, cylinderSections)

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	for _, tr := range tris {
		for _, v := range []walls.Vec3{tr.A, tr.B, tr.C} {
			minX = math.Min(minX, v.X)
			maxX = math.Max(maxX, v.X)
		}
	}
	// Base centered at (r, r): footprint spans [0, 2r].
	if math.Abs(minX) > 1e-9 || math.Abs(maxX-2*radius) > 1e-9 {
		t.Errorf("footprint spans [%g, %g], want [0, %g]", minX, maxX, 2*radius)
	}
}

func TestForParams(t *testing.T) {
	tests := []struct {
		name      string
		params    shapes.Params
		wantTris  int
		wantError bool
	}{
		{
			name:     "box",
			params:   shapes.Params{Kind: shapes.KindBox, Width: 100, Length: 100, Height: 50},
			wantTris: 12,
		},
		{
			name:     "cylinder",
			params:   shapes.Params{Kind: shapes.KindCylinder, Diameter: 100, Height: 100},
			wantTris: cylinderSections * 4,
		},
		{
			name:   "chair seat legs backrest",
			params: shapes.Params{Kind: shapes.KindChair},
			// seat + 4 legs + backrest, 12 triangles each
			wantTris: 6 * 12,
		},
		{
			name:   "plain room",
			params: shapes.Params{Kind: shapes.KindRoom},
			// floor slab plus four solid walls
			wantTris: 5 * 12,
		},
		{
			name:      "degenerate box",
			params:    shapes.Params{Kind: shapes.KindBox, Width: -5, Length: 100, Height: 50},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris, err := ForParams(tt.params)
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ForParams: %v", err)
			}
			if len(tris) != tt.wantTris {
				t.Errorf("got %d triangles, want %d", len(tris), tt.wantTris)
			}
		})
	}
}

func TestForParams_RoomWithDoor(t *testing.T) {
	p := shapes.Params{
		Kind: shapes.KindRoom,
		Openings: []shapes.Opening{
			{Kind: shapes.OpeningDoor, Wall: shapes.WallSouth, Width: 80},
		},
	}
	tris, err := ForParams(p)
	if err != nil {
		t.Fatalf("ForParams: %v", err)
	}
	// Floor, three solid walls, and a south wall split into three
	// segments around the door.
	if want := (1 + 3 + 3) * 12; len(tris) != want {
		t.Errorf("got %d triangles, want %d", len(tris), want)
	}
}

func TestWriteSTL_Format(t *testing.T) {
	tris := Box(walls.Vec3{}, walls.Vec3{X: 1, Y: 1, Z: 1})

	var buf bytes.Buffer
	if err := WriteSTL(&buf, tris); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}

	// 80-byte header + 4-byte count + 50 bytes per triangle.
	if want := 84 + 50*len(tris); buf.Len() != want {
		t.Fatalf("output is %d bytes, want %d", buf.Len(), want)
	}

	count := binary.LittleEndian.Uint32(buf.Bytes()[80:84])
	if count != uint32(len(tris)) {
		t.Errorf("triangle count field = %d, want %d", count, len(tris))
	}
}

func TestWriteSTL_UnitNormals(t *testing.T) {
	tris := Cylinder(0.5, 1.0, 8)

	var buf bytes.Buffer
	if err := WriteSTL(&buf, tris); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}

	data := buf.Bytes()[84:]
	for i := 0; i < len(tris); i++ {
		record := data[i*50:]
		nx := math.Float32frombits(binary.LittleEndian.Uint32(record[0:]))
		ny := math.Float32frombits(binary.LittleEndian.Uint32(record[4:]))
		nz := math.Float32frombits(binary.LittleEndian.Uint32(record[8:]))
		length := math.Sqrt(float64(nx)*float64(nx) + float64(ny)*float64(ny) + float64(nz)*float64(nz))
		if math.Abs(length-1) > 1e-5 {
			t.Fatalf("triangle %d: normal length %g, want 1", i, length)
		}
	}
}

func signedVolume(t Triangle) float64 {
	return (t.A.X*(t.B.Y*t.C.Z-t.C.Y*t.B.Z) -
		t.A.Y*(t.B.X*t.C.Z-t.C.X*t.B.Z) +
		t.A.Z*(t.B.X*t.C.Y-t.C.X*t.B.Y)) / 6
}
