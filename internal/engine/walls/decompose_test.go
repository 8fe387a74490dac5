package walls

import (
	"math"
	"testing"

	"cad-engine/internal/engine/shapes"
)

func TestDecompose_NoOpenings(t *testing.T) {
	segments := Decompose(4, 3, 0.15, nil, Vec3{}, AxisX)

	if len(segments) != 1 {
		t.Fatalf("got %d segments, want exactly 1", len(segments))
	}
	want := Segment{Extents: Vec3{X: 4, Y: 0.15, Z: 3}}
	if segments[0] != want {
		t.Errorf("segment = %+v, want %+v", segments[0], want)
	}
}

func TestDecompose_CenteredDoor(t *testing.T) {
	const (
		length    = 4.0
		height    = 3.0
		thickness = 0.15
		doorW     = 0.8
		doorH     = 2.0
	)

	segments := Decompose(length, height, thickness, []Opening{{Width: doorW, Height: doorH}}, Vec3{}, AxisX)

	// Left, right and lintel; no sill for a door.
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}

	var total float64
	for _, s := range segments {
		total += s.Volume()
	}
	want := length*thickness*height - doorW*thickness*doorH
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("total volume = %g, want %g", total, want)
	}

	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if segmentsOverlap(segments[i], segments[j]) {
				t.Errorf("segments %d and %d overlap: %+v / %+v", i, j, segments[i], segments[j])
			}
		}
	}

	// The lintel must end exactly where the right pier starts; the
	// jamb positions here (1.6 and 2.4) do not round-trip through
	// origin-plus-width arithmetic, so flushness has to come from the
	// shared boundary value.
	rightPier, lintel := segments[1], segments[2]
	if got := lintel.Origin.X + lintel.Extents.X; got != rightPier.Origin.X {
		t.Errorf("lintel ends at %.17g, right pier starts at %.17g", got, rightPier.Origin.X)
	}
	if got := lintel.Origin.X; got != segments[0].Origin.X+segments[0].Extents.X {
		t.Errorf("lintel starts at %.17g, left pier ends at %.17g", got, segments[0].Origin.X+segments[0].Extents.X)
	}
}

func TestDecompose_Window(t *testing.T) {
	segments := Decompose(4, 3, 0.15, []Opening{{Width: 1.0, Height: 0.9, Sill: 1.05}}, Vec3{}, AxisX)

	// Left, right, lintel and sill wall.
	if len(segments) != 4 {
		t.Fatalf("got %d segments, want 4", len(segments))
	}

	sill := segments[3]
	if sill.Origin.Z != 0 || sill.Extents.Z != 1.05 {
		t.Errorf("sill segment z=%g h=%g, want 0 and 1.05", sill.Origin.Z, sill.Extents.Z)
	}
	lintel := segments[2]
	if got := lintel.Origin.Z; math.Abs(got-1.95) > 1e-9 {
		t.Errorf("lintel base = %g, want 1.95", got)
	}

	var total float64
	for _, s := range segments {
		total += s.Volume()
	}
	want := 4*0.15*3 - 1.0*0.15*0.9
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("total volume = %g, want %g", total, want)
	}
}

func TestDecompose_FullHeightOpeningSkipsLintel(t *testing.T) {
	// Opening reaching the top of the wall leaves no lintel.
	segments := Decompose(4, 3, 0.15, []Opening{{Width: 0.8, Height: 3.0}}, Vec3{}, AxisX)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want left and right only", len(segments))
	}
}

func TestDecompose_AxisY(t *testing.T) {
	segments := Decompose(5, 3, 0.15, []Opening{{Width: 1.0, Height: 2.0}}, Vec3{X: 3.85}, AxisY)

	for _, s := range segments {
		if s.Origin.X != 3.85 || s.Extents.X != 0.15 {
			t.Errorf("segment not flush to east wall: %+v", s)
		}
	}
	left := segments[0]
	if left.Origin.Y != 0 || left.Extents.Y != 2.0 {
		t.Errorf("left segment spans y=%g..%g, want 0..2", left.Origin.Y, left.Origin.Y+left.Extents.Y)
	}
}

func TestForRoom(t *testing.T) {
	p := shapes.ApplyDefaults(shapes.Params{
		Kind: shapes.KindRoom, Width: 400, Length: 500, Height: 300,
		Openings: []shapes.Opening{
			{Kind: shapes.OpeningDoor, Wall: shapes.WallSouth, Width: 80},
		},
	})

	segments := ForRoom(p)

	// Floor + 3 south segments + one box per remaining wall.
	if len(segments) != 7 {
		t.Fatalf("got %d segments, want 7", len(segments))
	}

	floor := segments[0]
	if floor.Origin.Z != -WallThickness || floor.Extents.X != 4 || floor.Extents.Y != 5 {
		t.Errorf("floor = %+v", floor)
	}

	// The south door void: 0.8m wide, 2m high (min(2.0, 0.7*3)).
	var total float64
	for _, s := range segments[1:4] {
		total += s.Volume()
	}
	want := 4*WallThickness*3 - 0.8*WallThickness*2.0
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("south wall volume = %g, want %g", total, want)
	}
}

// segmentsOverlap reports strict AABB interpenetration on all axes.
func segmentsOverlap(a, b Segment) bool {
	return a.Origin.X < b.Origin.X+b.Extents.X && b.Origin.X < a.Origin.X+a.Extents.X &&
		a.Origin.Y < b.Origin.Y+b.Extents.Y && b.Origin.Y < a.Origin.Y+a.Extents.Y &&
		a.Origin.Z < b.Origin.Z+b.Extents.Z && b.Origin.Z < a.Origin.Z+a.Extents.Z
}
