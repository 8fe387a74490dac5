package mesh

import (
	"fmt"
	"math"

	"cad-engine/internal/engine/shapes"
	"cad-engine/internal/engine/walls"
)

// ============================================================
// Mesh builders
// ============================================================

// Triangle is one face of a solid mesh; vertices are in meters and
// wound counter-clockwise seen from outside.
type Triangle struct {
	A, B, C walls.Vec3
}

const (
	cylinderSections = 32
	chairSeatT       = 0.03
	chairLegW        = 0.03
	chairLegMargin   = 0.03
	chairBackrestH   = 0.20
)

// ForParams builds the solid mesh for a shape. Parameters are in
// centimeters; the mesh is emitted in meters (cm / 100), bottom at
// z=0 (a room's floor slab extends below z=0).
func ForParams(p shapes.Params) ([]Triangle, error) {
	p = shapes.ApplyDefaults(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	switch p.Kind {
	case shapes.KindBox:
		return Box(walls.Vec3{}, walls.Vec3{X: p.Width / 100, Y: p.Length / 100, Z: p.Height / 100}), nil
	case shapes.KindCylinder:
		return Cylinder(p.Diameter/200, p.Height/100, cylinderSections), nil
	case shapes.KindChair:
		return chairMesh(p), nil
	case shapes.KindRoom:
		return Segments(walls.ForRoom(p)), nil
	}
	return nil, fmt.Errorf("%w: %q", shapes.ErrInvalidShapeKind, p.Kind)
}

// Segments triangulates a wall segment set.
func Segments(segments []walls.Segment) []Triangle {
	var tris []Triangle
	for _, s := range segments {
		tris = append(tris, Box(s.Origin, s.Extents)...)
	}
	return tris
}

// Box triangulates an axis-aligned box into 12 faces.
func Box(origin, extents walls.Vec3) []Triangle {
	x0, y0, z0 := origin.X, origin.Y, origin.Z
	x1, y1, z1 := x0+extents.X, y0+extents.Y, z0+extents.Z

	v := [8]walls.Vec3{
		{X: x0, Y: y0, Z: z0}, {X: x1, Y: y0, Z: z0}, {X: x1, Y: y1, Z: z0}, {X: x0, Y: y1, Z: z0},
		{X: x0, Y: y0, Z: z1}, {X: x1, Y: y0, Z: z1}, {X: x1, Y: y1, Z: z1}, {X: x0, Y: y1, Z: z1},
	}

	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // south
		{2, 3, 7, 6}, // north
		{1, 2, 6, 5}, // east
		{3, 0, 4, 7}, // west
	}

	tris := make([]Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			Triangle{A: v[q[0]], B: v[q[1]], C: v[q[2]]},
			Triangle{A: v[q[0]], B: v[q[2]], C: v[q[3]]},
		)
	}
	return tris
}

// Cylinder triangulates an upright cylinder with its base centered at
// (radius, radius, 0) so the solid matches the top view's bounding box.
func Cylinder(radius, height float64, sections int) []Triangle {
	cx, cy := radius, radius
	var tris []Triangle

	for i := 0; i < sections; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(sections)
		a1 := 2 * math.Pi * float64(i+1) / float64(sections)

		p0 := walls.Vec3{X: cx + radius*math.Cos(a0), Y: cy + radius*math.Sin(a0)}
		p1 := walls.Vec3{X: cx + radius*math.Cos(a1), Y: cy + radius*math.Sin(a1)}
		q0 := walls.Vec3{X: p0.X, Y: p0.Y, Z: height}
		q1 := walls.Vec3{X: p1.X, Y: p1.Y, Z: height}

		// Side wall.
		tris = append(tris,
			Triangle{A: p0, B: p1, C: q1},
			Triangle{A: p0, B: q1, C: q0},
		)
		// Caps, fanned around the axis.
		tris = append(tris,
			Triangle{A: walls.Vec3{X: cx, Y: cy, Z: 0}, B: p1, C: p0},
			Triangle{A: walls.Vec3{X: cx, Y: cy, Z: height}, B: q0, C: q1},
		)
	}
	return tris
}

// chairMesh assembles the chair as box primitives: seat plate, legs
// and backrest, mirroring the 2D projection proportions.
func chairMesh(p shapes.Params) []Triangle {
	w := p.Width / 100
	l := p.Length / 100
	h := p.Height / 100

	var tris []Triangle

	// Seat plate on top of the legs.
	tris = append(tris, Box(
		walls.Vec3{Z: h},
		walls.Vec3{X: w, Y: l, Z: chairSeatT},
	)...)

	for _, pos := range chairLegOrigins(w, l, p.Legs) {
		tris = append(tris, Box(pos, walls.Vec3{X: chairLegW, Y: chairLegW, Z: h})...)
	}

	// Backrest along the back edge.
	tris = append(tris, Box(
		walls.Vec3{Y: l - chairSeatT/2, Z: h + chairSeatT},
		walls.Vec3{X: w, Y: chairSeatT, Z: chairBackrestH},
	)...)

	return tris
}

func chairLegOrigins(w, l float64, legs int) []walls.Vec3 {
	if legs == 3 {
		return []walls.Vec3{
			{X: w/2 - chairLegW/2, Y: chairLegMargin},
			{X: w - chairLegMargin - chairLegW, Y: l - chairLegMargin - chairLegW},
			{X: chairLegMargin, Y: l - chairLegMargin - chairLegW},
		}
	}
	return []walls.Vec3{
		{X: chairLegMargin, Y: chairLegMargin},
		{X: w - chairLegMargin - chairLegW, Y: chairLegMargin},
		{X: w - chairLegMargin - chairLegW, Y: l - chairLegMargin - chairLegW},
		{X: chairLegMargin, Y: l - chairLegMargin - chairLegW},
	}
}
