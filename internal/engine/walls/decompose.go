package walls

// ============================================================
// Opening-Aware Wall Decomposer
// ============================================================

// Tolerance guarding against degenerate zero-width boxes (1 cm in
// meters, the unit of this layer).
const eps = 0.01

// Vec3 is a 3D coordinate or extent in meters.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Segment is an axis-aligned solid box, the only 3D primitive this
// engine produces. Segments of one wall never overlap and their union
// equals the wall volume minus its opening voids.
type Segment struct {
	Origin  Vec3 `json:"origin"`
	Extents Vec3 `json:"extents"`
}

// Volume reports the box volume in cubic meters.
func (s Segment) Volume() float64 {
	return s.Extents.X * s.Extents.Y * s.Extents.Z
}

// Opening is a rectangular void in a wall: doors have Sill 0, windows
// sit on a raised sill.
type Opening struct {
	Width  float64
	Height float64
	Sill   float64
}

// Axis selects whether a wall runs along X or along Y.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Decompose splits a wall of the given length, height and thickness
// into the minimal set of solid segments around its openings. With no
// openings the wall is one full box. Every opening is centered on the
// wall midpoint independently; openings are not merged, so two
// openings on one wall produce overlapping voids (kept for fidelity
// with the centering rule).
func Decompose(length, height, thickness float64, openings []Opening, origin Vec3, axis Axis) []Segment {
	if len(openings) == 0 {
		return []Segment{spanSegment(origin, axis, 0, length, 0, height, thickness)}
	}

	var segments []Segment
	for _, op := range openings {
		center := length / 2
		left := center - op.Width/2
		right := center + op.Width/2
		top := op.Sill + op.Height

		// Full-height segments either side of the opening. Adjacent
		// segments share the exact boundary values, so the lintel ends
		// where the right pier starts with no float drift.
		if left > eps {
			segments = append(segments, spanSegment(origin, axis, 0, left, 0, height, thickness))
		}
		if right < length-eps {
			segments = append(segments, spanSegment(origin, axis, right, length, 0, height, thickness))
		}

		// Lintel above the opening.
		if top < height-eps {
			segments = append(segments, spanSegment(origin, axis, left, right, top, height, thickness))
		}

		// Sill wall below a window.
		if op.Sill > eps {
			segments = append(segments, spanSegment(origin, axis, left, right, 0, op.Sill, thickness))
		}
	}
	return segments
}

// spanSegment places a box covering [a0, a1] along the wall axis and
// [z0, z1] vertically, at the wall's 3D origin. Passing absolute
// boundaries keeps boxes built from the same boundary value exactly
// flush.
func spanSegment(origin Vec3, axis Axis, a0, a1, z0, z1, thickness float64) Segment {
	if axis == AxisX {
		return Segment{
			Origin:  Vec3{X: origin.X + a0, Y: origin.Y, Z: origin.Z + z0},
			Extents: Vec3{X: a1 - a0, Y: thickness, Z: z1 - z0},
		}
	}
	return Segment{
		Origin:  Vec3{X: origin.X, Y: origin.Y + a0, Z: origin.Z + z0},
		Extents: Vec3{X: thickness, Y: a1 - a0, Z: z1 - z0},
	}
}
