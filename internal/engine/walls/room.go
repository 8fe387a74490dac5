package walls

import (
	"cad-engine/internal/engine/shapes"
)

// ============================================================
// Room assembly
// ============================================================

// Wall thickness of a room in meters.
const WallThickness = 0.15

// ForRoom builds the full segment set of a room: a floor slab plus the
// four walls decomposed around their declared openings. Parameters are
// in centimeters and converted to meters (cm / 100) here, before the
// segments are handed to a mesh exporter.
func ForRoom(p shapes.Params) []Segment {
	w := p.Width / 100
	l := p.Length / 100
	h := p.Height / 100

	segments := []Segment{
		// Floor slab sits below z=0.
		{Origin: Vec3{X: 0, Y: 0, Z: -WallThickness}, Extents: Vec3{X: w, Y: l, Z: WallThickness}},
	}

	byWall := openingsByWall(p)

	// South and north walls run along X, west and east along Y.
	segments = append(segments, Decompose(w, h, WallThickness, byWall[shapes.WallSouth], Vec3{}, AxisX)...)
	segments = append(segments, Decompose(w, h, WallThickness, byWall[shapes.WallNorth], Vec3{Y: l - WallThickness}, AxisX)...)
	segments = append(segments, Decompose(l, h, WallThickness, byWall[shapes.WallWest], Vec3{}, AxisY)...)
	segments = append(segments, Decompose(l, h, WallThickness, byWall[shapes.WallEast], Vec3{X: w - WallThickness}, AxisY)...)

	return segments
}

func openingsByWall(p shapes.Params) map[shapes.Wall][]Opening {
	byWall := make(map[shapes.Wall][]Opening)
	for _, op := range p.Openings {
		var converted Opening
		switch op.Kind {
		case shapes.OpeningWindow:
			converted = Opening{
				Width:  op.Width / 100,
				Height: shapes.WindowHeight(p.Height) / 100,
				Sill:   shapes.WindowSill(p.Height) / 100,
			}
		default:
			converted = Opening{
				Width:  op.Width / 100,
				Height: shapes.DoorHeight(p.Height) / 100,
			}
		}
		byWall[op.Wall] = append(byWall[op.Wall], converted)
	}
	return byWall
}
