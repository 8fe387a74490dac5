package shapes

import (
	"cad-engine/internal/engine/geometry"
)

// ============================================================
// Cylinder
// ============================================================

// Cylinder covers pillars, round tables and pipes.
// Top: circle + center crosshair, Front/Side: diameter x height
// rectangle; the side view adds a vertical center line.
func projectCylinder(p Params, v View) []geometry.Entity {
	switch v {
	case ViewTop:
		return cylinderTop(p)
	case ViewFront:
		return cylinderFront(p)
	default:
		return cylinderSide(p)
	}
}

func cylinderTop(p Params) []geometry.Entity {
	r := p.Diameter / 2
	cross := r * 0.3

	return []geometry.Entity{
		geometry.Title("TOP VIEW", geometry.Point{X: 0, Y: p.Diameter + 15}),
		geometry.Circle{Center: geometry.Point{X: r, Y: r}, Radius: r, Layer: geometry.LayerTopView},
		geometry.Line{
			Start: geometry.Point{X: r - cross, Y: r},
			End:   geometry.Point{X: r + cross, Y: r},
			Layer: geometry.LayerCenterLines,
		},
		geometry.Line{
			Start: geometry.Point{X: r, Y: r - cross},
			End:   geometry.Point{X: r, Y: r + cross},
			Layer: geometry.LayerCenterLines,
		},
	}
}

func cylinderFront(p Params) []geometry.Entity {
	oy := viewGap
	out := []geometry.Entity{
		geometry.Title("FRONT VIEW", geometry.Point{X: 0, Y: oy + p.Height + 15}),
		rectangle(0, oy, p.Diameter, p.Height, geometry.LayerFrontView),
	}
	out = append(out, geometry.Dimension(geometry.Point{X: 0, Y: oy}, geometry.Point{X: p.Diameter, Y: oy}, 15)...)
	out = append(out, geometry.Dimension(geometry.Point{X: 0, Y: oy}, geometry.Point{X: 0, Y: oy + p.Height}, 15)...)
	return out
}

func cylinderSide(p Params) []geometry.Entity {
	ox, oy := sideGap, viewGap
	centerX := ox + p.Diameter/2

	out := []geometry.Entity{
		geometry.Title("SIDE VIEW", geometry.Point{X: ox, Y: oy + p.Height + 15}),
		rectangle(ox, oy, p.Diameter, p.Height, geometry.LayerSideView),
		geometry.Line{
			Start: geometry.Point{X: centerX, Y: oy - 5},
			End:   geometry.Point{X: centerX, Y: oy + p.Height + 5},
			Layer: geometry.LayerCenterLines,
		},
	}
	out = append(out, geometry.Dimension(geometry.Point{X: ox, Y: oy}, geometry.Point{X: ox + p.Diameter, Y: oy}, 15)...)
	out = append(out, geometry.Dimension(geometry.Point{X: ox + p.Diameter, Y: oy}, geometry.Point{X: ox + p.Diameter, Y: oy + p.Height}, -15)...)
	return out
}
