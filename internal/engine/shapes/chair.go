package shapes

import (
	"cad-engine/internal/engine/geometry"
)

// ============================================================
// Chair
// ============================================================

// Fixed chair proportions, independent of the overall size.
const (
	seatThickness  = 3.0
	backrestHeight = 20.0
	legWidth       = 3.0
	legMargin      = 3.0
	legDotRadius   = 2.0
)

// Chair: seat plate on legs with a backrest along the back edge.
// The 4-leg layout insets one leg per corner; the 3-leg layout puts
// one leg front-center and two at the back corners.
func projectChair(p Params, v View) []geometry.Entity {
	switch v {
	case ViewTop:
		return chairTop(p)
	case ViewFront:
		return chairFront(p)
	default:
		return chairSide(p)
	}
}

func legPositions(width, length float64, legs int) []geometry.Point {
	if legs == 3 {
		return []geometry.Point{
			{X: width / 2, Y: legMargin},
			{X: width - legMargin, Y: length - legMargin},
			{X: legMargin, Y: length - legMargin},
		}
	}
	return []geometry.Point{
		{X: legMargin, Y: legMargin},
		{X: width - legMargin, Y: legMargin},
		{X: width - legMargin, Y: length - legMargin},
		{X: legMargin, Y: length - legMargin},
	}
}

func chairTop(p Params) []geometry.Entity {
	out := []geometry.Entity{
		geometry.Title("TOP VIEW", geometry.Point{X: 0, Y: p.Length + 20}),
		rectangle(0, 0, p.Width, p.Length, geometry.LayerTopView),
	}

	for _, pos := range legPositions(p.Width, p.Length, p.Legs) {
		out = append(out, geometry.Circle{Center: pos, Radius: legDotRadius, Layer: geometry.LayerTopView})
	}

	// Backrest indicator along the back edge.
	out = append(out, geometry.Polyline{
		Points: []geometry.Point{{X: 0, Y: p.Length}, {X: p.Width, Y: p.Length}},
		Layer:  geometry.LayerTopView,
	})

	out = append(out, geometry.Dimension(geometry.Point{X: 0, Y: 0}, geometry.Point{X: p.Width, Y: 0}, 15)...)
	out = append(out, geometry.Dimension(geometry.Point{X: p.Width, Y: 0}, geometry.Point{X: p.Width, Y: p.Length}, -15)...)
	return out
}

func chairFront(p Params) []geometry.Entity {
	oy := viewGap
	seatTop := oy + p.Height
	totalH := p.Height + backrestHeight

	return []geometry.Entity{
		geometry.Title("FRONT VIEW", geometry.Point{X: 0, Y: oy + totalH + 15}),
		// Backrest above the seat.
		rectangle(0, seatTop, p.Width, backrestHeight, geometry.LayerFrontView),
		// Seat plate.
		rectangle(0, seatTop-seatThickness, p.Width, seatThickness, geometry.LayerFrontView),
		// Front legs.
		rectangle(legWidth, oy, legWidth, p.Height-seatThickness, geometry.LayerFrontView),
		rectangle(p.Width-legWidth*2, oy, legWidth, p.Height-seatThickness, geometry.LayerFrontView),
	}
}

func chairSide(p Params) []geometry.Entity {
	ox, oy := sideGap, viewGap
	seatTop := oy + p.Height
	totalH := p.Height + backrestHeight

	out := []geometry.Entity{
		geometry.Title("SIDE VIEW", geometry.Point{X: ox, Y: oy + totalH + 15}),
		// Backrest, a thin slab at the back edge.
		rectangle(ox+p.Length-legWidth, seatTop, legWidth, backrestHeight, geometry.LayerSideView),
		// Seat plate.
		rectangle(ox, seatTop-seatThickness, p.Length, seatThickness, geometry.LayerSideView),
		// Front and back legs.
		rectangle(ox+legWidth, oy, legWidth, p.Height-seatThickness, geometry.LayerSideView),
		rectangle(ox+p.Length-legWidth*2, oy, legWidth, p.Height-seatThickness, geometry.LayerSideView),
	}

	out = append(out, geometry.Dimension(geometry.Point{X: ox, Y: oy}, geometry.Point{X: ox, Y: seatTop}, 15)...)
	out = append(out, geometry.Dimension(geometry.Point{X: ox, Y: oy}, geometry.Point{X: ox + p.Length, Y: oy}, 15)...)
	return out
}
