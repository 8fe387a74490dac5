package shapes

import (
	"cad-engine/internal/engine/geometry"
)

// ============================================================
// Box
// ============================================================

// Box covers tables, cabinets and other rectangular solids.
// Top: width x length, Front: width x height, Side: length x height.
func projectBox(p Params, v View) []geometry.Entity {
	switch v {
	case ViewTop:
		return boxTop(p)
	case ViewFront:
		return boxFront(p)
	default:
		return boxSide(p)
	}
}

func boxTop(p Params) []geometry.Entity {
	out := []geometry.Entity{
		geometry.Title("TOP VIEW", geometry.Point{X: 0, Y: p.Length + 15}),
		rectangle(0, 0, p.Width, p.Length, geometry.LayerTopView),
	}
	out = append(out, geometry.Dimension(geometry.Point{X: 0, Y: 0}, geometry.Point{X: p.Width, Y: 0}, 15)...)
	out = append(out, geometry.Dimension(geometry.Point{X: p.Width, Y: 0}, geometry.Point{X: p.Width, Y: p.Length}, -15)...)
	return out
}

func boxFront(p Params) []geometry.Entity {
	oy := viewGap
	out := []geometry.Entity{
		geometry.Title("FRONT VIEW", geometry.Point{X: 0, Y: oy + p.Height + 15}),
		rectangle(0, oy, p.Width, p.Height, geometry.LayerFrontView),
	}
	out = append(out, geometry.Dimension(geometry.Point{X: 0, Y: oy}, geometry.Point{X: p.Width, Y: oy}, 15)...)
	out = append(out, geometry.Dimension(geometry.Point{X: 0, Y: oy}, geometry.Point{X: 0, Y: oy + p.Height}, 15)...)
	return out
}

func boxSide(p Params) []geometry.Entity {
	ox, oy := sideGap, viewGap
	out := []geometry.Entity{
		geometry.Title("SIDE VIEW", geometry.Point{X: ox, Y: oy + p.Height + 15}),
		rectangle(ox, oy, p.Length, p.Height, geometry.LayerSideView),
	}
	out = append(out, geometry.Dimension(geometry.Point{X: ox, Y: oy}, geometry.Point{X: ox + p.Length, Y: oy}, 15)...)
	out = append(out, geometry.Dimension(geometry.Point{X: ox + p.Length, Y: oy}, geometry.Point{X: ox + p.Length, Y: oy + p.Height}, -15)...)
	return out
}
