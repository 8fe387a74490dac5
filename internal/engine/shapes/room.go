package shapes

import (
	"math"

	"cad-engine/internal/engine/geometry"
)

// ============================================================
// Room
// ============================================================

// Architectural opening proportions shared with the wall decomposer.
const (
	roomWallThickness = 3.0   // window symbol line spacing, cm
	doorMaxHeight     = 200.0 // cm
	doorHeightRatio   = 0.7
	windowMaxHeight   = 100.0 // cm
	windowHeightRatio = 0.3
	windowSillRatio   = 0.35
)

// DoorHeight is the opening height of a door in a wall of the given
// height, in cm.
func DoorHeight(wallHeight float64) float64 {
	return math.Min(doorMaxHeight, wallHeight*doorHeightRatio)
}

// WindowHeight is the opening height of a window in a wall of the
// given height, in cm.
func WindowHeight(wallHeight float64) float64 {
	return math.Min(windowMaxHeight, wallHeight*windowHeightRatio)
}

// WindowSill is the height of a window sill above the wall base, in cm.
func WindowSill(wallHeight float64) float64 {
	return wallHeight * windowSillRatio
}

// Room: floor plan with door swing arcs and window triple lines, plus
// wall elevations with opening voids. Each elevation only shows the
// openings declared on the walls it faces.
func projectRoom(p Params, v View) []geometry.Entity {
	switch v {
	case ViewTop:
		return roomTop(p)
	case ViewFront:
		return roomFront(p)
	default:
		return roomSide(p)
	}
}

func roomTop(p Params) []geometry.Entity {
	out := []geometry.Entity{
		geometry.Title("FLOOR PLAN (TOP VIEW)", geometry.Point{X: 0, Y: p.Length + 30}),
		rectangle(0, 0, p.Width, p.Length, geometry.LayerTopView),
	}

	for _, door := range p.Doors() {
		out = append(out, doorSymbol(door.Wall, door.Width, p.Width, p.Length)...)
	}
	for _, win := range p.Windows() {
		out = append(out, windowSymbol(win.Wall, win.Width, p.Width, p.Length)...)
	}

	out = append(out, geometry.Dimension(geometry.Point{X: 0, Y: 0}, geometry.Point{X: p.Width, Y: 0}, 25)...)
	out = append(out, geometry.Dimension(geometry.Point{X: p.Width, Y: 0}, geometry.Point{X: p.Width, Y: p.Length}, -25)...)
	return out
}

// doorSymbol draws the quarter-circle swing arc plus the door leaf,
// hinged at one jamb. The wall gap itself is left as drawn; for a
// non-solid 2D view the gap marker is purely cosmetic.
func doorSymbol(wall Wall, doorW, roomW, roomL float64) []geometry.Entity {
	switch wall {
	case WallSouth:
		cx := roomW/2 - doorW/2
		return []geometry.Entity{
			geometry.Line{Start: geometry.Point{X: cx, Y: 0}, End: geometry.Point{X: cx, Y: doorW}, Layer: geometry.LayerTopView},
			geometry.Arc{Center: geometry.Point{X: cx, Y: 0}, Radius: doorW, StartAngle: 0, EndAngle: 90, Layer: geometry.LayerTopView},
		}
	case WallNorth:
		cx := roomW/2 - doorW/2
		return []geometry.Entity{
			geometry.Line{Start: geometry.Point{X: cx, Y: roomL}, End: geometry.Point{X: cx, Y: roomL - doorW}, Layer: geometry.LayerTopView},
			geometry.Arc{Center: geometry.Point{X: cx, Y: roomL}, Radius: doorW, StartAngle: 270, EndAngle: 360, Layer: geometry.LayerTopView},
		}
	case WallWest:
		cy := roomL/2 - doorW/2
		return []geometry.Entity{
			geometry.Line{Start: geometry.Point{X: 0, Y: cy}, End: geometry.Point{X: doorW, Y: cy}, Layer: geometry.LayerTopView},
			geometry.Arc{Center: geometry.Point{X: 0, Y: cy}, Radius: doorW, StartAngle: 0, EndAngle: 90, Layer: geometry.LayerTopView},
		}
	case WallEast:
		cy := roomL/2 - doorW/2
		return []geometry.Entity{
			geometry.Line{Start: geometry.Point{X: roomW, Y: cy}, End: geometry.Point{X: roomW - doorW, Y: cy}, Layer: geometry.LayerTopView},
			geometry.Arc{Center: geometry.Point{X: roomW, Y: cy}, Radius: doorW, StartAngle: 90, EndAngle: 180, Layer: geometry.LayerTopView},
		}
	}
	return nil
}

// windowSymbol draws three parallel lines spanning the window width,
// flush to the wall, offset by -thickness, 0 and +thickness.
func windowSymbol(wall Wall, winW, roomW, roomL float64) []geometry.Entity {
	offsets := []float64{-roomWallThickness, 0, roomWallThickness}
	var out []geometry.Entity

	switch wall {
	case WallNorth:
		cx := roomW/2 - winW/2
		for _, off := range offsets {
			out = append(out, geometry.Line{
				Start: geometry.Point{X: cx, Y: roomL + off},
				End:   geometry.Point{X: cx + winW, Y: roomL + off},
				Layer: geometry.LayerTopView,
			})
		}
	case WallSouth:
		cx := roomW/2 - winW/2
		for _, off := range offsets {
			out = append(out, geometry.Line{
				Start: geometry.Point{X: cx, Y: off},
				End:   geometry.Point{X: cx + winW, Y: off},
				Layer: geometry.LayerTopView,
			})
		}
	case WallEast:
		cy := roomL/2 - winW/2
		for _, off := range offsets {
			out = append(out, geometry.Line{
				Start: geometry.Point{X: roomW + off, Y: cy},
				End:   geometry.Point{X: roomW + off, Y: cy + winW},
				Layer: geometry.LayerTopView,
			})
		}
	case WallWest:
		cy := roomL/2 - winW/2
		for _, off := range offsets {
			out = append(out, geometry.Line{
				Start: geometry.Point{X: off, Y: cy},
				End:   geometry.Point{X: off, Y: cy + winW},
				Layer: geometry.LayerTopView,
			})
		}
	}
	return out
}

func roomFront(p Params) []geometry.Entity {
	oy := viewGap + roomDrop

	out := []geometry.Entity{
		geometry.Title("FRONT VIEW", geometry.Point{X: 0, Y: oy + p.Height + 15}),
		rectangle(0, oy, p.Width, p.Height, geometry.LayerFrontView),
	}
	out = append(out, openingVoids(p, 0, oy, p.Width, geometry.LayerFrontView, WallNorth, WallSouth)...)
	out = append(out, geometry.Dimension(geometry.Point{X: 0, Y: oy}, geometry.Point{X: p.Width, Y: oy}, 25)...)
	out = append(out, geometry.Dimension(geometry.Point{X: 0, Y: oy}, geometry.Point{X: 0, Y: oy + p.Height}, 25)...)
	return out
}

func roomSide(p Params) []geometry.Entity {
	ox := sideGap + roomPush
	oy := viewGap + roomDrop

	out := []geometry.Entity{
		geometry.Title("SIDE VIEW", geometry.Point{X: ox, Y: oy + p.Height + 15}),
		rectangle(ox, oy, p.Length, p.Height, geometry.LayerSideView),
	}
	out = append(out, openingVoids(p, ox, oy, p.Length, geometry.LayerSideView, WallEast, WallWest)...)
	out = append(out, geometry.Dimension(geometry.Point{X: ox, Y: oy}, geometry.Point{X: ox + p.Length, Y: oy}, 25)...)
	out = append(out, geometry.Dimension(geometry.Point{X: ox + p.Length, Y: oy}, geometry.Point{X: ox + p.Length, Y: oy + p.Height}, -25)...)
	return out
}

// openingVoids emits the rectangular void outline of every opening
// declared on one of the visible walls, centered in the elevation.
func openingVoids(p Params, ox, oy, span float64, layer geometry.Layer, visible ...Wall) []geometry.Entity {
	var out []geometry.Entity

	for _, op := range p.Openings {
		if !wallVisible(op.Wall, visible) {
			continue
		}
		cx := ox + span/2 - op.Width/2
		switch op.Kind {
		case OpeningDoor:
			out = append(out, rectangle(cx, oy, op.Width, DoorHeight(p.Height), layer))
		case OpeningWindow:
			out = append(out, rectangle(cx, oy+WindowSill(p.Height), op.Width, WindowHeight(p.Height), layer))
		}
	}
	return out
}

func wallVisible(w Wall, visible []Wall) bool {
	for _, v := range visible {
		if w == v {
			return true
		}
	}
	return false
}
