package shapes

import (
	"fmt"

	"cad-engine/internal/engine/geometry"
)

// ============================================================
// Shape Projection Engine
// ============================================================

// View is one of the three orthographic projections sharing a single
// document.
type View int

const (
	ViewTop View = iota
	ViewFront
	ViewSide
)

func (v View) String() string {
	switch v {
	case ViewTop:
		return "top"
	case ViewFront:
		return "front"
	case ViewSide:
		return "side"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Document-space offsets keeping the three views apart: front and side
// sit below the top view, side additionally to the right. Rooms get
// extra clearance because their dimensions dwarf furniture.
const (
	viewGap  = -150.0
	sideGap  = 250.0
	roomDrop = -100.0
	roomPush = 200.0
)

// Project emits the entity list for one (kind, view) pair. It is pure:
// identical params produce identical entity sequences. Params must
// have defaults applied and be validated.
func Project(p Params, v View) ([]geometry.Entity, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	switch p.Kind {
	case KindBox:
		return projectBox(p, v), nil
	case KindCylinder:
		return projectCylinder(p, v), nil
	case KindChair:
		return projectChair(p, v), nil
	case KindRoom:
		return projectRoom(p, v), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidShapeKind, p.Kind)
}

// Generate runs all three projections into a fresh drawing. The
// drawing is populated by exactly this one pass and handed off.
func Generate(p Params) (*geometry.Drawing, error) {
	d := geometry.NewDrawing()
	for _, v := range []View{ViewTop, ViewFront, ViewSide} {
		entities, err := Project(p, v)
		if err != nil {
			return nil, fmt.Errorf("project %s view: %w", v, err)
		}
		d.Append(entities...)
	}
	return d, nil
}

// rectangle builds a closed 4-point outline with origin at (x, y).
func rectangle(x, y, w, h float64, layer geometry.Layer) geometry.Polyline {
	return geometry.Polyline{
		Points: []geometry.Point{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		},
		Closed: true,
		Layer:  layer,
	}
}
