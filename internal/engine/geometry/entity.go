package geometry

// ============================================================
// Geometry Primitives
// ============================================================

// Point is a 2D coordinate in centimeters, Y-up.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layer groups entities for rendering style only; it carries no
// geometric meaning.
type Layer string

const (
	LayerTopView     Layer = "TOP_VIEW"
	LayerFrontView   Layer = "FRONT_VIEW"
	LayerSideView    Layer = "SIDE_VIEW"
	LayerDimensions  Layer = "DIMENSIONS"
	LayerAnnotations Layer = "ANNOTATIONS"
	LayerCenterLines Layer = "CENTER_LINES"
)

// LayerDef pairs a layer name with its ACI color index for serializers.
type LayerDef struct {
	Name  Layer
	Color int
}

// Layers is the fixed layer table every drawing carries.
func Layers() []LayerDef {
	return []LayerDef{
		{LayerTopView, 7},     // white
		{LayerFrontView, 5},   // blue
		{LayerSideView, 4},    // cyan
		{LayerDimensions, 1},  // red
		{LayerAnnotations, 3}, // green
		{LayerCenterLines, 2}, // yellow
	}
}

// Entity is the closed union of drawable primitives. Concrete types are
// Polyline, Line, Circle, Arc and Text; consumers dispatch with a type
// switch.
type Entity interface {
	EntityLayer() Layer
	entity()
}

type Polyline struct {
	Points []Point `json:"points"`
	Closed bool    `json:"closed"`
	Layer  Layer   `json:"layer"`
}

type Line struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
	Layer Layer `json:"layer"`
}

type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Layer  Layer   `json:"layer"`
}

// Arc angles are in degrees, counter-clockwise from +X.
type Arc struct {
	Center     Point   `json:"center"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Layer      Layer   `json:"layer"`
}

type Text struct {
	Position Point   `json:"position"`
	Content  string  `json:"content"`
	Height   float64 `json:"height"`
	Layer    Layer   `json:"layer"`
}

func (p Polyline) EntityLayer() Layer { return p.Layer }
func (l Line) EntityLayer() Layer     { return l.Layer }
func (c Circle) EntityLayer() Layer   { return c.Layer }
func (a Arc) EntityLayer() Layer      { return a.Layer }
func (t Text) EntityLayer() Layer     { return t.Layer }

func (Polyline) entity() {}
func (Line) entity()     {}
func (Circle) entity()   {}
func (Arc) entity()      {}
func (Text) entity()     {}
