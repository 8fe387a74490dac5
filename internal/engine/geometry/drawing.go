package geometry

// ============================================================
// Drawing
// ============================================================

// Drawing owns an ordered, append-only sequence of entities. Order
// affects only rendering z-order.
type Drawing struct {
	entities []Entity
}

func NewDrawing() *Drawing {
	return &Drawing{}
}

// Append adds entities to the end of the drawing.
func (d *Drawing) Append(entities ...Entity) {
	d.entities = append(d.entities, entities...)
}

// Entities returns a copy of the entity sequence so callers cannot
// reorder or mutate the drawing through the returned slice.
func (d *Drawing) Entities() []Entity {
	out := make([]Entity, len(d.entities))
	copy(out, d.entities)
	return out
}

// Len reports the number of entities in the drawing.
func (d *Drawing) Len() int {
	return len(d.entities)
}

// AddTitle appends a text annotation at the given position.
func (d *Drawing) AddTitle(text string, position Point) {
	d.Append(Title(text, position))
}

// AddDimension appends the dimension indicator between start and end.
func (d *Drawing) AddDimension(start, end Point, offset float64) {
	d.Append(Dimension(start, end, offset)...)
}
