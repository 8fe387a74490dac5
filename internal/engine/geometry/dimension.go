package geometry

import (
	"fmt"
	"math"
)

// ============================================================
// Dimension Annotator
// ============================================================

const (
	titleHeight     = 5
	dimTextHeight   = 3
	dimLabelPadding = 5
	dimVLabelShift  = 8
)

// Title builds a text annotation on the annotations layer.
func Title(text string, position Point) Text {
	return Text{
		Position: position,
		Content:  text,
		Height:   titleHeight,
		Layer:    LayerAnnotations,
	}
}

// Dimension builds a dimension indicator between start and end: a
// dimension line shifted by offset, two extension lines, and a label
// with the rounded span length. The span is treated as horizontal when
// |dx| >= |dy| (an exact diagonal dimensions horizontally), vertical
// otherwise. Inputs are never mutated.
func Dimension(start, end Point, offset float64) []Entity {
	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math.Sqrt(dx*dx + dy*dy)
	label := fmt.Sprintf("%.0f", length)

	if math.Abs(dx) >= math.Abs(dy) {
		yOff := start.Y - offset
		return []Entity{
			Line{Start: Point{start.X, yOff}, End: Point{end.X, yOff}, Layer: LayerDimensions},
			Line{Start: start, End: Point{start.X, yOff}, Layer: LayerDimensions},
			Line{Start: end, End: Point{end.X, yOff}, Layer: LayerDimensions},
			Text{
				Position: Point{(start.X + end.X) / 2, yOff - dimLabelPadding},
				Content:  label,
				Height:   dimTextHeight,
				Layer:    LayerDimensions,
			},
		}
	}

	xOff := start.X - offset
	return []Entity{
		Line{Start: Point{xOff, start.Y}, End: Point{xOff, end.Y}, Layer: LayerDimensions},
		Line{Start: start, End: Point{xOff, start.Y}, Layer: LayerDimensions},
		Line{Start: end, End: Point{xOff, end.Y}, Layer: LayerDimensions},
		Text{
			Position: Point{xOff - dimVLabelShift, (start.Y + end.Y) / 2},
			Content:  label,
			Height:   dimTextHeight,
			Layer:    LayerDimensions,
		},
	}
}
