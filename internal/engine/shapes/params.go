package shapes

import (
	"errors"
	"fmt"
)

// ============================================================
// Shape Parameters
// ============================================================

var (
	// ErrInvalidShapeKind reports an unrecognized shape token after
	// alias resolution. Callers fall closed to KindBox instead of
	// failing the request.
	ErrInvalidShapeKind = errors.New("invalid shape kind")

	// ErrDegenerateGeometry reports non-positive extents. It is raised
	// before any entity is emitted; negative extents corrupt bounding
	// box math downstream.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

type Kind string

const (
	KindBox      Kind = "box"
	KindCylinder Kind = "cylinder"
	KindChair    Kind = "chair"
	KindRoom     Kind = "room"
)

type Wall string

const (
	WallNorth Wall = "north"
	WallSouth Wall = "south"
	WallEast  Wall = "east"
	WallWest  Wall = "west"
)

type OpeningKind string

const (
	OpeningDoor   OpeningKind = "door"
	OpeningWindow OpeningKind = "window"
)

// Opening is a door or window cut into a room wall. Every opening is
// centered on its wall midpoint independently; two openings on one
// wall overlap (known limitation of the centering rule).
type Opening struct {
	Kind  OpeningKind `json:"kind"`
	Wall  Wall        `json:"wall"`
	Width float64     `json:"width"`
}

// Params describes one generation request. All lengths are in
// centimeters. A Params value is built once per request and read-only
// afterwards.
type Params struct {
	Kind     Kind      `json:"shape_type"`
	Width    float64   `json:"width"`
	Length   float64   `json:"length"`
	Height   float64   `json:"height"`
	Diameter float64   `json:"diameter,omitempty"` // cylinder
	Legs     int       `json:"legs,omitempty"`     // chair, 3 or 4
	Openings []Opening `json:"openings,omitempty"` // room
}

// ============================================================
// Aliases & Defaults
// ============================================================

// aliases maps free-form shape tokens, including the natural-language
// synonyms the original registry accepted, to canonical kinds. This is
// boundary config data, resolved before any geometry code runs.
var aliases = map[string]Kind{
	"box":      KindBox,
	"kotak":    KindBox,
	"persegi":  KindBox,
	"meja":     KindBox,
	"lemari":   KindBox,
	"kabinet":  KindBox,
	"l_shape":  KindBox,
	"cylinder": KindCylinder,
	"silinder": KindCylinder,
	"bundar":   KindCylinder,
	"bulat":    KindCylinder,
	"tiang":    KindCylinder,
	"pipa":     KindCylinder,
	"chair":    KindChair,
	"kursi":    KindChair,
	"bangku":   KindChair,
	"room":     KindRoom,
	"ruangan":  KindRoom,
	"ruang":    KindRoom,
	"kamar":    KindRoom,
}

// ResolveKind maps a free-form token to its canonical kind. Unknown
// tokens resolve to KindBox alongside ErrInvalidShapeKind so callers
// can log and continue.
func ResolveKind(token string) (Kind, error) {
	if kind, ok := aliases[normalize(token)]; ok {
		return kind, nil
	}
	return KindBox, fmt.Errorf("%w: %q", ErrInvalidShapeKind, token)
}

func normalize(token string) string {
	out := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c == ' ' || c == '\t' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// Kinds lists the canonical shape kinds.
func Kinds() []Kind {
	return []Kind{KindBox, KindCylinder, KindChair, KindRoom}
}

// ApplyDefaults fills every absent (zero) field with its documented
// per-kind default, so geometry code never sees missing values.
func ApplyDefaults(p Params) Params {
	if p.Kind == "" {
		p.Kind = KindBox
	}

	switch p.Kind {
	case KindChair:
		p.Width = defaultFloat(p.Width, 40)
		p.Length = defaultFloat(p.Length, 40)
		p.Height = defaultFloat(p.Height, 45)
		if p.Legs == 0 {
			p.Legs = 4
		}
	case KindRoom:
		p.Width = defaultFloat(p.Width, 400)
		p.Length = defaultFloat(p.Length, 500)
		p.Height = defaultFloat(p.Height, 300)
	case KindCylinder:
		p.Diameter = defaultFloat(p.Diameter, 100)
		p.Height = defaultFloat(p.Height, 100)
		p.Width = defaultFloat(p.Width, p.Diameter)
		p.Length = defaultFloat(p.Length, p.Diameter)
	default:
		p.Width = defaultFloat(p.Width, 100)
		p.Length = defaultFloat(p.Length, 100)
		p.Height = defaultFloat(p.Height, 50)
	}

	// Copy before defaulting so the caller's slice stays untouched.
	if len(p.Openings) > 0 {
		p.Openings = append([]Opening(nil), p.Openings...)
	}
	for i, op := range p.Openings {
		if op.Kind == "" {
			op.Kind = OpeningDoor
		}
		if op.Wall == "" {
			if op.Kind == OpeningWindow {
				op.Wall = WallNorth
			} else {
				op.Wall = WallSouth
			}
		}
		if op.Width == 0 {
			if op.Kind == OpeningWindow {
				op.Width = 100
			} else {
				op.Width = 80
			}
		}
		p.Openings[i] = op
	}

	return p
}

func defaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// ============================================================
// Validation
// ============================================================

// Validate rejects degenerate extents before any entity is emitted.
// Call after ApplyDefaults.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Length <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: width=%g length=%g height=%g", ErrDegenerateGeometry, p.Width, p.Length, p.Height)
	}
	if p.Kind == KindCylinder && p.Diameter <= 0 {
		return fmt.Errorf("%w: diameter=%g", ErrDegenerateGeometry, p.Diameter)
	}
	if p.Kind == KindChair && p.Legs != 3 && p.Legs != 4 {
		return fmt.Errorf("%w: legs=%d (want 3 or 4)", ErrDegenerateGeometry, p.Legs)
	}
	for _, op := range p.Openings {
		if op.Width <= 0 {
			return fmt.Errorf("%w: %s width=%g", ErrDegenerateGeometry, op.Kind, op.Width)
		}
		switch op.Wall {
		case WallNorth, WallSouth, WallEast, WallWest:
		default:
			return fmt.Errorf("%w: unknown wall %q", ErrDegenerateGeometry, op.Wall)
		}
	}
	return nil
}

// Doors returns the door openings in declaration order.
func (p Params) Doors() []Opening {
	return p.openings(OpeningDoor)
}

// Windows returns the window openings in declaration order.
func (p Params) Windows() []Opening {
	return p.openings(OpeningWindow)
}

func (p Params) openings(kind OpeningKind) []Opening {
	var out []Opening
	for _, op := range p.Openings {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
