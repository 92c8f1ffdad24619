// ABOUTME: Piece identity, orientation read-out, and corner/edge/inner classification
// ABOUTME: Single source of truth for reading a piece's segment pattern at any orientation

// Package piece defines the immutable identity and mutable placement state of
// a single Eternity-II-style tile: four edge segments, an id, and an
// orientation. Every fitness and orientation-fixing computation in this
// repository ultimately calls SegmentAt.
package piece

import "fmt"

// Location names the four sides of a piece at orientation 0.
type Location int

// Border is the distinguished segment pattern that must face outward on
// every perimeter slot.
const Border = 0

const (
	Top Location = iota
	Right
	Bottom
	Left
)

func (l Location) String() string {
	switch l {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// Kind classifies a piece by how many of its segments equal Border.
type Kind int

const (
	// Inner pieces have zero border segments.
	Inner Kind = iota
	// Edge pieces have exactly one border segment.
	Edge
	// Corner pieces have exactly two border segments.
	Corner
)

func (k Kind) String() string {
	switch k {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	case Inner:
		return "inner"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Piece is a single tile: an immutable id and segment pattern, plus the
// mutable orientation the board places it at. Kind is fixed at construction
// time from the segment pattern and never changes afterward.
type Piece struct {
	ID          int
	Segments    [4]int // top, right, bottom, left, at orientation 0
	Orientation int    // number of 90° clockwise rotations applied
	Kind        Kind
}

// New classifies segments and returns a Piece at orientation 0.
func New(id int, segments [4]int) Piece {
	return Piece{ID: id, Segments: segments, Orientation: 0, Kind: classify(segments)}
}

// classify counts border segments: 2 -> corner, 1 -> edge, 0 -> inner.
func classify(segments [4]int) Kind {
	borders := 0

	for _, s := range segments {
		if s == Border {
			borders++
		}
	}

	switch borders {
	case 2:
		return Corner
	case 1:
		return Edge
	default:
		return Inner
	}
}

// SegmentAt reads the pattern at location loc given the piece's current
// orientation: segments[(loc - orientation + 4) mod 4].
func (p Piece) SegmentAt(loc Location) int {
	idx := (int(loc) - p.Orientation + 4) % 4

	return p.Segments[idx]
}

// Rotate advances the orientation by one 90° clockwise step, wrapping mod 4.
func (p Piece) Rotate() Piece {
	p.Orientation = (p.Orientation + 1) % 4

	return p
}

// WithOrientation returns a copy of p pinned to the given orientation.
func (p Piece) WithOrientation(o int) Piece {
	p.Orientation = ((o % 4) + 4) % 4

	return p
}
