// ABOUTME: Deterministic orientation fixing for border and corner pieces
// ABOUTME: Shared by the builder's placement phases and crossover's repair path

package builder

import "github.com/eternity2/ga-solver/internal/piece"

// FixBorderOrientation returns p rotated to the unique orientation at which
// every location in outward reads the border pattern. For an edge piece
// outward has one location; for a corner, two. The search is a plain scan
// over the four possible orientations since it only ever runs on
// already-classified corner/edge pieces, where exactly one orientation
// satisfies all outward locations.
func FixBorderOrientation(p piece.Piece, outward []piece.Location) piece.Piece {
	for o := 0; o < 4; o++ {
		candidate := p.WithOrientation(o)

		if allBorder(candidate, outward) {
			return candidate
		}
	}

	// A piece of the wrong Kind for its slot would reach here; callers are
	// responsible for only ever passing a piece whose Kind matches the slot.
	return p
}

func allBorder(p piece.Piece, outward []piece.Location) bool {
	for _, loc := range outward {
		if p.SegmentAt(loc) != piece.Border {
			return false
		}
	}

	return true
}
