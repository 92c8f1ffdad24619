// ABOUTME: Grid of placed pieces plus derived fitness scalars and slot typing
// ABOUTME: Defines the ordering relation operators select/elitism sort by

// Package board holds the N×N grid of placed pieces and the structural rules
// (which slot wants which piece Kind, which sides of a border slot face
// outward) that every operator in this repository must respect.
package board

import "github.com/eternity2/ga-solver/internal/piece"

// Debug gates the O(N²) invariant scan in CheckInvariants. Leave false in
// production; flip to true in tests that want the stronger assertion.
var Debug = false

// Board is an N×N grid of placed pieces plus its derived fitness scalars.
type Board struct {
	Size       int
	Slots      [][]piece.Piece // row-major, Slots[row][col]
	FitScore   int
	MatchCount int
	ID         int
}

// New allocates an empty Size×Size board with no pieces placed.
func New(size int) *Board {
	slots := make([][]piece.Piece, size)
	for r := range slots {
		slots[r] = make([]piece.Piece, size)
	}

	return &Board{Size: size, Slots: slots}
}

// Less orders boards by fitness first,
// then match count as a tiebreaker. Used to sort populations for elitism and
// selection.
func Less(a, b *Board) bool {
	if a.FitScore != b.FitScore {
		return a.FitScore < b.FitScore
	}

	return a.MatchCount < b.MatchCount
}

// Clone deep-copies the board, including every slot's piece value.
func (b *Board) Clone() *Board {
	c := &Board{Size: b.Size, FitScore: b.FitScore, MatchCount: b.MatchCount, ID: b.ID}
	c.Slots = make([][]piece.Piece, b.Size)

	for r := range c.Slots {
		c.Slots[r] = make([]piece.Piece, b.Size)
		copy(c.Slots[r], b.Slots[r])
	}

	return c
}

// SlotKind reports the piece Kind a given slot expects: the four corners
// want Corner pieces, the remaining perimeter wants Edge pieces, and
// everything else wants Inner pieces.
func SlotKind(row, col, size int) piece.Kind {
	atTop, atBottom := row == 0, row == size-1
	atLeft, atRight := col == 0, col == size-1

	switch {
	case (atTop || atBottom) && (atLeft || atRight):
		return piece.Corner
	case atTop || atBottom || atLeft || atRight:
		return piece.Edge
	default:
		return piece.Inner
	}
}

// OutwardLocations returns the side(s) of slot (row, col) that face the
// outside of the board. Corner slots return two adjacent sides; edge slots
// return one; inner slots return none.
func OutwardLocations(row, col, size int) []piece.Location {
	var out []piece.Location

	if row == 0 {
		out = append(out, piece.Top)
	}

	if row == size-1 {
		out = append(out, piece.Bottom)
	}

	if col == 0 {
		out = append(out, piece.Left)
	}

	if col == size-1 {
		out = append(out, piece.Right)
	}

	return out
}

// PieceIDs returns the multiset of piece ids currently placed on the board,
// in row-major order. Used by property tests to check the permutation
// invariant against the inventory's original id set.
func (b *Board) PieceIDs() []int {
	ids := make([]int, 0, b.Size*b.Size)

	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			ids = append(ids, b.Slots[r][c].ID)
		}
	}

	return ids
}

// Snapshot is the read-only view exposed to external collaborators (the
// driver, the report writer): the grid reduced to (pieceID, orientation)
// pairs plus the derived scalars.
type Snapshot struct {
	Size       int
	Grid       [][]PlacedPiece
	FitScore   int
	MatchCount int
}

// PlacedPiece is a single cell of a Snapshot.
type PlacedPiece struct {
	PieceID     int
	Orientation int
	Kind        piece.Kind
}

// Snapshot produces a read-only copy of the board for adapters that must
// not be able to mutate the live population.
func (b *Board) Snapshot() Snapshot {
	grid := make([][]PlacedPiece, b.Size)

	for r := 0; r < b.Size; r++ {
		grid[r] = make([]PlacedPiece, b.Size)

		for c := 0; c < b.Size; c++ {
			p := b.Slots[r][c]
			grid[r][c] = PlacedPiece{PieceID: p.ID, Orientation: p.Orientation, Kind: p.Kind}
		}
	}

	return Snapshot{Size: b.Size, Grid: grid, FitScore: b.FitScore, MatchCount: b.MatchCount}
}
