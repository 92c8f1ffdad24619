// ABOUTME: Three-phase board assembly: top edge, interior+border+corners, start-piece fix-up
// ABOUTME: Ground truth for what "a valid board" means; crossover repair reuses FixBorderOrientation

// Package builder assembles a fully-placed, invariant-satisfying board from
// a piece inventory. It is the only place in the repository that creates a
// board from scratch; crossover produces new boards by splicing and
// repairing existing ones instead.
package builder

import (
	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/inventory"
	"github.com/eternity2/ga-solver/internal/piece"
	"github.com/eternity2/ga-solver/internal/rng"
)

// Build assembles a Size×Size board from inv, consuming it destructively.
// If startPiece is true, the distinguished piece (board.StartPieceID) is
// swapped into its pinned slot as a final fix-up step. Returns
// ErrUnbuildableBoard if inv runs out of the required Kind before every
// slot is filled.
func Build(inv *inventory.Inventory, size int, startPiece bool, r *rng.Source) (*board.Board, error) {
	b := board.New(size)

	if err := placeTopEdge(b, inv, r); err != nil {
		return nil, err
	}

	if err := placeInteriorAndBorder(b, inv, r); err != nil {
		return nil, err
	}

	if err := placeCorners(b, inv, r); err != nil {
		return nil, err
	}

	if startPiece {
		fixStartPiece(b)
	}

	return b, nil
}

// placeTopEdge fills row 0's non-corner slots left-to-right with random
// edge pieces, rotated so their single outward segment is the border
// pattern.
func placeTopEdge(b *board.Board, inv *inventory.Inventory, r *rng.Source) error {
	for c := 1; c < b.Size-1; c++ {
		p, err := inv.TakeRandom(piece.Edge, r)
		if err != nil {
			return ErrUnbuildableBoard
		}

		b.Slots[0][c] = FixBorderOrientation(p, board.OutwardLocations(0, c, b.Size))
	}

	return nil
}

// placeInteriorAndBorder fills every remaining slot except the four
// corners: interior slots get random inner pieces, and the left, right,
// and bottom perimeter get random edge pieces with orientation fixed in
// the same row-by-row pass.
func placeInteriorAndBorder(b *board.Board, inv *inventory.Inventory, r *rng.Source) error {
	for row := 1; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			kind := board.SlotKind(row, col, b.Size)

			switch kind {
			case piece.Corner:
				continue // corners placed last
			case piece.Edge:
				p, err := inv.TakeRandom(piece.Edge, r)
				if err != nil {
					return ErrUnbuildableBoard
				}

				b.Slots[row][col] = FixBorderOrientation(p, board.OutwardLocations(row, col, b.Size))
			default:
				p, err := inv.TakeRandom(piece.Inner, r)
				if err != nil {
					return ErrUnbuildableBoard
				}

				b.Slots[row][col] = p
			}
		}
	}

	return nil
}

// placeCorners fills the four corner slots, each rotated so both outward
// segments are the border pattern.
func placeCorners(b *board.Board, inv *inventory.Inventory, r *rng.Source) error {
	corners := [][2]int{{0, 0}, {0, b.Size - 1}, {b.Size - 1, 0}, {b.Size - 1, b.Size - 1}}

	for _, slot := range corners {
		row, col := slot[0], slot[1]

		p, err := inv.TakeRandom(piece.Corner, r)
		if err != nil {
			return ErrUnbuildableBoard
		}

		b.Slots[row][col] = FixBorderOrientation(p, board.OutwardLocations(row, col, b.Size))
	}

	return nil
}

// fixStartPiece locates board.StartPieceID and swaps it with the occupant
// of the distinguished slot, then forces its orientation to 0. Both pieces
// are inner type, so the swap preserves the type-slot invariant.
func fixStartPiece(b *board.Board) {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Slots[row][col].ID == board.StartPieceID {
				b.Slots[row][col], b.Slots[board.StartSlotRow][board.StartSlotCol] =
					b.Slots[board.StartSlotRow][board.StartSlotCol], b.Slots[row][col]

				b.Slots[board.StartSlotRow][board.StartSlotCol] =
					b.Slots[board.StartSlotRow][board.StartSlotCol].WithOrientation(0)

				return
			}
		}
	}
}
