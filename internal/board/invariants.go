// ABOUTME: Debug-only post-condition checks for the four structural invariants
// ABOUTME: Gated behind the package-level Debug flag so production runs skip the scan

package board

import (
	"fmt"

	"github.com/eternity2/ga-solver/internal/piece"
)

// StartPieceID and StartSlot encode the Eternity II start-piece constraint:
// piece 139 must sit at (row=7, col=8) at orientation 0 when active.
const (
	StartPieceID = 139
	StartSlotRow = 7
	StartSlotCol = 8
)

// CheckInvariants verifies the board's structural invariants: piece
// permutation, slot typing, border orientation, and the pinned start piece
// when active. It is a no-op
// unless Debug is true, since an O(N²) scan per operator call is not
// something a release build should pay for unconditionally.
func CheckInvariants(b *Board, universe []int, startPiece bool) error {
	if !Debug {
		return nil
	}

	if err := checkPermutation(b, universe); err != nil {
		return err
	}

	if err := checkSlotKinds(b); err != nil {
		return err
	}

	if err := checkBorderOrientation(b); err != nil {
		return err
	}

	if startPiece {
		if err := checkStartPiece(b); err != nil {
			return err
		}
	}

	return nil
}

func checkPermutation(b *Board, universe []int) error {
	seen := make(map[int]bool, len(universe))
	for _, id := range universe {
		seen[id] = true
	}

	want := make(map[int]bool, len(universe))
	for k := range seen {
		want[k] = true
	}

	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			id := b.Slots[r][c].ID
			if !seen[id] {
				return fmt.Errorf("%w: piece %d at (%d,%d) not in inventory universe", ErrInvariantViolation, id, r, c)
			}

			if !want[id] {
				return fmt.Errorf("%w: piece %d placed more than once", ErrInvariantViolation, id)
			}

			delete(want, id)
		}
	}

	if len(want) != 0 {
		return fmt.Errorf("%w: %d inventory pieces never placed", ErrInvariantViolation, len(want))
	}

	return nil
}

func checkSlotKinds(b *Board) error {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			want := SlotKind(r, c, b.Size)
			got := b.Slots[r][c].Kind

			if want != got {
				return fmt.Errorf("%w: slot (%d,%d) wants %s, holds %s", ErrInvariantViolation, r, c, want, got)
			}
		}
	}

	return nil
}

func checkBorderOrientation(b *Board) error {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			p := b.Slots[r][c]
			if p.Kind == piece.Inner {
				continue
			}

			for _, loc := range OutwardLocations(r, c, b.Size) {
				if p.SegmentAt(loc) != piece.Border {
					return fmt.Errorf("%w: piece %d at (%d,%d) has non-border outward segment on %s",
						ErrInvariantViolation, p.ID, r, c, loc)
				}
			}
		}
	}

	return nil
}

func checkStartPiece(b *Board) error {
	p := b.Slots[StartSlotRow][StartSlotCol]
	if p.ID != StartPieceID || p.Orientation != 0 {
		return fmt.Errorf("%w: start piece %d expected at (%d,%d) orientation 0, found piece %d orientation %d",
			ErrInvariantViolation, StartPieceID, StartSlotRow, StartSlotCol, p.ID, p.Orientation)
	}

	return nil
}
