// ABOUTME: The five mutation operators and their composition rules
// ABOUTME: rotate, rotate-swap, region-rotate, and region-swap each end with an extra Swap call

// Package mutation implements the five candidate-perturbation operators
// applied to the current (post-crossover) population. Every operator
// mutates a board in place and leaves the board's structural invariants
// (piece permutation, slot typing, border orientation, pinned start piece)
// intact.
package mutation

import (
	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/builder"
	"github.com/eternity2/ga-solver/internal/piece"
	"github.com/eternity2/ga-solver/internal/rng"
)

// Method names a mutation operator, selected by configuration.
type Method string

const (
	Swap         Method = "swap"
	Rotate       Method = "rotate"
	RotateSwap   Method = "rotate-swap"
	RegionRotate Method = "region-rotate"
	RegionSwap   Method = "region-swap"
)

// Apply mutates b in place using method. startPiece excludes the
// distinguished slot from random inner-slot draws when true.
func Apply(b *board.Board, method Method, startPiece bool, r *rng.Source) {
	switch method {
	case Rotate:
		ApplyRotate(b, startPiece, r)
	case RotateSwap:
		ApplyRotateSwap(b, startPiece, r)
	case RegionRotate:
		ApplyRegionRotate(b, startPiece, r)
	case RegionSwap:
		ApplyRegionSwap(b, startPiece, r)
	default:
		ApplySwap(b, startPiece, r)
	}
}

// ApplySwap picks a piece Kind uniformly, picks two distinct slots of that
// Kind, and swaps their pieces, reapplying the border orientation fix on
// corner/edge slots.
func ApplySwap(b *board.Board, startPiece bool, r *rng.Source) {
	kind := piece.Kind(r.Intn(0, 2))

	slots := slotsOfKind(b, kind, startPiece)
	if len(slots) < 2 {
		return
	}

	i := r.Intn(0, len(slots)-1)
	j := r.Intn(0, len(slots)-1)

	for j == i {
		j = r.Intn(0, len(slots)-1)
	}

	swapSlots(b, slots[i], slots[j], kind)
}

// ApplyRotate advances one inner slot's orientation by one step, then
// always invokes ApplySwap as well. Border slots are never rotated, since
// their orientation is fixed by FixBorderOrientation.
func ApplyRotate(b *board.Board, startPiece bool, r *rng.Source) {
	slots := slotsOfKind(b, piece.Inner, startPiece)
	if len(slots) > 0 {
		s := slots[r.Intn(0, len(slots)-1)]
		b.Slots[s[0]][s[1]] = b.Slots[s[0]][s[1]].Rotate()
	}

	ApplySwap(b, startPiece, r)
}

// ApplyRotateSwap rotates two distinct inner slots by one step each, swaps
// their pieces, then invokes ApplySwap.
func ApplyRotateSwap(b *board.Board, startPiece bool, r *rng.Source) {
	slots := slotsOfKind(b, piece.Inner, startPiece)
	if len(slots) >= 2 {
		i := r.Intn(0, len(slots)-1)
		j := r.Intn(0, len(slots)-1)

		for j == i {
			j = r.Intn(0, len(slots)-1)
		}

		a, bb := slots[i], slots[j]
		b.Slots[a[0]][a[1]] = b.Slots[a[0]][a[1]].Rotate()
		b.Slots[bb[0]][bb[1]] = b.Slots[bb[0]][bb[1]].Rotate()

		b.Slots[a[0]][a[1]], b.Slots[bb[0]][bb[1]] = b.Slots[bb[0]][bb[1]], b.Slots[a[0]][a[1]]
	}

	ApplySwap(b, startPiece, r)
}

// ApplyRegionRotate picks a 2x2 block of inner slots whose top-left is in
// the safe range, rotates each of the four pieces by one step, then invokes
// ApplySwap.
func ApplyRegionRotate(b *board.Board, startPiece bool, r *rng.Source) {
	if top, left, ok := randomInnerBlock(b, startPiece, r); ok {
		for _, d := range blockOffsets {
			row, col := top+d[0], left+d[1]
			b.Slots[row][col] = b.Slots[row][col].Rotate()
		}
	}

	ApplySwap(b, startPiece, r)
}

// ApplyRegionSwap picks two distinct non-overlapping 2x2 blocks of inner
// slots and swaps all four pairs of pieces position-for-position, then
// invokes ApplySwap.
func ApplyRegionSwap(b *board.Board, startPiece bool, r *rng.Source) {
	top1, left1, ok1 := randomInnerBlock(b, startPiece, r)

	if ok1 {
		for attempt := 0; attempt < 20; attempt++ {
			top2, left2, ok2 := randomInnerBlock(b, startPiece, r)
			if !ok2 {
				break
			}

			if blocksOverlap(top1, left1, top2, left2) {
				continue
			}

			for _, d := range blockOffsets {
				r1, c1 := top1+d[0], left1+d[1]
				r2, c2 := top2+d[0], left2+d[1]
				b.Slots[r1][c1], b.Slots[r2][c2] = b.Slots[r2][c2], b.Slots[r1][c1]
			}

			break
		}
	}

	ApplySwap(b, startPiece, r)
}

var blockOffsets = [4][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

func blocksOverlap(top1, left1, top2, left2 int) bool {
	return top1 < top2+2 && top2 < top1+2 && left1 < left2+2 && left2 < left1+2
}

// randomInnerBlock picks the top-left corner of a 2x2 block of inner slots,
// i.e. (top, top+1) x (left, left+1) are all inner slots excluding the
// start slot when active. ok is false if the board is too small to contain
// a safe block.
func randomInnerBlock(b *board.Board, startPiece bool, r *rng.Source) (top, left int, ok bool) {
	// Inner rows/cols span [1, Size-2]; a 2x2 block's top-left must leave
	// room for its bottom-right neighbor, so it ranges over [1, Size-3].
	if b.Size < 4 {
		return 0, 0, false
	}

	for attempt := 0; attempt < 20; attempt++ {
		t := r.Intn(1, b.Size-3)
		l := r.Intn(1, b.Size-3)

		if startPiece && blockContainsStart(t, l) {
			continue
		}

		return t, l, true
	}

	return 0, 0, false
}

func blockContainsStart(top, left int) bool {
	for _, d := range blockOffsets {
		if top+d[0] == board.StartSlotRow && left+d[1] == board.StartSlotCol {
			return true
		}
	}

	return false
}

// slotsOfKind returns the (row, col) pairs of every slot matching kind,
// excluding the distinguished start slot when startPiece is active and
// kind is Inner.
func slotsOfKind(b *board.Board, kind piece.Kind, startPiece bool) [][2]int {
	var out [][2]int

	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if board.SlotKind(row, col, b.Size) != kind {
				continue
			}

			if startPiece && kind == piece.Inner && row == board.StartSlotRow && col == board.StartSlotCol {
				continue
			}

			out = append(out, [2]int{row, col})
		}
	}

	return out
}

func swapSlots(b *board.Board, a, c [2]int, kind piece.Kind) {
	b.Slots[a[0]][a[1]], b.Slots[c[0]][c[1]] = b.Slots[c[0]][c[1]], b.Slots[a[0]][a[1]]

	if kind == piece.Inner {
		return
	}

	b.Slots[a[0]][a[1]] = builder.FixBorderOrientation(b.Slots[a[0]][a[1]], board.OutwardLocations(a[0], a[1], b.Size))
	b.Slots[c[0]][c[1]] = builder.FixBorderOrientation(b.Slots[c[0]][c[1]], board.OutwardLocations(c[0], c[1], b.Size))
}
