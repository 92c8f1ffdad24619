// ABOUTME: One-point and two-point slot-index splice with duplicate-repair
// ABOUTME: Repair re-derives a valid permutation; elitism itself lives in internal/ga

// Package crossover produces two child boards from two parents by splicing
// slot ranges in row-major index space, then repairing the result into a
// valid permutation of the piece set.
package crossover

import (
	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/builder"
	"github.com/eternity2/ga-solver/internal/piece"
	"github.com/eternity2/ga-solver/internal/rng"
)

// OnePoint splices p1 and p2 at a random slot index k: c1 takes [0,k) from
// p1 and [k,N²) from p2; c2 is the complement. Both children are repaired
// before being returned.
func OnePoint(p1, p2 *board.Board, startPiece bool, r *rng.Source) (c1, c2 *board.Board) {
	n := p1.Size * p1.Size
	k := r.Intn(0, n-1)

	c1 = spliceOne(p1, p2, k)
	c2 = spliceOne(p2, p1, k)

	repair(c1, p1, startPiece)
	repair(c2, p1, startPiece)

	return c1, c2
}

// TwoPoint splices at two random indices k1 < k2: c1 takes [0,k1) from p1,
// [k1,k2) from p2, [k2,N²) from p1; c2 is the complement. Both children are
// repaired before being returned.
func TwoPoint(p1, p2 *board.Board, startPiece bool, r *rng.Source) (c1, c2 *board.Board) {
	n := p1.Size * p1.Size
	k1 := r.Intn(0, n-1)
	k2 := r.Intn(0, n-1)

	if k1 > k2 {
		k1, k2 = k2, k1
	}

	c1 = spliceTwo(p1, p2, k1, k2)
	c2 = spliceTwo(p2, p1, k1, k2)

	repair(c1, p1, startPiece)
	repair(c2, p1, startPiece)

	return c1, c2
}

func spliceOne(a, b *board.Board, k int) *board.Board {
	c := board.New(a.Size)
	idx := 0

	for row := 0; row < a.Size; row++ {
		for col := 0; col < a.Size; col++ {
			if idx < k {
				c.Slots[row][col] = a.Slots[row][col]
			} else {
				c.Slots[row][col] = b.Slots[row][col]
			}

			idx++
		}
	}

	return c
}

func spliceTwo(a, b *board.Board, k1, k2 int) *board.Board {
	c := board.New(a.Size)
	idx := 0

	for row := 0; row < a.Size; row++ {
		for col := 0; col < a.Size; col++ {
			switch {
			case idx < k1:
				c.Slots[row][col] = a.Slots[row][col]
			case idx < k2:
				c.Slots[row][col] = b.Slots[row][col]
			default:
				c.Slots[row][col] = a.Slots[row][col]
			}

			idx++
		}
	}

	return c
}

// repair scans c's slots in row-major order, keeps the first occurrence of
// each piece id, and replaces later duplicate occurrences with pieces
// missing from c — drawn in the order encountered, deferred until one whose
// Kind matches the slot is found. universe supplies the full piece set (any
// board sharing c's inventory works, since every board is a permutation of
// the same ids). Corner and edge replacements have their orientation forced
// via builder.FixBorderOrientation. If startPiece is active and repair
// displaced the distinguished piece, a final swap restores it.
func repair(c *board.Board, universe *board.Board, startPiece bool) {
	present := make(map[int]bool, c.Size*c.Size)
	var dupSlots [][2]int

	for row := 0; row < c.Size; row++ {
		for col := 0; col < c.Size; col++ {
			id := c.Slots[row][col].ID

			if present[id] {
				dupSlots = append(dupSlots, [2]int{row, col})
			} else {
				present[id] = true
			}
		}
	}

	if len(dupSlots) == 0 {
		if startPiece {
			fixStartPieceSlot(c)
		}

		return
	}

	missing := missingQueue{}

	for row := 0; row < universe.Size; row++ {
		for col := 0; col < universe.Size; col++ {
			p := universe.Slots[row][col]
			if !present[p.ID] {
				missing.push(p)
			}
		}
	}

	for _, slot := range dupSlots {
		row, col := slot[0], slot[1]
		wantKind := board.SlotKind(row, col, c.Size)

		p, ok := missing.takeMatching(wantKind)
		if !ok {
			continue
		}

		switch wantKind {
		case piece.Corner, piece.Edge:
			c.Slots[row][col] = builder.FixBorderOrientation(p, board.OutwardLocations(row, col, c.Size))
		default:
			c.Slots[row][col] = p
		}
	}

	if startPiece {
		fixStartPieceSlot(c)
	}
}

func fixStartPieceSlot(c *board.Board) {
	row, col := board.StartSlotRow, board.StartSlotCol

	if c.Slots[row][col].ID == board.StartPieceID && c.Slots[row][col].Orientation == 0 {
		return
	}

	for r := 0; r < c.Size; r++ {
		for cc := 0; cc < c.Size; cc++ {
			if c.Slots[r][cc].ID == board.StartPieceID {
				c.Slots[r][cc], c.Slots[row][col] = c.Slots[row][col], c.Slots[r][cc]
				c.Slots[row][col] = c.Slots[row][col].WithOrientation(0)

				return
			}
		}
	}
}

// missingQueue holds pieces absent from the child, partitioned by Kind so
// repair can ask for a type-compatible replacement and defer the rest.
type missingQueue struct {
	corners []piece.Piece
	edges   []piece.Piece
	inners  []piece.Piece
}

func (q *missingQueue) push(p piece.Piece) {
	switch p.Kind {
	case piece.Corner:
		q.corners = append(q.corners, p)
	case piece.Edge:
		q.edges = append(q.edges, p)
	default:
		q.inners = append(q.inners, p)
	}
}

func (q *missingQueue) takeMatching(kind piece.Kind) (piece.Piece, bool) {
	var bucket *[]piece.Piece

	switch kind {
	case piece.Corner:
		bucket = &q.corners
	case piece.Edge:
		bucket = &q.edges
	default:
		bucket = &q.inners
	}

	if len(*bucket) == 0 {
		return piece.Piece{}, false
	}

	p := (*bucket)[0]
	*bucket = (*bucket)[1:]

	return p, true
}
