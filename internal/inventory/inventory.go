// ABOUTME: Partitioned, destructively-consumed pool of unplaced pieces
// ABOUTME: Reloaded fresh for every board build; never shared across builds

// Package inventory holds the pieces not yet placed on a board, partitioned
// by Kind so the builder and crossover repair path can ask for "a corner" or
// "an edge" without scanning the whole set.
package inventory

import (
	"github.com/eternity2/ga-solver/internal/piece"
	"github.com/eternity2/ga-solver/internal/rng"
)

// Inventory partitions the unplaced pieces by Kind. A fresh Inventory is
// loaded for every board build and consumed destructively as pieces are
// placed; it is never shared between two in-progress builds.
type Inventory struct {
	Corners []piece.Piece
	Edges   []piece.Piece
	Inners  []piece.Piece
}

// Load deep-clones pieces into a fresh, kind-partitioned Inventory.
func Load(pieces []piece.Piece) *Inventory {
	inv := &Inventory{}

	for _, p := range pieces {
		switch p.Kind {
		case piece.Corner:
			inv.Corners = append(inv.Corners, p)
		case piece.Edge:
			inv.Edges = append(inv.Edges, p)
		default:
			inv.Inners = append(inv.Inners, p)
		}
	}

	return inv
}

func (inv *Inventory) bucket(kind piece.Kind) *[]piece.Piece {
	switch kind {
	case piece.Corner:
		return &inv.Corners
	case piece.Edge:
		return &inv.Edges
	default:
		return &inv.Inners
	}
}

// Len reports how many pieces of kind remain.
func (inv *Inventory) Len(kind piece.Kind) int {
	return len(*inv.bucket(kind))
}

// TakeRandom removes and returns a uniformly-chosen piece of the given kind.
// Returns ErrInventoryEmpty if none remain.
func (inv *Inventory) TakeRandom(kind piece.Kind, r *rng.Source) (piece.Piece, error) {
	bucket := inv.bucket(kind)

	if len(*bucket) == 0 {
		return piece.Piece{}, ErrInventoryEmpty
	}

	idx := r.Intn(0, len(*bucket)-1)
	p := (*bucket)[idx]

	*bucket = removeAt(*bucket, idx)

	return p, nil
}

// TakeMatching removes and returns the first piece of kind satisfying pred.
// The second return is false, with the inventory left untouched, if none
// satisfies it.
func (inv *Inventory) TakeMatching(kind piece.Kind, pred func(piece.Piece) bool) (piece.Piece, bool) {
	bucket := inv.bucket(kind)

	for i, p := range *bucket {
		if pred(p) {
			*bucket = removeAt(*bucket, i)

			return p, true
		}
	}

	return piece.Piece{}, false
}

// PutBack returns a piece to its kind's bucket, where a later Take call can
// draw it again.
func (inv *Inventory) PutBack(p piece.Piece) {
	bucket := inv.bucket(p.Kind)
	*bucket = append(*bucket, p)
}

func removeAt(s []piece.Piece, i int) []piece.Piece {
	s[i] = s[len(s)-1]

	return s[:len(s)-1]
}
