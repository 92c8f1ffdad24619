// ABOUTME: Scores a board by internal tile-to-tile boundary matches only
// ABOUTME: Closed-form MaxFitness/MaxMatches give the termination target for a board size

// Package fitness scores a board's placement quality and reports the
// closed-form maximum a board of a given size can reach. Outward-facing
// border segments are excluded from the score: the builder and every
// operator keep them border-correct, so they carry no discriminating signal
// and would throw off the closed-form maximum used for termination.
package fitness

import (
	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/piece"
)

// Weights are the per-adjacency-kind scores used by Evaluate. Corner-corner
// adjacency must score highest, inner-inner lowest, reflecting relative
// scarcity in a real Eternity II piece set.
type Weights struct {
	CornerMatch int
	EdgeMatch   int
	InnerMatch  int
}

// DefaultWeights keeps the required relative ordering
// CornerMatch > EdgeMatch > InnerMatch > 0.
var DefaultWeights = Weights{CornerMatch: 5, EdgeMatch: 3, InnerMatch: 1}

// Evaluate scores b over every horizontal boundary between (r,c) and
// (r,c+1) and every vertical boundary between (r,c) and (r+1,c). fitScore
// sums match_weight(kindA, kindB) for every matching boundary; matchCount
// counts matches regardless of weight. Outward border segments are not
// scored here: border orientation is fixed at placement time, so they would
// be a constant offset the closed-form MaxFitness/MaxMatches below do not
// include, and would let a board terminate the GA loop while internal
// boundaries still disagree.
func Evaluate(b *board.Board, w Weights) (fitScore, matchCount int) {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size-1; col++ {
			left := b.Slots[row][col]
			right := b.Slots[row][col+1]

			if left.SegmentAt(1) == right.SegmentAt(3) { // right edge == left edge
				matchCount++
				fitScore += matchWeight(left.Kind, right.Kind, w)
			}
		}
	}

	for row := 0; row < b.Size-1; row++ {
		for col := 0; col < b.Size; col++ {
			top := b.Slots[row][col]
			bottom := b.Slots[row+1][col]

			if top.SegmentAt(2) == bottom.SegmentAt(0) { // bottom edge == top edge
				matchCount++
				fitScore += matchWeight(top.Kind, bottom.Kind, w)
			}
		}
	}

	return fitScore, matchCount
}

// matchWeight returns the higher-scarcity weight of the two kinds adjacent
// at a boundary: a corner involved in the match scores CornerMatch even
// when paired with an edge or inner neighbor, and so on down the scarcity
// order corner > edge > inner.
func matchWeight(a, b piece.Kind, w Weights) int {
	best := a
	if b > best {
		best = b
	}

	switch best {
	case piece.Corner:
		return w.CornerMatch
	case piece.Edge:
		return w.EdgeMatch
	default:
		return w.InnerMatch
	}
}

// MaxMatches returns the maximum possible match_count for a board of size n.
func MaxMatches(n int) int {
	return 8 + ((n-2)*2-1)*4 + (n-3)*(n-2)*2
}

// MaxFitness returns the maximum possible fit_score for a board of size n
// under weights w.
func MaxFitness(n int, w Weights) int {
	return 8*w.CornerMatch + ((n-2)*2-1)*4*w.EdgeMatch + (n-3)*(n-2)*2*w.InnerMatch
}
