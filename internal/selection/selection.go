// ABOUTME: Chooses a parent index from the previous generation's population
// ABOUTME: Both variants operate over fit_score; Roulette falls back to uniform on all-zero weights

// Package selection picks candidates from the previous generation's
// population to seed the next generation's crossover pairs.
package selection

import (
	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/rng"
)

// Roulette draws an index from prev with probability proportional to
// FitScore (inverse-CDF over cumulative weight). If every candidate has
// FitScore 0, it falls back to a uniform draw so a freshly-rebuilt
// population can still be selected from.
func Roulette(prev []*board.Board, r *rng.Source) int {
	total := 0

	for _, b := range prev {
		total += b.FitScore
	}

	if total == 0 {
		return r.Intn(0, len(prev)-1)
	}

	target := r.Intn(0, total-1)

	cum := 0

	for i, b := range prev {
		cum += b.FitScore
		if target < cum {
			return i
		}
	}

	return len(prev) - 1
}

// Tournament samples k candidates uniformly from prev and returns the index
// of the one with the best (FitScore, MatchCount) ordering.
func Tournament(prev []*board.Board, r *rng.Source, k int) int {
	best := r.Intn(0, len(prev)-1)

	for i := 1; i < k; i++ {
		candidate := r.Intn(0, len(prev)-1)

		if board.Less(prev[best], prev[candidate]) {
			best = candidate
		}
	}

	return best
}
