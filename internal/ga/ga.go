// ABOUTME: The GA loop: build, evaluate, elitism/crossover/mutation, stagnation-triggered restart
// ABOUTME: Sequential loop with pooled per-board fitness scoring; Run checks ctx between generations and the pool skips queued jobs once it is canceled

// Package ga drives the genetic algorithm to a solved board: build an
// initial population, evaluate it, and repeatedly apply selection,
// crossover, and mutation until a generation reaches the closed-form
// maximum fitness for the board size — restarting from scratch whenever
// improvement stalls for too long.
package ga

import (
	"context"
	"sort"

	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/builder"
	"github.com/eternity2/ga-solver/internal/crossover"
	"github.com/eternity2/ga-solver/internal/fitness"
	"github.com/eternity2/ga-solver/internal/inventory"
	"github.com/eternity2/ga-solver/internal/mutation"
	"github.com/eternity2/ga-solver/internal/piece"
	"github.com/eternity2/ga-solver/internal/rng"
	"github.com/eternity2/ga-solver/internal/selection"
	"github.com/eternity2/ga-solver/pool"
)

// DefaultStagnationCap is the number of stagnant generations tolerated
// before a population is discarded and rebuilt from scratch.
const DefaultStagnationCap = 200

// Run drives the solver to completion: it returns the best board found
// once a generation's fitness reaches fitness.MaxFitness for the given
// board size, or earlier if ctx is canceled, in which case the best board
// found so far is returned alongside ctx.Err().
func Run(ctx context.Context, s Settings, pieces []piece.Piece, r *rng.Source, rec Recorder) (*board.Board, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if rec == nil {
		rec = noopRecorder{}
	}

	w := fitness.DefaultWeights
	maxFit := fitness.MaxFitness(s.BoardSize, w)
	universe := pieceIDs(pieces)

	workers := pool.New(ctx, s.PopSize)
	defer workers.Close()

	current, err := buildPopulation(pieces, s, r)
	if err != nil {
		return nil, err
	}

	checkPopulation(current, universe, s.StartPiece)

	evaluatePopulation(current, w, workers)

	best := bestOf(current).Clone()
	bestFitnessEver := best.FitScore
	stagnation := stagnationCap(s)
	generation := 0

	for bestFitnessEver != maxFit {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		bestThisGen := bestOf(current)

		if bestThisGen.FitScore > bestFitnessEver {
			bestFitnessEver = bestThisGen.FitScore
			best = bestThisGen.Clone()
			stagnation = stagnationCap(s)
		} else {
			stagnation--
		}

		if stagnation == 0 {
			current, err = buildPopulation(pieces, s, r)
			if err != nil {
				return best, err
			}

			checkPopulation(current, universe, s.StartPiece)
			evaluatePopulation(current, w, workers)
			stagnation = stagnationCap(s)
			generation++
			rec.Record(generation, bestOf(current).FitScore)

			continue
		}

		previous := current
		current = advanceGeneration(previous, s, r)
		checkPopulation(current, universe, s.StartPiece)
		evaluatePopulation(current, w, workers)
		generation++
		rec.Record(generation, bestOf(current).FitScore)
	}

	return best, nil
}

func stagnationCap(s Settings) int {
	if s.StagnationCap > 0 {
		return s.StagnationCap
	}

	return DefaultStagnationCap
}

// buildPopulation builds s.PopSize boards, loading a fresh inventory for
// each one since Build consumes its inventory destructively.
func buildPopulation(pieces []piece.Piece, s Settings, r *rng.Source) ([]*board.Board, error) {
	pop := make([]*board.Board, s.PopSize)

	for i := range pop {
		inv := inventory.Load(pieces)

		b, err := builder.Build(inv, s.BoardSize, s.StartPiece, r)
		if err != nil {
			return nil, err
		}

		b.ID = i
		pop[i] = b
	}

	return pop, nil
}

func pieceIDs(pieces []piece.Piece) []int {
	ids := make([]int, len(pieces))
	for i, p := range pieces {
		ids[i] = p.ID
	}

	return ids
}

// checkPopulation runs board.CheckInvariants over every board in pop. It is
// a no-op unless board.Debug is set; a violation is a programmer error in
// one of the operators, not a recoverable condition, so it panics rather
// than returning an error the caller has no sane way to act on.
func checkPopulation(pop []*board.Board, universe []int, startPiece bool) {
	if !board.Debug {
		return
	}

	for _, b := range pop {
		if err := board.CheckInvariants(b, universe, startPiece); err != nil {
			panic(err)
		}
	}
}

// evaluatePopulation scores every board in pop over the worker pool. Each
// job writes only its own board's scalars, and every operator that reads
// them runs after Wait, so the generation-best sequence stays identical to
// a sequential scan under a fixed seed. If the run is canceled mid-scan the
// pool skips the remaining jobs; Run sees ctx.Err before the half-scored
// population is used for anything but the best-effort return.
func evaluatePopulation(pop []*board.Board, w fitness.Weights, workers *pool.Pool) {
	for _, b := range pop {
		workers.Submit(func() {
			b.FitScore, b.MatchCount = fitness.Evaluate(b, w)
		})
	}

	workers.Wait()
}

// bestOf returns the highest-ordered board in pop by board.Less.
func bestOf(pop []*board.Board) *board.Board {
	best := pop[0]

	for _, b := range pop[1:] {
		if board.Less(best, b) {
			best = b
		}
	}

	return best
}

// advanceGeneration produces the next population from previous: the top
// EliteCount boards are copied verbatim, the remainder is filled by
// selecting parents from previous and applying crossover, then
// MutationCount mutations are applied to uniformly-chosen candidates of the
// resulting (post-crossover) population, excluding the elite prefix.
func advanceGeneration(previous []*board.Board, s Settings, r *rng.Source) []*board.Board {
	ranked := make([]*board.Board, len(previous))
	copy(ranked, previous)
	sort.Slice(ranked, func(i, j int) bool { return board.Less(ranked[j], ranked[i]) })

	next := make([]*board.Board, 0, s.PopSize)

	for i := 0; i < s.EliteCount() && i < len(ranked); i++ {
		next = append(next, ranked[i].Clone())
	}

	for len(next) < s.PopSize {
		i1 := selectParent(previous, s, r)
		i2 := selectParent(previous, s, r)

		var c1, c2 *board.Board

		if s.Crossover == CrossoverTwoPoint {
			c1, c2 = crossover.TwoPoint(previous[i1], previous[i2], s.StartPiece, r)
		} else {
			c1, c2 = crossover.OnePoint(previous[i1], previous[i2], s.StartPiece, r)
		}

		next = append(next, c1)

		if len(next) < s.PopSize {
			next = append(next, c2)
		}
	}

	for i, b := range next {
		b.ID = i
	}

	// Elites must survive the generation verbatim, so mutation draws only
	// from the crossover-produced tail of the population.
	firstMutable := s.EliteCount()
	if firstMutable >= len(next) {
		return next
	}

	for i := 0; i < s.MutationCount(); i++ {
		idx := r.Intn(firstMutable, len(next)-1)
		mutation.Apply(next[idx], s.Mutation, s.StartPiece, r)
	}

	return next
}

func selectParent(previous []*board.Board, s Settings, r *rng.Source) int {
	if s.Selection == SelectionTournament {
		return selection.Tournament(previous, r, s.TournamentK)
	}

	return selection.Roulette(previous, r)
}
