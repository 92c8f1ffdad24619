package ga

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/fitness"
	"github.com/eternity2/ga-solver/internal/mutation"
	"github.com/eternity2/ga-solver/internal/piece"
	"github.com/eternity2/ga-solver/internal/rng"
	"github.com/eternity2/ga-solver/pool"
)

// solvedPieceSet builds a 4x4 piece set that is already a perfect solution
// in id order: every boundary matches and every outward segment is the
// border pattern. The builder places pieces at random, so a population built
// from it still has to search for that arrangement, but max fitness is
// known to be reachable.
func solvedPieceSet(n int) []piece.Piece {
	segs := make([][4]int, n*n)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			segs[idx] = [4]int{100 + 10*row + col, 200 + 10*row + col, 300 + 10*row + col, 400 + 10*row + col}

			for _, loc := range board.OutwardLocations(row, col, n) {
				segs[idx][loc] = piece.Border
			}
		}
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n-1; col++ {
			right := segs[row*n+col][piece.Right]
			segs[row*n+col+1][piece.Left] = right
		}
	}

	for row := 0; row < n-1; row++ {
		for col := 0; col < n; col++ {
			bottom := segs[row*n+col][piece.Bottom]
			segs[(row+1)*n+col][piece.Top] = bottom
		}
	}

	pieces := make([]piece.Piece, n*n)
	for i, s := range segs {
		pieces[i] = piece.New(i+1, s)
	}

	return pieces
}

func baseSettings(boardSize int) Settings {
	return Settings{
		BoardSize:     boardSize,
		PatternNum:    2,
		PopSize:       10,
		Selection:     SelectionRoulette,
		Crossover:     CrossoverOnePoint,
		Mutation:      mutation.Swap,
		MutationRate:  10,
		EliteRate:     10,
		StartPiece:    false,
		StagnationCap: 50,
	}
}

func TestRunReturnsErrInvalidConfigOnBadSettings(t *testing.T) {
	s := baseSettings(4)
	s.PopSize = 1 // below minimum

	_, err := Run(context.Background(), s, solvedPieceSet(4), rng.NewSeeded(1), nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunSolvesTrivialFourByFourBoard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full GA convergence run in -short mode")
	}

	s := baseSettings(4)
	s.PopSize = 60
	s.MutationRate = 30
	s.EliteRate = 20
	s.StagnationCap = 30
	pieces := solvedPieceSet(4)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	best, err := Run(ctx, s, pieces, rng.NewSeeded(7), nil)
	if err != nil {
		t.Fatalf("Run did not converge within the time budget: %v", err)
	}

	want := fitness.MaxFitness(4, fitness.DefaultWeights)
	if best.FitScore != want {
		t.Fatalf("best.FitScore = %d, want %d (max fitness)", best.FitScore, want)
	}
}

func TestRunRespectsContextCancellation(t *testing.T) {
	s := baseSettings(4)
	s.PopSize = 200 // large enough it is unlikely to already be solved

	pieces := solvedPieceSet(4)

	// Rotate every piece one step so the inner pieces start misoriented and
	// the initial random population is very unlikely to already sit at max
	// fitness, then cancel immediately.
	for i := range pieces {
		pieces[i] = pieces[i].WithOrientation((pieces[i].Orientation + 1) % 4)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	best, err := Run(ctx, s, pieces, rng.NewSeeded(3), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if best == nil {
		t.Fatal("expected a best-effort board even on cancellation")
	}
}

func TestRunInvokesRecorderOnNonImmediateSolve(t *testing.T) {
	s := baseSettings(4)
	s.StagnationCap = 3 // restart early and often so the rebuild path runs too

	pieces := solvedPieceSet(4)
	for i := range pieces {
		pieces[i] = pieces[i].WithOrientation((pieces[i].Orientation + 1) % 4)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &cancelingRecorder{stopAt: 20, cancel: cancel}

	_, err := Run(ctx, s, pieces, rng.NewSeeded(5), rec)
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.pairs) == 0 {
		t.Fatal("recorder was never invoked")
	}

	for i := 1; i < len(rec.pairs); i++ {
		if rec.pairs[i][0] != rec.pairs[i-1][0]+1 {
			t.Fatalf("generation indices not consecutive at %d: %v -> %v", i, rec.pairs[i-1], rec.pairs[i])
		}
	}
}

func TestAdvanceGenerationPreservesElitesVerbatim(t *testing.T) {
	s := baseSettings(4)
	s.PopSize = 20
	s.EliteRate = 20 // 4 elite boards
	s.MutationRate = 100

	pieces := solvedPieceSet(4)
	for i := range pieces {
		pieces[i] = pieces[i].WithOrientation((pieces[i].Orientation + 1) % 4)
	}

	r := rng.NewSeeded(9)

	previous, err := buildPopulation(pieces, s, r)
	if err != nil {
		t.Fatalf("buildPopulation failed: %v", err)
	}

	evaluatePopulation(previous, fitness.DefaultWeights, testPool(t))

	ranked := make([]*board.Board, len(previous))
	copy(ranked, previous)
	sort.Slice(ranked, func(i, j int) bool { return board.Less(ranked[j], ranked[i]) })

	next := advanceGeneration(previous, s, r)

	for i := 0; i < s.EliteCount(); i++ {
		want := ranked[i]
		got := next[i]

		for row := 0; row < want.Size; row++ {
			for col := 0; col < want.Size; col++ {
				w, g := want.Slots[row][col], got.Slots[row][col]
				if w.ID != g.ID || w.Orientation != g.Orientation {
					t.Fatalf("elite %d differs at (%d,%d): got piece %d/%d, want %d/%d",
						i, row, col, g.ID, g.Orientation, w.ID, w.Orientation)
				}
			}
		}
	}
}

func testPool(t *testing.T) *pool.Pool {
	t.Helper()

	p := pool.New(context.Background(), 64)
	t.Cleanup(p.Close)

	return p
}

// cancelingRecorder captures every (generation, best fit score) pair and
// cancels the run after a fixed number of generations, so two runs with the
// same seed stop at the same point and their traces can be compared whole.
type cancelingRecorder struct {
	pairs  [][2]int
	stopAt int
	cancel context.CancelFunc
}

func (c *cancelingRecorder) Record(generation, bestFitScore int) {
	c.pairs = append(c.pairs, [2]int{generation, bestFitScore})

	if generation >= c.stopAt {
		c.cancel()
	}
}

func TestRunIsDeterministicUnderFixedSeed(t *testing.T) {
	runOnce := func() [][2]int {
		s := baseSettings(4)
		s.StagnationCap = 10

		pieces := solvedPieceSet(4)
		for i := range pieces {
			pieces[i] = pieces[i].WithOrientation((pieces[i].Orientation + 1) % 4)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		rec := &cancelingRecorder{stopAt: 30, cancel: cancel}

		if _, err := Run(ctx, s, pieces, rng.NewSeeded(17), rec); err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("unexpected error: %v", err)
		}

		return rec.pairs
	}

	first := runOnce()
	second := runOnce()

	if len(first) != len(second) {
		t.Fatalf("trace lengths differ: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("traces diverge at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestEliteCountAndMutationCountRoundDown(t *testing.T) {
	s := Settings{PopSize: 17, EliteRate: 10, MutationRate: 33.3}

	if got := s.EliteCount(); got != 1 {
		t.Errorf("EliteCount() = %d, want 1", got)
	}

	if got := s.MutationCount(); got != 5 {
		t.Errorf("MutationCount() = %d, want 5", got)
	}
}

func TestRunChecksInvariantsWhenDebugEnabled(t *testing.T) {
	board.Debug = true
	defer func() { board.Debug = false }()

	s := baseSettings(4)
	s.StagnationCap = 5

	pieces := solvedPieceSet(4)
	for i := range pieces {
		pieces[i] = pieces[i].WithOrientation((pieces[i].Orientation + 1) % 4)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// A clean run under Debug=true must not panic: every operator's output
	// satisfies CheckInvariants.
	if _, err := Run(ctx, s, pieces, rng.NewSeeded(11), nil); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("unexpected error: %v", err)
	}
}
