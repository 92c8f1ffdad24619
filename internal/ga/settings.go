// ABOUTME: External-facing run configuration, validated once at construction time
// ABOUTME: Field set exactly matches the TOML schema internal/config loads

package ga

import (
	"fmt"

	"github.com/eternity2/ga-solver/internal/mutation"
)

// SelectionMethod names which internal/selection variant to use.
type SelectionMethod string

const (
	SelectionRoulette   SelectionMethod = "roulette"
	SelectionTournament SelectionMethod = "tournament"
)

// CrossoverMethod names which internal/crossover variant to use.
type CrossoverMethod string

const (
	CrossoverOnePoint CrossoverMethod = "one-point"
	CrossoverTwoPoint CrossoverMethod = "two-point"
)

// Settings is the full external configuration for a solver run.
type Settings struct {
	BoardSize     int
	PatternNum    int
	PopSize       int
	Selection     SelectionMethod
	Crossover     CrossoverMethod
	Mutation      mutation.Method
	MutationRate  float64 // percent, 0-100
	EliteRate     int     // percent, 0-100
	StartPiece    bool
	TournamentK   int // only used when Selection == SelectionTournament
	StagnationCap int // generations without improvement before a restart
}

// Validate checks every field's range and combinatorial constraints. The
// core is entitled to assume a validated Settings from here on.
func (s Settings) Validate() error {
	switch {
	case s.BoardSize < 4:
		return fmt.Errorf("%w: board_size must be >= 4, got %d", ErrInvalidConfig, s.BoardSize)
	case s.PatternNum < 2:
		return fmt.Errorf("%w: pattern_num must be >= 2, got %d", ErrInvalidConfig, s.PatternNum)
	case s.PopSize < 2:
		return fmt.Errorf("%w: pop_size must be >= 2, got %d", ErrInvalidConfig, s.PopSize)
	case s.MutationRate < 0 || s.MutationRate > 100:
		return fmt.Errorf("%w: mut_rate must be within 0-100, got %v", ErrInvalidConfig, s.MutationRate)
	case s.EliteRate < 0 || s.EliteRate > 100:
		return fmt.Errorf("%w: elite_rate must be within 0-100, got %d", ErrInvalidConfig, s.EliteRate)
	}

	switch s.Selection {
	case SelectionRoulette, SelectionTournament:
	default:
		return fmt.Errorf("%w: unknown selection method %q", ErrInvalidConfig, s.Selection)
	}

	switch s.Crossover {
	case CrossoverOnePoint, CrossoverTwoPoint:
	default:
		return fmt.Errorf("%w: unknown crossover method %q", ErrInvalidConfig, s.Crossover)
	}

	switch s.Mutation {
	case mutation.Swap, mutation.Rotate, mutation.RotateSwap, mutation.RegionRotate, mutation.RegionSwap:
	default:
		return fmt.Errorf("%w: unknown mutation method %q", ErrInvalidConfig, s.Mutation)
	}

	if s.Selection == SelectionTournament && s.TournamentK < 1 {
		return fmt.Errorf("%w: tournament selection requires tournament_k >= 1, got %d", ErrInvalidConfig, s.TournamentK)
	}

	return nil
}

// EliteCount computes elite_rate * pop_size / 100, rounded down.
func (s Settings) EliteCount() int {
	return s.EliteRate * s.PopSize / 100
}

// MutationCount computes mut_rate * pop_size / 100, rounded down.
func (s Settings) MutationCount() int {
	return int(s.MutationRate * float64(s.PopSize) / 100)
}
