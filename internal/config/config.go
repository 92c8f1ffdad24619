// ABOUTME: TOML loading/saving for ga.Settings, with fallback to defaults on a missing file
// ABOUTME: A missing settings file is not an error; built-in defaults are used instead

// Package config loads and saves the solver's run settings as TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/eternity2/ga-solver/internal/ga"
	"github.com/eternity2/ga-solver/internal/mutation"
)

// fileSettings is the TOML-facing schema; ga.Settings stays free of struct
// tags so the core engine carries no serialization concerns.
type fileSettings struct {
	BoardSize     int     `toml:"board_size"`
	PatternNum    int     `toml:"pattern_num"`
	PopSize       int     `toml:"pop_size"`
	Selection     string  `toml:"selection"`
	Crossover     string  `toml:"crossover"`
	Mutation      string  `toml:"mutation"`
	MutRate       float64 `toml:"mut_rate"`
	EliteRate     int     `toml:"elite_rate"`
	StartPiece    bool    `toml:"start_piece"`
	TournamentK   int     `toml:"tournament_k"`
	StagnationCap int     `toml:"stagnation_cap"`
}

// GetConfigPath returns the default settings file path: the current
// directory first, falling back to ~/.config/eternity2-solver/settings.toml.
func GetConfigPath() string {
	if _, err := os.Stat("./eternity2-solver.toml"); err == nil {
		return "./eternity2-solver.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./eternity2-solver.toml"
	}

	return filepath.Join(home, ".config", "eternity2-solver", "settings.toml")
}

// Load reads settings from a TOML file at path. A missing file is not an
// error: Default() is returned instead, so the solver can run without any
// settings file present.
func Load(path string) (ga.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return Default(), fmt.Errorf("failed to read settings file: %w", err)
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return Default(), fmt.Errorf("failed to parse settings file: %w", err)
	}

	return fromFile(fs), nil
}

// Save writes settings to path as TOML, creating parent directories as
// needed.
func Save(path string, settings ga.Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close settings file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(toFile(settings)); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// Default returns the settings this repository ships as a starting point:
// a 16x16 board with the start-piece constraint active, roulette selection,
// one-point crossover, and swap mutation.
func Default() ga.Settings {
	return ga.Settings{
		BoardSize:     16,
		PatternNum:    5,
		PopSize:       200,
		Selection:     ga.SelectionRoulette,
		Crossover:     ga.CrossoverOnePoint,
		Mutation:      mutation.Swap,
		MutationRate:  10,
		EliteRate:     10,
		StartPiece:    true,
		TournamentK:   5,
		StagnationCap: ga.DefaultStagnationCap,
	}
}

func fromFile(fs fileSettings) ga.Settings {
	return ga.Settings{
		BoardSize:     fs.BoardSize,
		PatternNum:    fs.PatternNum,
		PopSize:       fs.PopSize,
		Selection:     ga.SelectionMethod(fs.Selection),
		Crossover:     ga.CrossoverMethod(fs.Crossover),
		Mutation:      mutation.Method(fs.Mutation),
		MutationRate:  fs.MutRate,
		EliteRate:     fs.EliteRate,
		StartPiece:    fs.StartPiece,
		TournamentK:   fs.TournamentK,
		StagnationCap: fs.StagnationCap,
	}
}

func toFile(s ga.Settings) fileSettings {
	return fileSettings{
		BoardSize:     s.BoardSize,
		PatternNum:    s.PatternNum,
		PopSize:       s.PopSize,
		Selection:     string(s.Selection),
		Crossover:     string(s.Crossover),
		Mutation:      string(s.Mutation),
		MutRate:       s.MutationRate,
		EliteRate:     s.EliteRate,
		StartPiece:    s.StartPiece,
		TournamentK:   s.TournamentK,
		StagnationCap: s.StagnationCap,
	}
}
