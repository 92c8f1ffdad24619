// ABOUTME: CLI mode implementation for non-interactive puzzle solving
// ABOUTME: Handles progress display, result output, and signal handling for command-line usage

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/config"
	"github.com/eternity2/ga-solver/internal/ga"
	"github.com/eternity2/ga-solver/internal/puzzle"
	"github.com/eternity2/ga-solver/internal/rng"
	"github.com/eternity2/ga-solver/report"
)

const spinnerUpdateInterval = 500 * time.Millisecond

// RunOptions configures a single solve invocation.
type RunOptions struct {
	PieceDBPath  string
	SettingsPath string
	OutputPath   string
	Seed         int64
	Debug        bool
	TraceEveryN  int
}

// isTTY checks if the given file is a terminal.
func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}

// RunCLI loads settings and a piece database, runs the solver to
// completion or cancellation, and prints the resulting board.
func RunCLI(opts RunOptions) error {
	board.Debug = opts.Debug

	settings, err := config.Load(opts.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	pieces, err := puzzle.ReadPieceDB(opts.PieceDBPath, settings.BoardSize)
	if err != nil {
		return fmt.Errorf("failed to load piece database: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop
		cancel()
	}()

	source := rng.New()
	if opts.Seed != 0 {
		source = rng.NewSeeded(opts.Seed)
	}

	trace := &report.Trace{EveryN: opts.TraceEveryN}

	fmt.Printf("Solving %dx%d board (%d pieces, pattern_num=%d)...\n",
		settings.BoardSize, settings.BoardSize, len(pieces), settings.PatternNum)
	fmt.Println("Press Ctrl+C to stop early and keep the best board found so far.")

	startTime := time.Now()

	isTerminal := isTTY(os.Stdout)
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinnerIdx := 0

	if isTerminal {
		go func() {
			ticker := time.NewTicker(spinnerUpdateInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					fmt.Printf("\r%6s %s     ", time.Since(startTime).Round(time.Second), spinnerFrames[spinnerIdx])
					spinnerIdx = (spinnerIdx + 1) % len(spinnerFrames)
				}
			}
		}()
	}

	best, runErr := ga.Run(ctx, settings, pieces, source, trace)

	if isTerminal {
		fmt.Print("\r\033[K")
	}

	if best == nil {
		return fmt.Errorf("solve failed: %w", runErr)
	}

	fmt.Printf("\nFinished in %v\n\n", time.Since(startTime).Round(time.Millisecond))
	fmt.Print(report.RenderBoard(best.Snapshot()))
	fmt.Println()

	if err := trace.Flush(os.Stdout); err != nil {
		log.Printf("Warning: failed to flush fitness trace: %v", err)
	}

	if opts.OutputPath != "" {
		if err := writeBoard(opts.OutputPath, best.Snapshot()); err != nil {
			return fmt.Errorf("failed to write solved board: %w", err)
		}

		fmt.Printf("\nWrote solved board to %s\n", opts.OutputPath)
	}

	return runErr
}

func writeBoard(path string, snap board.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("Warning: failed to close output file: %v", closeErr)
		}
	}()

	_, err = fmt.Fprint(f, report.RenderBoard(snap))

	return err
}
