// ABOUTME: Entry point for the eternity2 solver application
// ABOUTME: Handles command-line parsing, profiling, and routing into RunCLI

// Package main provides the entry point for the solver: a genetic
// algorithm that assembles an Eternity-II-style edge-matching puzzle.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/eternity2/ga-solver/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	settingsPath := flag.String("settings", "", "path to a TOML settings file (default: ./eternity2-solver.toml, else ~/.config/eternity2-solver/settings.toml, falling back to built-in defaults)")
	output := flag.String("output", "", "write the solved board to this file")
	seed := flag.Int64("seed", 0, "fixed random seed for a reproducible run (0 means seed from the clock)")
	debugChecks := flag.Bool("debug", false, "enable expensive invariant checks on every built or advanced population")
	traceEvery := flag.Int("trace-every", 50, "print one fitness trace row every N generations")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: eternity2-solver [flags] <piece-database.e2>")
		fmt.Println("Example: eternity2-solver puzzles/16x16_5.e2")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	pieceDBPath := args[0]

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	resolvedSettings := *settingsPath
	if resolvedSettings == "" {
		resolvedSettings = config.GetConfigPath()
	}

	err := RunCLI(RunOptions{
		PieceDBPath:  pieceDBPath,
		SettingsPath: resolvedSettings,
		OutputPath:   *output,
		Seed:         *seed,
		Debug:        *debugChecks,
		TraceEveryN:  *traceEvery,
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("solver error: %v", err)

		return 1
	}

	return 0
}

// setupCPUProfile starts CPU profiling, returns cleanup function.
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file.
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
