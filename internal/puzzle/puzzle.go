// ABOUTME: Piece database parsing, puzzle-file directory scanning and live watching
// ABOUTME: Scanning fans concurrent parses out over the worker pool; watching uses fsnotify

// Package puzzle loads Eternity-II-style piece databases (".e2" files, one
// "piece_id seg_top seg_right seg_bottom seg_left" record per line) and
// discovers/watches a directory of them.
package puzzle

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/eternity2/ga-solver/internal/piece"
	"github.com/eternity2/ga-solver/pool"
)

// ReadPieceDB parses path as a piece database: one "id top right bottom
// left" record per line, blank lines and "#"-prefixed comments skipped.
// Returns ErrCountMismatch if the file does not contain exactly n*n
// records, matching an N×N board's piece count.
func ReadPieceDB(path string, n int) ([]piece.Piece, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open piece database: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	var pieces []piece.Piece

	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := parseLine(line)
		if err != nil {
			return nil, err
		}

		pieces = append(pieces, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading piece database: %w", err)
	}

	if want := n * n; len(pieces) != want {
		return nil, fmt.Errorf("%w: %s has %d entries, want %d", ErrCountMismatch, path, len(pieces), want)
	}

	return pieces, nil
}

func parseLine(line string) (piece.Piece, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return piece.Piece{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	vals := make([]int, 5)

	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return piece.Piece{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		vals[i] = v
	}

	return piece.New(vals[0], [4]int{vals[1], vals[2], vals[3], vals[4]}), nil
}

// Scan lists the ".e2" puzzle files in dir, parsing each one concurrently
// over a worker pool sized to fetch multiple piece databases (e.g. one per
// candidate board size) at once. Files that fail to parse as a valid piece
// database are silently skipped, matching the directory scan's role as a
// discovery aid rather than a strict validator. Canceling ctx abandons the
// parses still queued; files already validated are returned.
func Scan(ctx context.Context, dir string, boardSize int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan puzzle directory: %w", err)
	}

	var candidates []string

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".e2" {
			continue
		}

		candidates = append(candidates, filepath.Join(dir, e.Name()))
	}

	results := make([]string, len(candidates))

	p := pool.New(ctx, len(candidates))

	for i, path := range candidates {
		p.Submit(func() {
			// Each task only ever writes its own index, so the slice needs
			// no synchronization across workers.
			if _, err := ReadPieceDB(path, boardSize); err == nil {
				results[i] = path
			}
		})
	}

	p.Wait()
	p.Close()

	valid := make([]string, 0, len(results))

	for _, r := range results {
		if r != "" {
			valid = append(valid, r)
		}
	}

	return valid, nil
}

// Watch uses fsnotify to watch dir for newly created ".e2" files, invoking
// onNew with each one's path from a dedicated goroutine. Closing stop ends
// the watch and releases the watcher.
func Watch(dir string, stop <-chan struct{}, onNew func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()

		return fmt.Errorf("failed to watch puzzle directory: %w", err)
	}

	go func() {
		defer func() {
			_ = watcher.Close()
		}()

		for {
			select {
			case <-stop:
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if event.Op&fsnotify.Create == fsnotify.Create && filepath.Ext(event.Name) == ".e2" {
					onNew(event.Name)
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return nil
}
