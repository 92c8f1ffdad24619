// ABOUTME: Tests for piece database parsing and puzzle directory scanning
// ABOUTME: Validates good/malformed/count-mismatch records and concurrent directory scan filtering

package puzzle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFixture(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}

	return path
}

func TestReadPieceDB(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		body    string
		n       int
		wantIDs []int
		wantErr error
	}{
		{
			name: "four pieces for a 2x2 board",
			body: "1 0 2 3 0\n" +
				"2 0 4 5 2\n" +
				"3 3 6 0 7\n" +
				"4 5 8 0 6\n",
			n:       2,
			wantIDs: []int{1, 2, 3, 4},
		},
		{
			name:    "blank lines and comments are skipped",
			body:    "# piece database\n\n1 0 2 3 0\n2 0 4 5 2\n\n# trailing\n3 3 6 0 7\n4 5 8 0 6\n",
			n:       2,
			wantIDs: []int{1, 2, 3, 4},
		},
		{
			name:    "malformed line wrong field count",
			body:    "1 0 2 3\n",
			n:       1,
			wantErr: ErrMalformedLine,
		},
		{
			name:    "malformed line non-numeric field",
			body:    "1 0 2 x 0\n",
			n:       1,
			wantErr: ErrMalformedLine,
		},
		{
			name:    "too few records for board size",
			body:    "1 0 2 3 0\n",
			n:       2,
			wantErr: ErrCountMismatch,
		},
		{
			name:    "too many records for board size",
			body:    "1 0 2 3 0\n2 0 4 5 2\n",
			n:       1,
			wantErr: ErrCountMismatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, dir, tc.name+".e2", tc.body)

			pieces, err := ReadPieceDB(path, tc.n)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ReadPieceDB() error = %v, want %v", err, tc.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("ReadPieceDB() unexpected error: %v", err)
			}

			if len(pieces) != len(tc.wantIDs) {
				t.Fatalf("ReadPieceDB() returned %d pieces, want %d", len(pieces), len(tc.wantIDs))
			}

			for i, id := range tc.wantIDs {
				if pieces[i].ID != id {
					t.Errorf("pieces[%d].ID = %d, want %d", i, pieces[i].ID, id)
				}
			}
		})
	}
}

func TestReadPieceDBMissingFile(t *testing.T) {
	if _, err := ReadPieceDB(filepath.Join(t.TempDir(), "missing.e2"), 2); err == nil {
		t.Error("expected an error reading a nonexistent piece database, got nil")
	}
}

func TestScanFiltersToValidPieceDatabases(t *testing.T) {
	dir := t.TempDir()

	valid1 := writeFixture(t, dir, "a.e2", "1 0 2 3 0\n2 0 4 5 2\n3 3 6 0 7\n4 5 8 0 6\n")
	valid2 := writeFixture(t, dir, "b.e2", "1 0 2 3 0\n2 0 4 5 2\n3 3 6 0 7\n4 5 8 0 6\n")
	writeFixture(t, dir, "c.e2", "1 0 2 3 0\n") // wrong count for a 2x2 board
	writeFixture(t, dir, "notes.txt", "1 0 2 3 0\n2 0 4 5 2\n3 3 6 0 7\n4 5 8 0 6\n")

	got, err := Scan(context.Background(), dir, 2)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := map[string]bool{valid1: true, valid2: true}

	if len(got) != len(want) {
		t.Fatalf("Scan() returned %d paths, want %d: %v", len(got), len(want), got)
	}

	for _, path := range got {
		if !want[path] {
			t.Errorf("Scan() returned unexpected path %s", path)
		}
	}
}

func TestScanOnEmptyDirectory(t *testing.T) {
	got, err := Scan(context.Background(), t.TempDir(), 2)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("Scan() on an empty directory = %v, want none", got)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := Scan(context.Background(), filepath.Join(t.TempDir(), "missing"), 2); err == nil {
		t.Error("expected an error scanning a nonexistent directory, got nil")
	}
}

func TestWatchNotifiesOnNewPieceDatabase(t *testing.T) {
	dir := t.TempDir()
	stop := make(chan struct{})
	defer close(stop)

	seen := make(chan string, 1)

	if err := Watch(dir, stop, func(path string) { seen <- path }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	want := writeFixture(t, dir, "new.e2", "1 0 2 3 0\n2 0 4 5 2\n3 3 6 0 7\n4 5 8 0 6\n")

	select {
	case got := <-seen:
		if got != want {
			t.Errorf("Watch reported path %s, want %s", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not report the new piece database within the timeout")
	}
}
