package crossover

import (
	"testing"

	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/builder"
	"github.com/eternity2/ga-solver/internal/inventory"
	"github.com/eternity2/ga-solver/internal/piece"
	"github.com/eternity2/ga-solver/internal/rng"
)

// fullPieceSet mirrors the builder package's test helper: a structurally
// valid N×N piece set with sequential ids, outward segments forced to Border.
func fullPieceSet(n int) []piece.Piece {
	var pieces []piece.Piece
	id := 1

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			segs := [4]int{100 + 10*row + col, 200 + 10*row + col, 300 + 10*row + col, 400 + 10*row + col}

			for _, loc := range board.OutwardLocations(row, col, n) {
				segs[loc] = piece.Border
			}

			pieces = append(pieces, piece.New(id, segs))
			id++
		}
	}

	return pieces
}

func buildBoard(t *testing.T, n int, seed int64, startPiece bool) *board.Board {
	t.Helper()

	inv := inventory.Load(fullPieceSet(n))
	b, err := builder.Build(inv, n, startPiece, rng.NewSeeded(seed))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return b
}

func assertFullPermutation(t *testing.T, c *board.Board) {
	t.Helper()

	seen := make(map[int]bool, c.Size*c.Size)

	for row := 0; row < c.Size; row++ {
		for col := 0; col < c.Size; col++ {
			id := c.Slots[row][col].ID

			if seen[id] {
				t.Fatalf("child board has duplicate piece id %d after repair", id)
			}

			seen[id] = true
		}
	}

	if len(seen) != c.Size*c.Size {
		t.Fatalf("child board has %d distinct pieces, want %d", len(seen), c.Size*c.Size)
	}
}

func assertSlotKinds(t *testing.T, c *board.Board) {
	t.Helper()

	for row := 0; row < c.Size; row++ {
		for col := 0; col < c.Size; col++ {
			want := board.SlotKind(row, col, c.Size)
			got := c.Slots[row][col].Kind

			if want != got {
				t.Fatalf("slot (%d,%d) holds a %v piece, want %v", row, col, got, want)
			}
		}
	}
}

func assertBorderOrientation(t *testing.T, c *board.Board) {
	t.Helper()

	for row := 0; row < c.Size; row++ {
		for col := 0; col < c.Size; col++ {
			p := c.Slots[row][col]

			for _, loc := range board.OutwardLocations(row, col, c.Size) {
				if p.SegmentAt(loc) != piece.Border {
					t.Fatalf("piece %d at (%d,%d) has non-border outward segment after repair", p.ID, row, col)
				}
			}
		}
	}
}

func TestOnePointRepairProducesValidPermutation(t *testing.T) {
	const size = 8

	p1 := buildBoard(t, size, 1, false)
	p2 := buildBoard(t, size, 2, false)
	r := rng.NewSeeded(10)

	c1, c2 := OnePoint(p1, p2, false, r)

	for _, c := range []*board.Board{c1, c2} {
		assertFullPermutation(t, c)
		assertSlotKinds(t, c)
		assertBorderOrientation(t, c)
	}
}

func TestTwoPointRepairProducesValidPermutation(t *testing.T) {
	const size = 8

	p1 := buildBoard(t, size, 3, false)
	p2 := buildBoard(t, size, 4, false)
	r := rng.NewSeeded(11)

	c1, c2 := TwoPoint(p1, p2, false, r)

	for _, c := range []*board.Board{c1, c2} {
		assertFullPermutation(t, c)
		assertSlotKinds(t, c)
		assertBorderOrientation(t, c)
	}
}

func TestCrossoverKeepsStartPiecePinnedWhenActive(t *testing.T) {
	const size = 16

	p1 := buildBoard(t, size, 5, true)
	p2 := buildBoard(t, size, 6, true)
	r := rng.NewSeeded(12)

	c1, c2 := OnePoint(p1, p2, true, r)

	for _, c := range []*board.Board{c1, c2} {
		start := c.Slots[board.StartSlotRow][board.StartSlotCol]
		if start.ID != board.StartPieceID || start.Orientation != 0 {
			t.Fatalf("start slot holds id=%d orientation=%d, want id=%d orientation=0",
				start.ID, start.Orientation, board.StartPieceID)
		}
	}
}

func TestRepairFillsManuallyInducedDuplicate(t *testing.T) {
	const size = 6

	c := buildBoard(t, size, 13, false)
	universe := buildBoard(t, size, 13, false) // same inventory, different board object

	// Force a duplicate: overwrite an inner slot with another inner slot's piece.
	c.Slots[2][2] = c.Slots[3][3]

	repair(c, universe, false)

	assertFullPermutation(t, c)
	assertSlotKinds(t, c)
	assertBorderOrientation(t, c)
}

func TestRepairIsNoopWhenNoDuplicates(t *testing.T) {
	const size = 6

	c := buildBoard(t, size, 20, false)
	universe := buildBoard(t, size, 20, false)

	before := c.PieceIDs()
	repair(c, universe, false)
	after := c.PieceIDs()

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("repair changed a board with no duplicates at index %d: %d -> %d", i, before[i], after[i])
		}
	}
}
