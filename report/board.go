// ABOUTME: Lipgloss-styled grid rendering of a board snapshot, colored by piece Kind
// ABOUTME: Cells are styled per piece kind so the border frame reads at a glance

// Package report formats solver output for a terminal: a styled board grid
// and a tabular fitness trace.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eternity2/ga-solver/internal/board"
	"github.com/eternity2/ga-solver/internal/piece"
)

var (
	cornerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	edgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	innerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// RenderBoard formats a board snapshot as a grid of "id/orientation" cells,
// each colored by the piece's Kind, with a title line reporting fit score
// and match count.
func RenderBoard(s board.Snapshot) string {
	var b strings.Builder

	title := fmt.Sprintf("fit_score=%d match_count=%d", s.FitScore, s.MatchCount)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	width := cellWidth(s)

	for _, row := range s.Grid {
		for _, cell := range row {
			text := fmt.Sprintf("%*s", width, fmt.Sprintf("%d/%d", cell.PieceID, cell.Orientation))
			b.WriteString(styleFor(cell.Kind).Render(text))
			b.WriteString(" ")
		}

		b.WriteString("\n")
	}

	return b.String()
}

func styleFor(k piece.Kind) lipgloss.Style {
	switch k {
	case piece.Corner:
		return cornerStyle
	case piece.Edge:
		return edgeStyle
	default:
		return innerStyle
	}
}

// cellWidth sizes each cell to the widest "id/orientation" label on the
// board so columns line up regardless of piece-id magnitude.
func cellWidth(s board.Snapshot) int {
	width := 0

	for _, row := range s.Grid {
		for _, cell := range row {
			w := len(fmt.Sprintf("%d/%d", cell.PieceID, cell.Orientation))
			if w > width {
				width = w
			}
		}
	}

	return width
}
