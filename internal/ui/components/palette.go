package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/examdeck/internal/ui/theme"
)

// CellState classifies a palette cell for coloring.
type CellState int

const (
	CellUnvisited CellState = iota
	CellVisited
	CellAnswered
	CellReview
)

// Palette is the question navigation grid. Each cell shows a question
// number colored by its answer state; the cursor tracks the cell a jump
// would land on.
type Palette struct {
	States  []CellState
	Current int
	Cursor  int
	Columns int
}

// NewPalette creates a palette over n questions.
func NewPalette(n int) Palette {
	return Palette{
		States:  make([]CellState, n),
		Columns: 10,
	}
}

// MoveCursor shifts the cursor by delta cells, clamped to the grid.
func (p Palette) MoveCursor(delta int) Palette {
	next := p.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(p.States) {
		next = len(p.States) - 1
	}
	p.Cursor = next
	return p
}

// View renders the grid with a legend.
func (p Palette) View(width int) string {
	cols := p.Columns
	if cols <= 0 {
		cols = 10
	}

	var b strings.Builder
	for i, state := range p.States {
		cell := fmt.Sprintf(" %2d ", i+1)

		var style lipgloss.Style
		switch state {
		case CellAnswered:
			style = theme.CellAnswered
		case CellVisited:
			style = theme.CellVisited
		case CellReview:
			style = theme.CellReview
		default:
			style = theme.CellUnvisited
		}
		if i == p.Current {
			style = theme.CellCurrent
		}
		if i == p.Cursor {
			style = style.Underline(true).Bold(true)
		}

		b.WriteString(style.Render(cell))
		if (i+1)%cols == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if len(p.States)%cols != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(paletteLegend())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func paletteLegend() string {
	entries := []struct {
		style lipgloss.Style
		label string
	}{
		{theme.CellAnswered, "answered"},
		{theme.CellVisited, "visited"},
		{theme.CellReview, "review"},
		{theme.CellUnvisited, "not seen"},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.style.Render("  ")+" "+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.label))
	}
	return strings.Join(parts, "   ")
}
