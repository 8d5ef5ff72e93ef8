// Package grid provides the rectangular byte grid used by the map-shaped
// puzzles, along with points and compass directions.
package grid

import (
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
)

// Grid is a rectangular grid of bytes addressed by Point.
type Grid struct {
	cells [][]byte
}

// Parse reads one row per line. Every row must have the same width.
func Parse(s string) (*Grid, error) {
	lines := input.Lines(s)
	if len(lines) == 0 {
		return nil, input.Malformed("empty grid")
	}
	cells := make([][]byte, len(lines))
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, input.Malformed("row %d has width %d, want %d", i, len(line), len(lines[0]))
		}
		cells[i] = []byte(line)
	}
	return &Grid{cells: cells}, nil
}

// New returns a rows x cols grid filled with fill.
func New(rows, cols int, fill byte) *Grid {
	cells := make([][]byte, rows)
	for i := range cells {
		cells[i] = []byte(strings.Repeat(string(fill), cols))
	}
	return &Grid{cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// In reports whether p lies inside the grid.
func (g *Grid) In(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Col >= 0 && p.Col < g.Cols()
}

// At returns the byte at p. p must be inside the grid.
func (g *Grid) At(p Point) byte { return g.cells[p.Row][p.Col] }

// Set stores b at p.
func (g *Grid) Set(p Point, b byte) { g.cells[p.Row][p.Col] = b }

// Row returns row r. The slice aliases the grid.
func (g *Grid) Row(r int) []byte { return g.cells[r] }

// Find returns the first point holding b in row-major order.
func (g *Grid) Find(b byte) (Point, bool) {
	for r, row := range g.cells {
		for c, v := range row {
			if v == b {
				return Point{r, c}, true
			}
		}
	}
	return Point{}, false
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]byte, len(g.cells))
	for i, row := range g.cells {
		cells[i] = append([]byte(nil), row...)
	}
	return &Grid{cells: cells}
}

// String renders the grid one row per line, without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
