// Package day13 finds the line of reflection in each pattern of ash and
// rocks.
package day13

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 13 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(13, 1, Part1)
	r.Register(13, 2, Part2)
}

// Part1 summarises perfect reflections: columns left of a vertical line
// plus 100 times the rows above a horizontal one.
func Part1(_ context.Context, in string) (string, error) {
	return summarise(in, 0)
}

// Part2 requires exactly one smudge, a single cell that differs from its
// mirror image.
func Part2(_ context.Context, in string) (string, error) {
	return summarise(in, 1)
}

func summarise(in string, smudges int) (string, error) {
	total := 0
	for i, block := range input.Blocks(in) {
		g, err := grid.Parse(block)
		if err != nil {
			return "", err
		}
		rows, cols := Lines(g)
		if n, ok := Reflection(rows, smudges); ok {
			total += 100 * n
			continue
		}
		if n, ok := Reflection(cols, smudges); ok {
			total += n
			continue
		}
		return "", input.Malformed("pattern %d has no reflection with %d smudge(s)", i+1, smudges)
	}
	return strconv.Itoa(total), nil
}

// Lines returns the pattern's rows and its columns, each as a string read
// top to bottom or left to right.
func Lines(g *grid.Grid) (rows, cols []string) {
	rows = make([]string, g.Rows())
	colBytes := make([][]byte, g.Cols())
	for r := 0; r < g.Rows(); r++ {
		row := g.Row(r)
		rows[r] = string(row)
		for c, b := range row {
			colBytes[c] = append(colBytes[c], b)
		}
	}
	cols = make([]string, len(colBytes))
	for c, b := range colBytes {
		cols[c] = string(b)
	}
	return rows, cols
}

// Reflection returns how many lines precede the mirror whose reflected
// lines differ in exactly `smudges` cells.
func Reflection(lines []string, smudges int) (int, bool) {
	for split := 1; split < len(lines); split++ {
		diff := 0
		for a, b := split-1, split; a >= 0 && b < len(lines) && diff <= smudges; a, b = a-1, b+1 {
			diff += differing(lines[a], lines[b])
		}
		if diff == smudges {
			return split, true
		}
	}
	return 0, false
}

func differing(a, b string) int {
	n := 0
	for i := range len(a) {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
