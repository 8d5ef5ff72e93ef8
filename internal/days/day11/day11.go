// Package day11 measures distances between galaxies in an expanding
// universe: every empty row and column grows by a factor.
package day11

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/specialistvlad/advent2023/internal/mathx"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 11 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(11, 1, Part1)
	r.Register(11, 2, Part2)
}

// Part1 doubles every empty row and column.
func Part1(_ context.Context, in string) (string, error) {
	return solve(in, 2)
}

// Part2 replaces every empty row and column with a million.
func Part2(_ context.Context, in string) (string, error) {
	return solve(in, 1_000_000)
}

func solve(in string, factor int) (string, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(SumDistances(g, factor)), nil
}

// SumDistances sums the Manhattan distance between every pair of galaxies
// after expansion.
func SumDistances(g *grid.Grid, factor int) int {
	galaxies := Expand(g, factor)
	total := 0
	for i := range galaxies {
		for j := i + 1; j < len(galaxies); j++ {
			total += mathx.Abs(galaxies[i].Row-galaxies[j].Row) + mathx.Abs(galaxies[i].Col-galaxies[j].Col)
		}
	}
	return total
}

// Expand returns the galaxy positions once empty rows and columns have been
// replaced by `factor` copies of themselves.
func Expand(g *grid.Grid, factor int) []grid.Point {
	rowUsed := make([]bool, g.Rows())
	colUsed := make([]bool, g.Cols())
	var galaxies []grid.Point
	for r := 0; r < g.Rows(); r++ {
		for c, b := range g.Row(r) {
			if b == '#' {
				rowUsed[r], colUsed[c] = true, true
				galaxies = append(galaxies, grid.Point{Row: r, Col: c})
			}
		}
	}
	rowShift := shifts(rowUsed, factor)
	colShift := shifts(colUsed, factor)
	for i, p := range galaxies {
		galaxies[i] = grid.Point{Row: p.Row + rowShift[p.Row], Col: p.Col + colShift[p.Col]}
	}
	return galaxies
}

// shifts returns, for each index, how far earlier empty lines push it.
func shifts(used []bool, factor int) []int {
	out := make([]int, len(used))
	shift := 0
	for i, u := range used {
		if !u {
			shift += factor - 1
		}
		out[i] = shift
	}
	return out
}
