// Package day03 reads an engine schematic: numbers touching a symbol,
// including diagonally, are part numbers.
package day03

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 3 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(3, 1, Part1)
	r.Register(3, 2, Part2)
}

// Number is a run of digits on one row, columns [Start, End).
type Number struct {
	Value      int
	Row        int
	Start, End int
}

// Part1 sums all part numbers.
func Part1(_ context.Context, in string) (string, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return "", err
	}
	total := 0
	for _, n := range numbers(g) {
		if len(adjacentSymbols(g, n)) > 0 {
			total += n.Value
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 sums the gear ratios: a gear is a '*' touching exactly two numbers.
func Part2(_ context.Context, in string) (string, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return "", err
	}
	neighbours := make(map[grid.Point][]int)
	for _, n := range numbers(g) {
		for _, p := range adjacentSymbols(g, n) {
			if g.At(p) == '*' {
				neighbours[p] = append(neighbours[p], n.Value)
			}
		}
	}
	total := 0
	for _, values := range neighbours {
		if len(values) == 2 {
			total += values[0] * values[1]
		}
	}
	return strconv.Itoa(total), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && !isDigit(b) }

func numbers(g *grid.Grid) []Number {
	var out []Number
	for r := 0; r < g.Rows(); r++ {
		row := g.Row(r)
		for c := 0; c < len(row); {
			if !isDigit(row[c]) {
				c++
				continue
			}
			n := Number{Row: r, Start: c}
			for c < len(row) && isDigit(row[c]) {
				n.Value = n.Value*10 + int(row[c]-'0')
				c++
			}
			n.End = c
			out = append(out, n)
		}
	}
	return out
}

// adjacentSymbols returns the symbols in the box surrounding n.
func adjacentSymbols(g *grid.Grid, n Number) []grid.Point {
	var out []grid.Point
	for r := n.Row - 1; r <= n.Row+1; r++ {
		for c := n.Start - 1; c <= n.End; c++ {
			p := grid.Point{Row: r, Col: c}
			if g.In(p) && isSymbol(g.At(p)) {
				out = append(out, p)
			}
		}
	}
	return out
}
