// Package day10 traces the single loop of pipes through the start tile S.
package day10

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/mathx"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 10 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(10, 1, Part1)
	r.Register(10, 2, Part2)
}

var pipes = map[byte][2]grid.Direction{
	'|': {grid.North, grid.South},
	'-': {grid.East, grid.West},
	'L': {grid.North, grid.East},
	'J': {grid.North, grid.West},
	'7': {grid.South, grid.West},
	'F': {grid.South, grid.East},
}

func connects(tile byte, d grid.Direction) bool {
	ends, ok := pipes[tile]
	return ok && (ends[0] == d || ends[1] == d)
}

// Part1 is the distance to the point of the loop farthest from S.
func Part1(_ context.Context, in string) (string, error) {
	loop, err := traceLoop(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(len(loop) / 2), nil
}

// Part2 counts tiles enclosed by the loop. The shoelace formula gives the
// loop's area and Pick's theorem turns it into interior lattice points.
func Part2(_ context.Context, in string) (string, error) {
	loop, err := traceLoop(in)
	if err != nil {
		return "", err
	}
	twice := 0
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		twice += p.Col*q.Row - q.Col*p.Row
	}
	area := mathx.Abs(twice) / 2
	return strconv.Itoa(area - len(loop)/2 + 1), nil
}

// traceLoop returns every tile of the loop in walking order starting at S.
func traceLoop(in string) ([]grid.Point, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, input.Malformed("no start tile")
	}

	// A stray pipe may point into S, so try every connected exit until one
	// walks back to the start.
	err = input.Malformed("start tile has no connected neighbour")
	for _, d := range grid.Directions {
		n := start.Move(d, 1)
		if !g.In(n) || !connects(g.At(n), d.Opposite()) {
			continue
		}
		var loop []grid.Point
		if loop, err = walk(g, start, d); err == nil {
			return loop, nil
		}
	}
	return nil, err
}

// walk follows the pipes from start, leaving in heading, until it is back
// at start.
func walk(g *grid.Grid, start grid.Point, heading grid.Direction) ([]grid.Point, error) {
	loop := []grid.Point{start}
	p := start
	for {
		p = p.Move(heading, 1)
		if p == start {
			return loop, nil
		}
		if !g.In(p) {
			return nil, input.Malformed("loop leaves the map at %v", p)
		}
		ends, ok := pipes[g.At(p)]
		if !ok || (ends[0] != heading.Opposite() && ends[1] != heading.Opposite()) {
			return nil, input.Malformed("loop broken at %v", p)
		}
		loop = append(loop, p)
		if ends[0] == heading.Opposite() {
			heading = ends[1]
		} else {
			heading = ends[0]
		}
	}
}
