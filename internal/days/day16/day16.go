// Package day16 follows a light beam through a contraption of mirrors
// (/ and \) and splitters (| and -).
package day16

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 16 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(16, 1, Part1)
	r.Register(16, 2, Part2)
}

// Beam is the head of a beam: where it is and where it is heading.
type Beam struct {
	At      grid.Point
	Heading grid.Direction
}

// Part1 enters from the top-left corner heading east.
func Part1(_ context.Context, in string) (string, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(Energized(g, Beam{grid.Point{}, grid.East})), nil
}

// Part2 tries every edge tile with the beam heading inwards.
func Part2(_ context.Context, in string) (string, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return "", err
	}
	best := 0
	for r := 0; r < g.Rows(); r++ {
		best = max(best,
			Energized(g, Beam{grid.Point{Row: r, Col: 0}, grid.East}),
			Energized(g, Beam{grid.Point{Row: r, Col: g.Cols() - 1}, grid.West}))
	}
	for c := 0; c < g.Cols(); c++ {
		best = max(best,
			Energized(g, Beam{grid.Point{Row: 0, Col: c}, grid.South}),
			Energized(g, Beam{grid.Point{Row: g.Rows() - 1, Col: c}, grid.North}))
	}
	return strconv.Itoa(best), nil
}

// Energized counts the tiles a beam entering at start passes through.
func Energized(g *grid.Grid, start Beam) int {
	seen := make(map[Beam]struct{})
	tiles := make(map[grid.Point]struct{})
	queue := []Beam{start}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		if !g.In(b.At) {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		tiles[b.At] = struct{}{}
		for _, d := range outgoing(g.At(b.At), b.Heading) {
			queue = append(queue, Beam{b.At.Move(d, 1), d})
		}
	}
	return len(tiles)
}

// outgoing returns the directions a beam leaves a tile in.
func outgoing(tile byte, d grid.Direction) []grid.Direction {
	vertical := d == grid.North || d == grid.South
	switch tile {
	case '/':
		// east <-> north, west <-> south
		if vertical {
			return []grid.Direction{d.TurnRight()}
		}
		return []grid.Direction{d.TurnLeft()}
	case '\\':
		if vertical {
			return []grid.Direction{d.TurnLeft()}
		}
		return []grid.Direction{d.TurnRight()}
	case '|':
		if !vertical {
			return []grid.Direction{grid.North, grid.South}
		}
	case '-':
		if vertical {
			return []grid.Direction{grid.East, grid.West}
		}
	}
	return []grid.Direction{d}
}
