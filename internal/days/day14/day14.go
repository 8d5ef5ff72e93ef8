// Package day14 tilts a platform of rounded rocks (O) and cube rocks (#)
// and measures the load on the north support beams.
package day14

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 14 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(14, 1, Part1)
	r.Register(14, 2, Part2)
}

const spinCycles = 1_000_000_000

// Part1 tilts north once.
func Part1(_ context.Context, in string) (string, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return "", err
	}
	Tilt(g, grid.North)
	return strconv.Itoa(Load(g)), nil
}

// Part2 runs a billion spin cycles. The platform falls into a loop well
// before that, so only the offset into the loop is simulated.
func Part2(ctx context.Context, in string) (string, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return "", err
	}
	seen := map[string]int{g.String(): 0}
	for i := 1; i <= spinCycles; i++ {
		Spin(g)
		key := g.String()
		if first, ok := seen[key]; ok {
			period := i - first
			ctxlog.FromContext(ctx).Debug("Spin cycle repeats.", "first", first, "period", period)
			for remaining := (spinCycles - i) % period; remaining > 0; remaining-- {
				Spin(g)
			}
			break
		}
		seen[key] = i
	}
	return strconv.Itoa(Load(g)), nil
}

// Spin tilts north, west, south, then east.
func Spin(g *grid.Grid) {
	for _, d := range []grid.Direction{grid.North, grid.West, grid.South, grid.East} {
		Tilt(g, d)
	}
}

// Tilt rolls every rounded rock as far as it goes towards d.
func Tilt(g *grid.Grid, d grid.Direction) {
	rows, cols := g.Rows(), g.Cols()
	// Walk each lane starting from the edge rocks roll towards.
	lanes, length := cols, rows
	if d == grid.East || d == grid.West {
		lanes, length = rows, cols
	}
	at := func(lane, i int) grid.Point {
		switch d {
		case grid.North:
			return grid.Point{Row: i, Col: lane}
		case grid.South:
			return grid.Point{Row: rows - 1 - i, Col: lane}
		case grid.West:
			return grid.Point{Row: lane, Col: i}
		default:
			return grid.Point{Row: lane, Col: cols - 1 - i}
		}
	}
	for lane := 0; lane < lanes; lane++ {
		free := 0
		for i := 0; i < length; i++ {
			p := at(lane, i)
			switch g.At(p) {
			case '#':
				free = i + 1
			case 'O':
				if free != i {
					g.Set(at(lane, free), 'O')
					g.Set(p, '.')
				}
				free++
			}
		}
	}
}

// Load sums, for each rounded rock, its distance from the south edge
// counting the last row as 1.
func Load(g *grid.Grid) int {
	total := 0
	for r := 0; r < g.Rows(); r++ {
		for _, b := range g.Row(r) {
			if b == 'O' {
				total += g.Rows() - r
			}
		}
	}
	return total
}
