// Package day21 counts the garden plots an elf can stand on after an exact
// number of steps.
package day21

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 21 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(21, 1, Part1)
	r.Register(21, 2, Part2)
}

const (
	stepsPart1 = 64
	stepsPart2 = 26501365
)

// Garden is the map with its start plot.
type Garden struct {
	*grid.Grid
	Start grid.Point
}

// ParseGarden reads the map; S marks the start and is itself a plot.
func ParseGarden(in string) (*Garden, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, input.Malformed("no start plot")
	}
	g.Set(start, '.')
	return &Garden{Grid: g, Start: start}, nil
}

// Part1 counts plots reachable in exactly 64 steps on the bounded map.
func Part1(_ context.Context, in string) (string, error) {
	g, err := ParseGarden(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(g.CountReachable(stepsPart1, false)), nil
}

// Part2 counts plots reachable in exactly 26501365 steps on the map tiled
// infinitely in every direction.
func Part2(ctx context.Context, in string) (string, error) {
	g, err := ParseGarden(in)
	if err != nil {
		return "", err
	}
	n, err := g.Extrapolate(ctx, stepsPart2)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (g *Garden) plot(p grid.Point, infinite bool) bool {
	if !infinite {
		return g.In(p) && g.At(p) == '.'
	}
	wrapped := grid.Point{Row: mod(p.Row, g.Rows()), Col: mod(p.Col, g.Cols())}
	return g.At(wrapped) == '.'
}

func mod(a, n int) int { return ((a % n) + n) % n }

// CountReachable counts the plots reachable in exactly steps steps. A plot
// first reached after d steps can be stood on again every second step, so
// it counts when d <= steps and d has the parity of steps.
func (g *Garden) CountReachable(steps int, infinite bool) int {
	dist := map[grid.Point]int{g.Start: 0}
	frontier := []grid.Point{g.Start}
	count := 0
	if steps%2 == 0 {
		count++
	}
	for d := 1; d <= steps && len(frontier) > 0; d++ {
		var next []grid.Point
		for _, p := range frontier {
			for _, dir := range grid.Directions {
				q := p.Move(dir, 1)
				if _, seen := dist[q]; seen || !g.plot(q, infinite) {
					continue
				}
				dist[q] = d
				next = append(next, q)
				if d%2 == steps%2 {
					count++
				}
			}
		}
		frontier = next
	}
	return count
}

// Extrapolate answers CountReachable(steps, true) for huge step counts.
// On a square map with clear lanes through the start, the count sampled
// every map-width steps grows quadratically, so three samples fix it.
func (g *Garden) Extrapolate(ctx context.Context, steps int) (int, error) {
	size := g.Rows()
	if size != g.Cols() {
		return 0, input.Malformed("garden must be square, got %dx%d", g.Rows(), g.Cols())
	}
	rem := steps % size
	x := steps / size
	if x < 3 {
		return g.CountReachable(steps, true), nil
	}
	var y [3]int
	for i := range y {
		y[i] = g.CountReachable(rem+i*size, true)
	}
	ctxlog.FromContext(ctx).Debug("Sampled reachable plots.", "size", size, "remainder", rem, "samples", y)

	// Newton forward differences.
	d1 := y[1] - y[0]
	d2 := y[2] - 2*y[1] + y[0]
	return y[0] + x*d1 + x*(x-1)/2*d2, nil
}
