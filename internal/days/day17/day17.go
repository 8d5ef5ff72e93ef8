// Package day17 steers a crucible across a city of heat-loss blocks. The
// crucible must turn after a maximum run and, for ultra crucibles, may only
// turn or stop after a minimum run.
package day17

import (
	"container/heap"
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 17 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(17, 1, Part1)
	r.Register(17, 2, Part2)
}

// Part1 drives a normal crucible: at most 3 blocks in a line.
func Part1(_ context.Context, in string) (string, error) {
	return solve(in, 1, 3)
}

// Part2 drives an ultra crucible: between 4 and 10 blocks in a line.
func Part2(_ context.Context, in string) (string, error) {
	return solve(in, 4, 10)
}

func solve(in string, minRun, maxRun int) (string, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return "", err
	}
	for r := 0; r < g.Rows(); r++ {
		for _, b := range g.Row(r) {
			if b < '0' || b > '9' {
				return "", input.Malformed("heat loss %q", b)
			}
		}
	}
	loss, ok := MinHeatLoss(g, minRun, maxRun)
	if !ok {
		return "", input.Malformed("no route to the factory")
	}
	return strconv.Itoa(loss), nil
}

// state is a block plus the axis the crucible arrived along. Every move is
// a whole straight run followed by a forced turn, so the run length does
// not need to be part of the state.
type state struct {
	at         grid.Point
	horizontal bool
}

type item struct {
	state
	loss int
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].loss < q[j].loss }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }

func (q *queue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// MinHeatLoss runs Dijkstra from the top-left to the bottom-right block.
func MinHeatLoss(g *grid.Grid, minRun, maxRun int) (int, bool) {
	target := grid.Point{Row: g.Rows() - 1, Col: g.Cols() - 1}
	best := make(map[state]int)
	q := &queue{
		{state{grid.Point{}, true}, 0},
		{state{grid.Point{}, false}, 0},
	}
	for q.Len() > 0 {
		cur := heap.Pop(q).(item)
		if cur.at == target {
			return cur.loss, true
		}
		if b, ok := best[cur.state]; ok && b < cur.loss {
			continue
		}
		// Turn onto the other axis, both ways.
		dirs := []grid.Direction{grid.North, grid.South}
		if !cur.horizontal {
			dirs = []grid.Direction{grid.East, grid.West}
		}
		for _, d := range dirs {
			loss := cur.loss
			for run := 1; run <= maxRun; run++ {
				p := cur.at.Move(d, run)
				if !g.In(p) {
					break
				}
				loss += int(g.At(p) - '0')
				if run < minRun {
					continue
				}
				next := state{p, !cur.horizontal}
				if b, ok := best[next]; ok && b <= loss {
					continue
				}
				best[next] = loss
				heap.Push(q, item{next, loss})
			}
		}
	}
	return 0, false
}
