// Package day22 settles falling sand bricks and works out which can be
// removed.
package day22

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 22 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(22, 1, Part1)
	r.Register(22, 2, Part2)
}

// Brick spans the inclusive cuboid From..To.
type Brick struct {
	From, To [3]int
}

// Stack is a settled pile of bricks and who rests on whom.
type Stack struct {
	Bricks []Brick
	// Supports[i] lists the bricks resting directly on brick i.
	Supports [][]int
	// SupportedBy[i] lists the bricks brick i rests on.
	SupportedBy [][]int
}

// Part1 counts bricks that could be removed without anything falling.
func Part1(ctx context.Context, in string) (string, error) {
	s, err := parse(ctx, in)
	if err != nil {
		return "", err
	}
	safe := 0
	for i := range s.Bricks {
		if s.Falls(i) == 0 {
			safe++
		}
	}
	return strconv.Itoa(safe), nil
}

// Part2 sums, over every brick, how many other bricks would fall if it
// were removed.
func Part2(ctx context.Context, in string) (string, error) {
	s, err := parse(ctx, in)
	if err != nil {
		return "", err
	}
	total := 0
	for i := range s.Bricks {
		total += s.Falls(i)
	}
	return strconv.Itoa(total), nil
}

func parse(ctx context.Context, in string) (*Stack, error) {
	bricks, err := ParseBricks(in)
	if err != nil {
		return nil, err
	}
	s := Settle(bricks)
	ctxlog.FromContext(ctx).Debug("Settled bricks.", "count", len(s.Bricks))
	return s, nil
}

// ParseBricks reads one "x,y,z~x,y,z" snapshot per line.
func ParseBricks(in string) ([]Brick, error) {
	var bricks []Brick
	for _, line := range input.Lines(in) {
		from, to, ok := strings.Cut(line, "~")
		if !ok {
			return nil, input.Malformed("brick %q", line)
		}
		var b Brick
		if err := parseCorner(from, &b.From); err != nil {
			return nil, err
		}
		if err := parseCorner(to, &b.To); err != nil {
			return nil, err
		}
		for axis := range 3 {
			if b.From[axis] > b.To[axis] {
				b.From[axis], b.To[axis] = b.To[axis], b.From[axis]
			}
		}
		if b.From[2] < 1 {
			return nil, input.Malformed("brick %q below the ground", line)
		}
		bricks = append(bricks, b)
	}
	return bricks, nil
}

func parseCorner(s string, into *[3]int) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return input.Malformed("corner %q", s)
	}
	for i, p := range parts {
		n, err := input.Atoi(strings.TrimSpace(p))
		if err != nil {
			return err
		}
		into[i] = n
	}
	return nil
}

type column struct{ x, y int }

type top struct {
	z     int
	brick int
}

// Settle lets every brick fall until it rests on the ground or another
// brick. The input slice is left untouched.
func Settle(bricks []Brick) *Stack {
	sorted := slices.Clone(bricks)
	slices.SortStableFunc(sorted, func(a, b Brick) int { return cmp.Compare(a.From[2], b.From[2]) })

	s := &Stack{
		Bricks:      sorted,
		Supports:    make([][]int, len(sorted)),
		SupportedBy: make([][]int, len(sorted)),
	}
	heights := map[column]top{}
	for i := range sorted {
		b := &sorted[i]
		rest := 0
		var below []int
		for x := b.From[0]; x <= b.To[0]; x++ {
			for y := b.From[1]; y <= b.To[1]; y++ {
				t, ok := heights[column{x, y}]
				if !ok {
					continue
				}
				switch {
				case t.z > rest:
					rest = t.z
					below = []int{t.brick}
				case t.z == rest && !slices.Contains(below, t.brick):
					below = append(below, t.brick)
				}
			}
		}
		drop := b.From[2] - (rest + 1)
		b.From[2] -= drop
		b.To[2] -= drop
		for x := b.From[0]; x <= b.To[0]; x++ {
			for y := b.From[1]; y <= b.To[1]; y++ {
				heights[column{x, y}] = top{z: b.To[2], brick: i}
			}
		}
		s.SupportedBy[i] = below
		for _, j := range below {
			s.Supports[j] = append(s.Supports[j], i)
		}
	}
	return s
}

// Falls counts the bricks that would fall, directly or in a chain
// reaction, if brick i were removed.
func (s *Stack) Falls(i int) int {
	fallen := map[int]bool{i: true}
	queue := []int{i}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, up := range s.Supports[cur] {
			if fallen[up] {
				continue
			}
			if s.allFallen(up, fallen) {
				fallen[up] = true
				queue = append(queue, up)
			}
		}
	}
	return len(fallen) - 1
}

func (s *Stack) allFallen(i int, fallen map[int]bool) bool {
	for _, down := range s.SupportedBy[i] {
		if !fallen[down] {
			return false
		}
	}
	return true
}
