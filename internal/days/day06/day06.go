// Package day06 counts the ways to win toy boat races. Holding the button
// for h ms of a T ms race travels h*(T-h) mm.
package day06

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 6 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(6, 1, Part1)
	r.Register(6, 2, Part2)
}

// Race is one race duration and the record distance to beat.
type Race struct {
	Time, Record int
}

// Ways counts hold times whose distance strictly beats the record. The
// float roots of h^2 - T*h + R = 0 are only a starting point; the bounds
// are corrected with exact integer arithmetic.
func (r Race) Ways() int {
	beats := func(h int) bool { return h*(r.Time-h) > r.Record }
	delta := float64(r.Time*r.Time - 4*r.Record)
	if delta < 0 {
		return 0
	}
	root := math.Sqrt(delta)
	lo := int(math.Floor((float64(r.Time) - root) / 2))
	hi := int(math.Ceil((float64(r.Time) + root) / 2))
	for lo <= r.Time && !beats(lo) {
		lo++
	}
	for hi >= 0 && !beats(hi) {
		hi--
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// Part1 multiplies the number of winning strategies of every race.
func Part1(_ context.Context, in string) (string, error) {
	times, records, err := parse(in)
	if err != nil {
		return "", err
	}
	ts, err := input.Ints(strings.Join(times, " "))
	if err != nil {
		return "", err
	}
	rs, err := input.Ints(strings.Join(records, " "))
	if err != nil {
		return "", err
	}
	if len(ts) != len(rs) {
		return "", input.Malformed("%d times but %d distances", len(ts), len(rs))
	}
	product := 1
	for i := range ts {
		product *= Race{Time: ts[i], Record: rs[i]}.Ways()
	}
	return strconv.Itoa(product), nil
}

// Part2 ignores the spaces: there is one long race.
func Part2(_ context.Context, in string) (string, error) {
	times, records, err := parse(in)
	if err != nil {
		return "", err
	}
	t, err := input.Atoi(strings.Join(times, ""))
	if err != nil {
		return "", err
	}
	r, err := input.Atoi(strings.Join(records, ""))
	if err != nil {
		return "", err
	}
	return strconv.Itoa(Race{Time: t, Record: r}.Ways()), nil
}

func parse(in string) (times, records []string, err error) {
	lines := input.Lines(in)
	if len(lines) != 2 {
		return nil, nil, input.Malformed("expected 2 lines, got %d", len(lines))
	}
	t, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return nil, nil, input.Malformed("time line %q", lines[0])
	}
	d, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return nil, nil, input.Malformed("distance line %q", lines[1])
	}
	return strings.Fields(t), strings.Fields(d), nil
}
