// Package day05 follows seeds through the almanac's chain of category maps
// down to a location number.
package day05

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 5 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(5, 1, Part1)
	r.Register(5, 2, Part2)
}

// Part1 returns the lowest location of any listed seed.
func Part1(_ context.Context, in string) (string, error) {
	a, err := ParseAlmanac(in)
	if err != nil {
		return "", err
	}
	chain, err := a.chain()
	if err != nil {
		return "", err
	}
	if len(a.Seeds) == 0 {
		return "", input.Malformed("no seeds")
	}
	best := -1
	for _, seed := range a.Seeds {
		v := seed
		for _, m := range chain {
			v = m.Apply(v)
		}
		if best < 0 || v < best {
			best = v
		}
	}
	return strconv.Itoa(best), nil
}

// Part2 reads the seed line as (start, length) pairs and maps whole
// intervals through the chain.
func Part2(ctx context.Context, in string) (string, error) {
	a, err := ParseAlmanac(in)
	if err != nil {
		return "", err
	}
	chain, err := a.chain()
	if err != nil {
		return "", err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return "", input.Malformed("seed ranges need (start, length) pairs, got %d numbers", len(a.Seeds))
	}
	var intervals []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		intervals = append(intervals, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	for _, m := range chain {
		intervals = m.ApplyIntervals(intervals)
		ctxlog.FromContext(ctx).Debug("Mapped seed intervals.", "to", m.Destination, "intervals", len(intervals))
	}
	best := -1
	for _, iv := range intervals {
		if iv.Start < iv.End && (best < 0 || iv.Start < best) {
			best = iv.Start
		}
	}
	return strconv.Itoa(best), nil
}
