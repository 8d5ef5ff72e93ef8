// Package day20 simulates pulse propagation between flip-flop and
// conjunction modules.
package day20

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/mathx"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 20 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(20, 1, Part1)
	r.Register(20, 2, Part2)
}

const (
	presses = 1000
	target  = "rx"

	// maxPresses bounds the search for a feeder's cycle.
	maxPresses = 1 << 20
)

// Part1 multiplies the number of low and high pulses sent during 1000
// button presses.
func Part1(_ context.Context, in string) (string, error) {
	n, err := ParseNetwork(in)
	if err != nil {
		return "", err
	}
	low, high := 0, 0
	for i := 0; i < presses; i++ {
		n.Press(func(p Pulse) {
			if p.High {
				high++
			} else {
				low++
			}
		})
	}
	return strconv.Itoa(low * high), nil
}

// Part2 finds the fewest presses that deliver a low pulse to rx. rx is fed
// by a single conjunction, which sends low only once all of its inputs
// last sent high. Each input goes high on its own fixed cycle, so the
// answer is the LCM of those cycles.
func Part2(ctx context.Context, in string) (string, error) {
	logger := ctxlog.FromContext(ctx)
	n, err := ParseNetwork(in)
	if err != nil {
		return "", err
	}
	feeders := n.inputs[target]
	if len(feeders) != 1 || n.Modules[feeders[0]].Kind != Conjunction {
		return "", input.Malformed("%s must be fed by exactly one conjunction", target)
	}
	hub := feeders[0]

	var cycles []int
	for _, source := range n.inputs[hub] {
		n.Reset()
		cycle := 0
		for press := 1; press <= maxPresses && cycle == 0; press++ {
			n.Press(func(p Pulse) {
				if p.From == source && p.To == hub && p.High {
					cycle = press
				}
			})
		}
		if cycle == 0 {
			return "", input.Malformed("%s never sends a high pulse to %s", source, hub)
		}
		logger.Debug("Found conjunction input cycle.", "input", source, "presses", cycle)
		cycles = append(cycles, cycle)
	}
	return strconv.Itoa(mathx.LCMAll(cycles...)), nil
}
