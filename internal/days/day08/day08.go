// Package day08 walks a desert network of left/right forks following a
// repeating instruction string.
package day08

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/mathx"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 8 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(8, 1, Part1)
	r.Register(8, 2, Part2)
}

// Network is the instruction string plus the left/right fork of every node.
type Network struct {
	Instructions string
	Nodes        map[string][2]string
}

// Part1 counts steps from AAA to ZZZ.
func Part1(_ context.Context, in string) (string, error) {
	n, err := ParseNetwork(in)
	if err != nil {
		return "", err
	}
	if _, ok := n.Nodes["AAA"]; !ok {
		return "", input.Malformed("network has no AAA node")
	}
	steps, err := n.walk("AAA", func(node string) bool { return node == "ZZZ" }, 1)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(steps[0]), nil
}

// Part2 moves every node ending in A at once until all stand on a node
// ending in Z. Each ghost loops with a fixed period, so the answer is the
// LCM of the periods.
func Part2(ctx context.Context, in string) (string, error) {
	logger := ctxlog.FromContext(ctx)
	n, err := ParseNetwork(in)
	if err != nil {
		return "", err
	}
	var periods []int
	for node := range n.Nodes {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		steps, err := n.walk(node, func(s string) bool { return strings.HasSuffix(s, "Z") }, 2)
		if err != nil {
			return "", err
		}
		period := steps[1] - steps[0]
		logger.Debug("Found ghost period.", "start", node, "first_end", steps[0], "period", period)
		periods = append(periods, period)
	}
	if len(periods) == 0 {
		return "", input.Malformed("network has no start node ending in A")
	}
	return strconv.Itoa(mathx.LCMAll(periods...)), nil
}

// walk follows the instructions from start and returns the step counts of
// the first `hits` arrivals at an end node.
func (n *Network) walk(start string, end func(string) bool, hits int) ([]int, error) {
	type state struct {
		node string
		idx  int
	}
	// hits recorded when each state was first visited; coming back to a
	// state with no new hit in between means the loop holds no end node.
	seen := make(map[state]int)
	var out []int
	node := start
	for step := 0; ; step++ {
		idx := step % len(n.Instructions)
		s := state{node, idx}
		if before, ok := seen[s]; ok && before == len(out) {
			return nil, input.Malformed("no end node reachable from %s", start)
		}
		seen[s] = len(out)

		fork, ok := n.Nodes[node]
		if !ok {
			return nil, input.Malformed("unknown node %s", node)
		}
		if n.Instructions[idx] == 'L' {
			node = fork[0]
		} else {
			node = fork[1]
		}
		if end(node) {
			out = append(out, step+1)
			if len(out) == hits {
				return out, nil
			}
		}
	}
}

// ParseNetwork parses the instruction line and "AAA = (BBB, CCC)" nodes.
func ParseNetwork(in string) (*Network, error) {
	lines := input.Lines(in)
	if len(lines) < 3 {
		return nil, input.Malformed("network too short")
	}
	n := &Network{Instructions: strings.TrimSpace(lines[0]), Nodes: make(map[string][2]string)}
	if n.Instructions == "" || strings.Trim(n.Instructions, "LR") != "" {
		return nil, input.Malformed("instructions %q", n.Instructions)
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, rest, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, input.Malformed("node %q", line)
		}
		rest = strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")
		left, right, ok := strings.Cut(rest, ", ")
		if !ok {
			return nil, input.Malformed("node %q", line)
		}
		n.Nodes[key] = [2]string{left, right}
	}
	return n, nil
}
