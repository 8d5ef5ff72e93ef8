// Package day19 sorts machine parts through a system of workflows.
package day19

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 19 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(19, 1, Part1)
	r.Register(19, 2, Part2)
}

const (
	accepted = "A"
	rejected = "R"
)

// Part1 sums all ratings of the accepted parts.
func Part1(_ context.Context, in string) (string, error) {
	sys, parts, err := ParseSystem(in)
	if err != nil {
		return "", err
	}
	total := 0
	for _, p := range parts {
		ok, err := sys.Accepts(p)
		if err != nil {
			return "", err
		}
		if ok {
			total += p[0] + p[1] + p[2] + p[3]
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 counts the distinct rating combinations, each from 1 to 4000, the
// system accepts.
func Part2(_ context.Context, in string) (string, error) {
	sys, _, err := ParseSystem(in)
	if err != nil {
		return "", err
	}
	full := Box{}
	for i := range full {
		full[i] = Span{1, 4001}
	}
	n, err := sys.Count("in", full, 0)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// Accepts runs p through the workflows starting at "in".
func (s System) Accepts(p Part) (bool, error) {
	name := "in"
	for hops := 0; hops <= len(s); hops++ {
		rules, ok := s[name]
		if !ok {
			return false, input.Malformed("unknown workflow %q", name)
		}
		for _, r := range rules {
			if r.matches(p) {
				name = r.Target
				break
			}
		}
		switch name {
		case accepted:
			return true, nil
		case rejected:
			return false, nil
		}
	}
	return false, input.Malformed("workflows loop")
}

func (r Rule) matches(p Part) bool {
	switch r.Op {
	case '<':
		return p[r.Category] < r.Value
	case '>':
		return p[r.Category] > r.Value
	}
	return true
}

// Span is the half-open rating range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

func (s Span) size() int { return max(0, s.Hi-s.Lo) }

// Box is one span per category.
type Box [4]Span

func (b Box) volume() int {
	v := 1
	for _, s := range b {
		v *= s.size()
	}
	return v
}

// Count returns how many parts inside box workflow name accepts. Each
// rule splits the box into the part it sends on and the part that falls
// through to the next rule.
func (s System) Count(name string, box Box, depth int) (int, error) {
	switch name {
	case accepted:
		return box.volume(), nil
	case rejected:
		return 0, nil
	}
	if depth > len(s) {
		return 0, input.Malformed("workflows loop")
	}
	rules, ok := s[name]
	if !ok {
		return 0, input.Malformed("unknown workflow %q", name)
	}
	total := 0
	for _, r := range rules {
		if box.volume() == 0 {
			break
		}
		matched, rest := box, box
		span := box[r.Category]
		switch r.Op {
		case '<':
			matched[r.Category] = Span{span.Lo, min(span.Hi, r.Value)}
			rest[r.Category] = Span{max(span.Lo, r.Value), span.Hi}
		case '>':
			matched[r.Category] = Span{max(span.Lo, r.Value+1), span.Hi}
			rest[r.Category] = Span{span.Lo, min(span.Hi, r.Value+1)}
		default:
			rest = Box{}
		}
		n, err := s.Count(r.Target, matched, depth+1)
		if err != nil {
			return 0, err
		}
		total += n
		box = rest
	}
	return total, nil
}
