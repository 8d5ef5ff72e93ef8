package day05

import (
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
)

// Almanac lists the seeds and the chain of category mappings.
type Almanac struct {
	Seeds    []int
	Mappings map[string]*Mapping // keyed by source category
}

// Mapping converts numbers of one category into the next.
type Mapping struct {
	Source, Destination string
	Ranges              []Range
}

// Range maps [Source, Source+Length) onto [Destination, Destination+Length).
type Range struct {
	Destination, Source, Length int
}

// Interval is the half-open span [Start, End).
type Interval struct {
	Start, End int
}

// Apply maps a single value. Values outside every range map to themselves.
func (m *Mapping) Apply(v int) int {
	for _, r := range m.Ranges {
		if v >= r.Source && v < r.Source+r.Length {
			return r.Destination + v - r.Source
		}
	}
	return v
}

// ApplyIntervals maps whole intervals, splitting them at range boundaries.
// Sub-intervals no range covers pass through unchanged.
func (m *Mapping) ApplyIntervals(in []Interval) []Interval {
	var out []Interval
	pending := append([]Interval(nil), in...)
	for _, r := range m.Ranges {
		srcEnd := r.Source + r.Length
		var rest []Interval
		for _, iv := range pending {
			lo, hi := max(iv.Start, r.Source), min(iv.End, srcEnd)
			if lo >= hi {
				rest = append(rest, iv)
				continue
			}
			out = append(out, Interval{lo - r.Source + r.Destination, hi - r.Source + r.Destination})
			if iv.Start < lo {
				rest = append(rest, Interval{iv.Start, lo})
			}
			if hi < iv.End {
				rest = append(rest, Interval{hi, iv.End})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// chain returns the mappings in order from "seed" to "location".
func (a *Almanac) chain() ([]*Mapping, error) {
	var out []*Mapping
	category := "seed"
	for category != "location" {
		m, ok := a.Mappings[category]
		if !ok {
			return nil, input.Malformed("no mapping from %q", category)
		}
		out = append(out, m)
		category = m.Destination
		if len(out) > len(a.Mappings) {
			return nil, input.Malformed("mapping chain loops at %q", category)
		}
	}
	return out, nil
}

// ParseAlmanac parses the seed line followed by blank-line separated maps.
func ParseAlmanac(in string) (*Almanac, error) {
	blocks := input.Blocks(in)
	if len(blocks) == 0 {
		return nil, input.Malformed("empty almanac")
	}
	seedsText, ok := strings.CutPrefix(blocks[0], "seeds:")
	if !ok {
		return nil, input.Malformed("missing seeds line")
	}
	seeds, err := input.Ints(seedsText)
	if err != nil {
		return nil, err
	}
	a := &Almanac{Seeds: seeds, Mappings: make(map[string]*Mapping)}
	for _, block := range blocks[1:] {
		m, err := parseMapping(block)
		if err != nil {
			return nil, err
		}
		a.Mappings[m.Source] = m
	}
	return a, nil
}

func parseMapping(block string) (*Mapping, error) {
	lines := input.Lines(block)
	name, ok := strings.CutSuffix(lines[0], " map:")
	if !ok {
		return nil, input.Malformed("map header %q", lines[0])
	}
	src, dst, ok := strings.Cut(name, "-to-")
	if !ok {
		return nil, input.Malformed("map header %q", lines[0])
	}
	m := &Mapping{Source: src, Destination: dst}
	for _, line := range lines[1:] {
		nums, err := input.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(nums) != 3 {
			return nil, input.Malformed("range %q", line)
		}
		m.Ranges = append(m.Ranges, Range{Destination: nums[0], Source: nums[1], Length: nums[2]})
	}
	return m, nil
}
