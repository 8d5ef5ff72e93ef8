// Package day01 recovers calibration values from lines of text: the first
// and last digit of each line form a two-digit number.
package day01

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 1 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(1, 1, Part1)
	r.Register(1, 2, Part2)
}

var spelled = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Part1 sums the calibration values using numeric digits only.
func Part1(_ context.Context, in string) (string, error) {
	return sum(in, false)
}

// Part2 also accepts spelled-out digits. Spellings may overlap, so
// "twone" yields 2 then 1.
func Part2(_ context.Context, in string) (string, error) {
	return sum(in, true)
}

func sum(in string, words bool) (string, error) {
	total := 0
	for _, line := range input.Lines(in) {
		v, err := calibration(line, words)
		if err != nil {
			return "", err
		}
		total += v
	}
	return strconv.Itoa(total), nil
}

func calibration(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, input.Malformed("no digit in line %q", line)
	}
	return first*10 + last, nil
}

func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for d, w := range spelled {
		if strings.HasPrefix(line[i:], w) {
			return d, true
		}
	}
	return 0, false
}
