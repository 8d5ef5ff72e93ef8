// Package day09 extrapolates sensor histories by repeated differencing.
package day09

import (
	"context"
	"strconv"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 9 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(9, 1, Part1)
	r.Register(9, 2, Part2)
}

// Part1 sums the next value of every history.
func Part1(_ context.Context, in string) (string, error) {
	return sum(in, Next)
}

// Part2 sums the value before the first of every history.
func Part2(_ context.Context, in string) (string, error) {
	return sum(in, Previous)
}

func sum(in string, extrapolate func([]int) int) (string, error) {
	total := 0
	for _, line := range input.Lines(in) {
		values, err := input.Ints(line)
		if err != nil {
			return "", err
		}
		if len(values) == 0 {
			return "", input.Malformed("empty history")
		}
		total += extrapolate(values)
	}
	return strconv.Itoa(total), nil
}

// Next predicts the value after values: the sum of the last element of
// every difference row.
func Next(values []int) int {
	next := 0
	for row := values; !allZero(row); row = diff(row) {
		next += row[len(row)-1]
	}
	return next
}

// Previous predicts the value before values.
func Previous(values []int) int {
	var firsts []int
	for row := values; !allZero(row); row = diff(row) {
		firsts = append(firsts, row[0])
	}
	prev := 0
	for i := len(firsts) - 1; i >= 0; i-- {
		prev = firsts[i] - prev
	}
	return prev
}

func diff(values []int) []int {
	out := make([]int, len(values)-1)
	for i := range out {
		out[i] = values[i+1] - values[i]
	}
	return out
}

// allZero is also true for an empty row, which ends the differencing of a
// history that never settles.
func allZero(values []int) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}
