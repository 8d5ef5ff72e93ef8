// Package day04 scores scratchcards.
package day04

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 4 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(4, 1, Part1)
	r.Register(4, 2, Part2)
}

// Card is "Card N: winning | have".
type Card struct {
	ID      int
	Winning []int
	Numbers []int
}

// Matches counts the card's numbers that are also winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, w := range c.Winning {
		winning[w] = struct{}{}
	}
	n := 0
	for _, v := range c.Numbers {
		if _, ok := winning[v]; ok {
			n++
		}
	}
	return n
}

// Part1 sums card values: 0 without matches, else 2^(matches-1).
func Part1(_ context.Context, in string) (string, error) {
	cards, err := parse(in)
	if err != nil {
		return "", err
	}
	total := 0
	for _, c := range cards {
		if m := c.Matches(); m > 0 {
			total += 1 << (m - 1)
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 counts cards once every card with m matches has won one copy of
// each of the next m cards. Copies never run past the end of the table.
func Part2(_ context.Context, in string) (string, error) {
	cards, err := parse(in)
	if err != nil {
		return "", err
	}
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	total := 0
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			counts[j] += counts[i]
		}
		total += counts[i]
	}
	return strconv.Itoa(total), nil
}

func parse(in string) ([]Card, error) {
	var cards []Card
	for _, line := range input.Lines(in) {
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ParseCard parses one card line.
func ParseCard(line string) (Card, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, input.Malformed("card line %q", line)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, input.Malformed("card header %q", header)
	}
	id, err := input.Atoi(fields[1])
	if err != nil {
		return Card{}, err
	}
	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, input.Malformed("card %d has no separator", id)
	}
	winning, err := input.Ints(left)
	if err != nil {
		return Card{}, err
	}
	numbers, err := input.Ints(right)
	if err != nil {
		return Card{}, err
	}
	return Card{ID: id, Winning: winning, Numbers: numbers}, nil
}
