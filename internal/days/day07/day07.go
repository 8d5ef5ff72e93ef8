// Package day07 ranks Camel Cards hands and totals the winnings.
package day07

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 7 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(7, 1, Part1)
	r.Register(7, 2, Part2)
}

// HandType orders hands from weakest to strongest.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

const joker = 1

// Bet is a hand of five card values and its bid.
type Bet struct {
	Cards [5]int
	Type  HandType
	Bid   int
}

// Part1 totals rank*bid with J as a jack.
func Part1(_ context.Context, in string) (string, error) {
	return winnings(in, false)
}

// Part2 treats J as the weakest card that can stand in for any other.
func Part2(_ context.Context, in string) (string, error) {
	return winnings(in, true)
}

func winnings(in string, jokers bool) (string, error) {
	var bets []Bet
	for _, line := range input.Lines(in) {
		b, err := parseBet(line, jokers)
		if err != nil {
			return "", err
		}
		bets = append(bets, b)
	}
	slices.SortStableFunc(bets, compareBets)
	total := 0
	for i, b := range bets {
		total += (i + 1) * b.Bid
	}
	return strconv.Itoa(total), nil
}

func compareBets(a, b Bet) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	return slices.Compare(a.Cards[:], b.Cards[:])
}

// Classify returns the best type for cards. Jokers join the largest group.
func Classify(cards [5]int) HandType {
	counts := make(map[int]int)
	jokers := 0
	for _, c := range cards {
		if c == joker {
			jokers++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	groups = append(groups, 0, 0)
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

func cardValue(c byte, jokers bool) (int, bool) {
	switch c {
	case 'A':
		return 14, true
	case 'K':
		return 13, true
	case 'Q':
		return 12, true
	case 'J':
		if jokers {
			return joker, true
		}
		return 11, true
	case 'T':
		return 10, true
	}
	if c >= '2' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}

func parseBet(line string, jokers bool) (Bet, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 5 {
		return Bet{}, input.Malformed("bet %q", line)
	}
	var b Bet
	for i := 0; i < 5; i++ {
		v, ok := cardValue(fields[0][i], jokers)
		if !ok {
			return Bet{}, input.Malformed("card %q in %q", fields[0][i], line)
		}
		b.Cards[i] = v
	}
	bid, err := input.Atoi(fields[1])
	if err != nil {
		return Bet{}, err
	}
	b.Bid = bid
	b.Type = Classify(b.Cards)
	return b, nil
}
