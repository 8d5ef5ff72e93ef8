package day07

import (
	"context"
	"testing"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483`

func TestPart1(t *testing.T) {
	got, err := Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "6440", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "5905", got)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		hand   string
		jokers bool
		want   HandType
	}{
		{"AAAAA", false, FiveOfAKind},
		{"AA8AA", false, FourOfAKind},
		{"23332", false, FullHouse},
		{"TTT98", false, ThreeOfAKind},
		{"23432", false, TwoPair},
		{"A23A4", false, OnePair},
		{"23456", false, HighCard},
		{"JJJJJ", true, FiveOfAKind},
		{"KTJJT", true, FourOfAKind},
		{"2345J", true, OnePair},
		{"22J33", true, FullHouse},
	}
	for _, tt := range tests {
		b, err := parseBet(tt.hand+" 1", tt.jokers)
		require.NoError(t, err)
		assert.Equal(t, tt.want, b.Type, tt.hand)
	}
}

func TestJokerIsWeakestOnTies(t *testing.T) {
	j, err := parseBet("JKKK2 1", true)
	require.NoError(t, err)
	q, err := parseBet("QQQQ2 1", true)
	require.NoError(t, err)
	assert.True(t, compareBets(j, q) < 0)
}

func TestMalformed(t *testing.T) {
	_, err := Part1(context.Background(), "32T3X 765")
	assert.ErrorIs(t, err, input.ErrMalformed)
}
