package day02

import (
	"context"
	"testing"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func TestPart1(t *testing.T) {
	got, err := Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "8", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "2286", got)
}

func TestParseGame(t *testing.T) {
	g, err := ParseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	require.NoError(t, err)
	assert.Equal(t, Game{
		ID: 1,
		Sets: []Cubes{
			{Red: 4, Blue: 3},
			{Red: 1, Green: 2, Blue: 6},
			{Green: 2},
		},
	}, g)

	_, err = ParseGame("Game 1: 3 purple")
	assert.ErrorIs(t, err, input.ErrMalformed)

	_, err = ParseGame("no header")
	assert.ErrorIs(t, err, input.ErrMalformed)
}
