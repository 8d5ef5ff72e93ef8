package day11

import (
	"context"
	"testing"

	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....`

func TestPart1(t *testing.T) {
	got, err := Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "374", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "82000210", got)
}

func TestSumDistancesFactors(t *testing.T) {
	g, err := grid.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 1030, SumDistances(g, 10))
	assert.Equal(t, 8410, SumDistances(g, 100))
}

func TestExpand(t *testing.T) {
	g, err := grid.Parse(sample)
	require.NoError(t, err)
	galaxies := Expand(g, 2)
	require.Len(t, galaxies, 9)
	// Galaxy 5 and galaxy 9 in the expanded picture.
	assert.Equal(t, grid.Point{Row: 6, Col: 1}, galaxies[4])
	assert.Equal(t, grid.Point{Row: 11, Col: 5}, galaxies[8])
}
