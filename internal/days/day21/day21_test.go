package day21

import (
	"context"
	"strings"
	"testing"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........`

func TestCountReachableBounded(t *testing.T) {
	g, err := ParseGarden(sample)
	require.NoError(t, err)
	assert.Equal(t, 16, g.CountReachable(6, false))
	assert.Equal(t, 1, g.CountReachable(0, false))
}

func TestCountReachableInfinite(t *testing.T) {
	g, err := ParseGarden(sample)
	require.NoError(t, err)

	tests := []struct {
		steps int
		want  int
	}{
		{6, 16},
		{10, 50},
		{50, 1594},
		{100, 6536},
		{500, 167004},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.CountReachable(tt.steps, true), "steps=%d", tt.steps)
	}
}

func TestExtrapolateOpenField(t *testing.T) {
	row := strings.Repeat(".", 5)
	field := strings.Join([]string{row, row, "..S..", row, row}, "\n")
	g, err := ParseGarden(field)
	require.NoError(t, err)

	got, err := g.Extrapolate(context.Background(), 1002)
	require.NoError(t, err)
	// On an open field every plot within a diamond of matching parity counts.
	assert.Equal(t, 1003*1003, got)
	assert.Equal(t, 21*21, g.CountReachable(20, true))
}

const courtyard = `.......
.#...#.
..#.#..
...S...
..#....
.#...#.
.......`

func TestExtrapolateWithRocks(t *testing.T) {
	g, err := ParseGarden(courtyard)
	require.NoError(t, err)

	for _, steps := range []int{73, 142, 150} {
		got, err := g.Extrapolate(context.Background(), steps)
		require.NoError(t, err)
		assert.Equal(t, g.CountReachable(steps, true), got, "steps=%d", steps)
	}
	assert.Equal(t, 4736, g.CountReachable(73, true))
}

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), courtyard)
	require.NoError(t, err)
	assert.Equal(t, "601990613312896", got)
}

func TestExtrapolateRejectsNonSquare(t *testing.T) {
	g, err := ParseGarden("....\n.S..\n....")
	require.NoError(t, err)
	_, err = g.Extrapolate(context.Background(), 100)
	assert.ErrorIs(t, err, input.ErrMalformed)
}

func TestPart1(t *testing.T) {
	got, err := Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestMissingStart(t *testing.T) {
	_, err := ParseGarden("...\n...")
	assert.ErrorIs(t, err, input.ErrMalformed)
}
