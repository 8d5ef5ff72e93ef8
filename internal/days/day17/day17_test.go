package day17

import (
	"context"
	"testing"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

func TestPart1(t *testing.T) {
	got, err := Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "102", got)
}

func TestPart2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"city", sample, "94"},
		{"forced long runs", "111111111111\n999999999991\n999999999991\n999999999991\n999999999991", "71"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Part2(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMalformedBlock(t *testing.T) {
	_, err := Part1(context.Background(), "12\n3x")
	assert.ErrorIs(t, err, input.ErrMalformed)
}

func TestUnreachableWithMinimumRun(t *testing.T) {
	_, err := Part2(context.Background(), "12\n34")
	assert.ErrorIs(t, err, input.ErrMalformed)
}
