package day09

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45`

func TestPart1(t *testing.T) {
	got, err := Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "114", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestExtrapolate(t *testing.T) {
	assert.Equal(t, 18, Next([]int{0, 3, 6, 9, 12, 15}))
	assert.Equal(t, 68, Next([]int{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, 5, Previous([]int{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, -3, Previous([]int{0, 3, 6, 9, 12, 15}))
	assert.Equal(t, 0, Next([]int{0, 0}))
}
