package day15

import (
	"context"
	"testing"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7"

func TestPart1(t *testing.T) {
	got, err := Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "1320", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "145", got)
}

func TestHash(t *testing.T) {
	assert.Equal(t, 52, Hash("HASH"))
	assert.Equal(t, 0, Hash("rn"))
	assert.Equal(t, 3, Hash("pc"))
}

func TestIgnoresNewlines(t *testing.T) {
	got, err := Part1(context.Background(), "rn=1,\ncm-\n")
	require.NoError(t, err)
	assert.Equal(t, "283", got)
}

func TestMalformedStep(t *testing.T) {
	_, err := Part2(context.Background(), "rn")
	assert.ErrorIs(t, err, input.ErrMalformed)
}
