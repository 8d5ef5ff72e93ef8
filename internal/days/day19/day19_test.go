package day19

import (
	"context"
	"testing"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}`

func TestPart1(t *testing.T) {
	got, err := Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "19114", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "167409079868000", got)
}

func TestParsePart(t *testing.T) {
	p, err := ParsePart("{x=2127,m=1623,a=2188,s=1013}")
	require.NoError(t, err)
	assert.Equal(t, Part{2127, 1623, 2188, 1013}, p)

	_, err = ParsePart("{q=1}")
	assert.ErrorIs(t, err, input.ErrMalformed)
}

func TestAcceptsEveryPartWithoutConditions(t *testing.T) {
	got, err := Part2(context.Background(), "in{A}")
	require.NoError(t, err)
	assert.Equal(t, "256000000000000", got)
}

func TestUnknownWorkflow(t *testing.T) {
	_, err := Part1(context.Background(), "in{x<10:nope,R}\n\n{x=1,m=1,a=1,s=1}")
	assert.ErrorIs(t, err, input.ErrMalformed)
	assert.ErrorContains(t, err, `"nope"`)
}
