package day20

import (
	"context"
	"testing"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "counter loop",
			input: "broadcaster -> a, b, c\n%a -> b\n%b -> c\n%c -> inv\n&inv -> a",
			want:  "32000000",
		},
		{
			name:  "with output module",
			input: "broadcaster -> a\n%a -> inv, con\n&inv -> b\n%b -> con\n&con -> output",
			want:  "11687500",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Part1(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Two flip-flop counters of different lengths each raise a conjunction
// input; rx goes low when both line up.
const counters = `broadcaster -> a1, b1
%a1 -> a2, ca
%a2 -> ca
&ca -> ia
&ia -> hub
%b1 -> b2
%b2 -> b3
%b3 -> cb
&cb -> ib
&ib -> hub
&hub -> rx`

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), counters)
	require.NoError(t, err)
	assert.Equal(t, "12", got)
}

func TestPart2RequiresSingleFeeder(t *testing.T) {
	_, err := Part2(context.Background(), "broadcaster -> a\n%a -> rx\n%b -> rx")
	assert.ErrorIs(t, err, input.ErrMalformed)
}

func TestPressOrder(t *testing.T) {
	n, err := ParseNetwork("broadcaster -> a, b, c\n%a -> b\n%b -> c\n%c -> inv\n&inv -> a")
	require.NoError(t, err)

	var seen []Pulse
	n.Press(func(p Pulse) { seen = append(seen, p) })

	require.Len(t, seen, 12)
	assert.Equal(t, Pulse{From: "button", To: "broadcaster"}, seen[0])
	assert.Equal(t, Pulse{From: "a", To: "b", High: true}, seen[4])
	assert.Equal(t, Pulse{From: "inv", To: "a", High: false}, seen[7])
}

func TestUntypedModule(t *testing.T) {
	_, err := ParseNetwork("broadcaster -> a\na -> b")
	assert.ErrorIs(t, err, input.ErrMalformed)
}
