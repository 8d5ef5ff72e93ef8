// Package day18 measures the lagoon dug out by a dig plan.
package day18

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/grid"
	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/mathx"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 18 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(18, 1, Part1)
	r.Register(18, 2, Part2)
}

// Instruction digs Length metres in Direction.
type Instruction struct {
	Direction grid.Direction
	Length    int
}

var letters = map[string]grid.Direction{"U": grid.North, "R": grid.East, "D": grid.South, "L": grid.West}

// hexDirections indexes the last digit of the colour code.
var hexDirections = [4]grid.Direction{grid.East, grid.South, grid.West, grid.North}

// Part1 follows the plain direction and length columns.
func Part1(_ context.Context, in string) (string, error) {
	return area(in, parsePlain)
}

// Part2 decodes the plan from the colour column: five hex digits of length
// and one digit of direction.
func Part2(_ context.Context, in string) (string, error) {
	return area(in, parseHex)
}

func area(in string, parse func([]string) (Instruction, error)) (string, error) {
	var plan []Instruction
	for _, line := range input.Lines(in) {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return "", input.Malformed("dig step %q", line)
		}
		ins, err := parse(fields)
		if err != nil {
			return "", err
		}
		plan = append(plan, ins)
	}
	return strconv.Itoa(Area(plan)), nil
}

// Area is the number of cubic metres dug out: the trench itself plus the
// interior. Shoelace gives the polygon area through the trench centres;
// Pick's theorem adds the outer half of the trench.
func Area(plan []Instruction) int {
	var pos grid.Point
	twice, perimeter := 0, 0
	for _, ins := range plan {
		next := pos.Move(ins.Direction, ins.Length)
		twice += pos.Col*next.Row - next.Col*pos.Row
		perimeter += ins.Length
		pos = next
	}
	return mathx.Abs(twice)/2 + perimeter/2 + 1
}

func parsePlain(fields []string) (Instruction, error) {
	d, ok := letters[fields[0]]
	if !ok {
		return Instruction{}, input.Malformed("direction %q", fields[0])
	}
	n, err := input.Atoi(fields[1])
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Direction: d, Length: n}, nil
}

func parseHex(fields []string) (Instruction, error) {
	code := strings.TrimSuffix(strings.TrimPrefix(fields[2], "(#"), ")")
	if len(code) != 6 {
		return Instruction{}, input.Malformed("colour %q", fields[2])
	}
	n, err := strconv.ParseInt(code[:5], 16, 64)
	if err != nil {
		return Instruction{}, input.Malformed("colour %q", fields[2])
	}
	idx := code[5] - '0'
	if idx > 3 {
		return Instruction{}, input.Malformed("colour direction %q", code[5])
	}
	return Instruction{Direction: hexDirections[idx], Length: int(n)}, nil
}
