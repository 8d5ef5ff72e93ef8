// Package day15 implements the Holiday ASCII String Helper and the lens
// HASHMAP built on it.
package day15

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 15 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(15, 1, Part1)
	r.Register(15, 2, Part2)
}

// Hash runs the HASH algorithm over s.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

func steps(in string) []string {
	in = strings.NewReplacer("\n", "", "\r", "").Replace(in)
	return strings.Split(in, ",")
}

// Part1 sums the hash of every step.
func Part1(_ context.Context, in string) (string, error) {
	total := 0
	for _, s := range steps(in) {
		total += Hash(s)
	}
	return strconv.Itoa(total), nil
}

type lens struct {
	label string
	focal int
}

// Part2 applies the steps to 256 boxes and returns the focusing power.
// "label=N" replaces or appends a lens; "label-" removes it.
func Part2(_ context.Context, in string) (string, error) {
	var boxes [256][]lens
	for _, s := range steps(in) {
		if label, ok := strings.CutSuffix(s, "-"); ok {
			box := &boxes[Hash(label)]
			for i, l := range *box {
				if l.label == label {
					*box = append((*box)[:i], (*box)[i+1:]...)
					break
				}
			}
			continue
		}
		label, focalText, ok := strings.Cut(s, "=")
		if !ok {
			return "", input.Malformed("step %q", s)
		}
		focal, err := input.Atoi(focalText)
		if err != nil {
			return "", err
		}
		box := &boxes[Hash(label)]
		replaced := false
		for i := range *box {
			if (*box)[i].label == label {
				(*box)[i].focal = focal
				replaced = true
				break
			}
		}
		if !replaced {
			*box = append(*box, lens{label, focal})
		}
	}
	power := 0
	for b, box := range boxes {
		for slot, l := range box {
			power += (b + 1) * (slot + 1) * l.focal
		}
	}
	return strconv.Itoa(power), nil
}
