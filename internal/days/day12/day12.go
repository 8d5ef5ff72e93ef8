// Package day12 counts the arrangements of damaged springs consistent with
// each row's group sizes.
package day12

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 12 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(12, 1, Part1)
	r.Register(12, 2, Part2)
}

// Row is a condition record: '.' operational, '#' damaged, '?' unknown,
// plus the sizes of the contiguous damaged groups.
type Row struct {
	Springs string
	Groups  []int
}

// Part1 sums the arrangements of every row.
func Part1(_ context.Context, in string) (string, error) {
	return sum(in, 1)
}

// Part2 unfolds every row five times first.
func Part2(_ context.Context, in string) (string, error) {
	return sum(in, 5)
}

func sum(in string, copies int) (string, error) {
	total := 0
	for _, line := range input.Lines(in) {
		row, err := ParseRow(line)
		if err != nil {
			return "", err
		}
		total += row.Unfold(copies).Arrangements()
	}
	return strconv.Itoa(total), nil
}

// Unfold repeats the springs n times joined by '?', and the groups n times.
func (r Row) Unfold(n int) Row {
	if n <= 1 {
		return r
	}
	springs := make([]string, n)
	var groups []int
	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Row{Springs: strings.Join(springs, "?"), Groups: groups}
}

// Arrangements counts the ways to resolve every '?'. ways[i][j] is the
// number of arrangements of Springs[i:] holding exactly Groups[j:].
func (r Row) Arrangements() int {
	s, groups := r.Springs, r.Groups
	n, m := len(s), len(groups)

	// damagedRun[i] is the length of the run of non-'.' starting at i.
	damagedRun := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		if s[i] != '.' {
			damagedRun[i] = damagedRun[i+1] + 1
		}
	}

	ways := make([][]int, n+2)
	for i := range ways {
		ways[i] = make([]int, m+1)
	}
	ways[n][m] = 1
	ways[n+1][m] = 1
	for i := n - 1; i >= 0; i-- {
		for j := m; j >= 0; j-- {
			total := 0
			if s[i] != '#' {
				total += ways[i+1][j]
			}
			if j < m && s[i] != '.' {
				size := groups[j]
				fits := damagedRun[i] >= size
				separated := i+size == n || (i+size < n && s[i+size] != '#')
				if fits && separated {
					total += ways[min(i+size+1, n+1)][j+1]
				}
			}
			ways[i][j] = total
		}
	}
	return ways[0][0]
}

// ParseRow parses "???.### 1,1,3".
func ParseRow(line string) (Row, error) {
	springs, list, ok := strings.Cut(line, " ")
	if !ok {
		return Row{}, input.Malformed("row %q", line)
	}
	if strings.Trim(springs, ".#?") != "" {
		return Row{}, input.Malformed("springs %q", springs)
	}
	var groups []int
	for _, f := range strings.Split(list, ",") {
		n, err := input.Atoi(f)
		if err != nil {
			return Row{}, err
		}
		if n <= 0 {
			return Row{}, input.Malformed("group size %d", n)
		}
		groups = append(groups, n)
	}
	return Row{Springs: springs, Groups: groups}, nil
}
