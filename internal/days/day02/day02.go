// Package day02 replays games where cubes are drawn from a bag.
package day02

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// Module registers the day 2 solvers.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(2, 1, Part1)
	r.Register(2, 2, Part2)
}

// Cubes counts cubes per colour.
type Cubes struct {
	Red, Green, Blue int
}

// Game is one line of the record.
type Game struct {
	ID   int
	Sets []Cubes
}

// bag is the load the elf asks about in part 1.
var bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Part1 sums the ids of games that were possible with the bag.
func Part1(_ context.Context, in string) (string, error) {
	games, err := parse(in)
	if err != nil {
		return "", err
	}
	total := 0
	for _, g := range games {
		if possible(g, bag) {
			total += g.ID
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 sums the power of the smallest bag each game could have used.
func Part2(_ context.Context, in string) (string, error) {
	games, err := parse(in)
	if err != nil {
		return "", err
	}
	total := 0
	for _, g := range games {
		m := minimal(g)
		total += m.Red * m.Green * m.Blue
	}
	return strconv.Itoa(total), nil
}

func possible(g Game, limit Cubes) bool {
	for _, s := range g.Sets {
		if s.Red > limit.Red || s.Green > limit.Green || s.Blue > limit.Blue {
			return false
		}
	}
	return true
}

func minimal(g Game) Cubes {
	var m Cubes
	for _, s := range g.Sets {
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}
	return m
}

func parse(in string) ([]Game, error) {
	var games []Game
	for _, line := range input.Lines(in) {
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// ParseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ": ")
	if !ok || !strings.HasPrefix(header, "Game ") {
		return Game{}, input.Malformed("game line %q", line)
	}
	id, err := input.Atoi(strings.TrimPrefix(header, "Game "))
	if err != nil {
		return Game{}, err
	}
	g := Game{ID: id}
	for _, set := range strings.Split(body, ";") {
		var c Cubes
		for _, item := range strings.Split(set, ",") {
			fields := strings.Fields(item)
			if len(fields) != 2 {
				return Game{}, input.Malformed("draw %q", item)
			}
			n, err := input.Atoi(fields[0])
			if err != nil {
				return Game{}, err
			}
			switch fields[1] {
			case "red":
				c.Red = n
			case "green":
				c.Green = n
			case "blue":
				c.Blue = n
			default:
				return Game{}, input.Malformed("colour %q", fields[1])
			}
		}
		g.Sets = append(g.Sets, c)
	}
	return g, nil
}
