// Package days collects the solver modules for every puzzle day.
package days

import (
	"github.com/specialistvlad/advent2023/internal/days/day01"
	"github.com/specialistvlad/advent2023/internal/days/day02"
	"github.com/specialistvlad/advent2023/internal/days/day03"
	"github.com/specialistvlad/advent2023/internal/days/day04"
	"github.com/specialistvlad/advent2023/internal/days/day05"
	"github.com/specialistvlad/advent2023/internal/days/day06"
	"github.com/specialistvlad/advent2023/internal/days/day07"
	"github.com/specialistvlad/advent2023/internal/days/day08"
	"github.com/specialistvlad/advent2023/internal/days/day09"
	"github.com/specialistvlad/advent2023/internal/days/day10"
	"github.com/specialistvlad/advent2023/internal/days/day11"
	"github.com/specialistvlad/advent2023/internal/days/day12"
	"github.com/specialistvlad/advent2023/internal/days/day13"
	"github.com/specialistvlad/advent2023/internal/days/day14"
	"github.com/specialistvlad/advent2023/internal/days/day15"
	"github.com/specialistvlad/advent2023/internal/days/day16"
	"github.com/specialistvlad/advent2023/internal/days/day17"
	"github.com/specialistvlad/advent2023/internal/days/day18"
	"github.com/specialistvlad/advent2023/internal/days/day19"
	"github.com/specialistvlad/advent2023/internal/days/day20"
	"github.com/specialistvlad/advent2023/internal/days/day21"
	"github.com/specialistvlad/advent2023/internal/days/day22"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// All returns the modules of every implemented day, in day order.
func All() []registry.Module {
	return []registry.Module{
		day01.Module{}, day02.Module{}, day03.Module{}, day04.Module{},
		day05.Module{}, day06.Module{}, day07.Module{}, day08.Module{},
		day09.Module{}, day10.Module{}, day11.Module{}, day12.Module{},
		day13.Module{}, day14.Module{}, day15.Module{}, day16.Module{},
		day17.Module{}, day18.Module{}, day19.Module{}, day20.Module{},
		day21.Module{}, day22.Module{},
	}
}
