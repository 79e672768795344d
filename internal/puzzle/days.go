package puzzle

import (
	"github.com/roach88/adventofcode/internal/calories"
	"github.com/roach88/adventofcode/internal/campcleanup"
	"github.com/roach88/adventofcode/internal/rochambeau"
	"github.com/roach88/adventofcode/internal/rucksack"
	"github.com/roach88/adventofcode/internal/stackyard"
)

var builtin = []Day{
	{Number: 1, Title: "Calorie Counting", Part1: calories.Part1, Part2: calories.Part2},
	{Number: 2, Title: "Rock Paper Scissors", Part1: rochambeau.Part1, Part2: rochambeau.Part2},
	{Number: 3, Title: "Rucksack Reorganization", Part1: rucksack.Part1, Part2: rucksack.Part2},
	{Number: 4, Title: "Camp Cleanup", Part1: campcleanup.Part1, Part2: campcleanup.Part2},
	{Number: 5, Title: "Supply Stacks", Part1: stackyard.Part1, Part2: stackyard.Part2},
}

// Default returns a registry holding every solved day.
func Default() *Registry {
	r := NewRegistry()
	for _, d := range builtin {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}
