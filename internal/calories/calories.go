// Package calories solves day 1: finding the elves carrying the most food.
//
// Input is one group of integers per elf, groups separated by a blank line.
package calories

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/adventofcode/internal/lines"
)

// ErrNoElves is returned when the input has no groups at all.
var ErrNoElves = errors.New("no elves in input")

// Totals returns the calorie total of every elf in input order. Empty groups
// (runs of blank lines) are ignored.
func Totals(input []string) ([]int, error) {
	var totals []int
	lineNo := 0
	for _, group := range lines.Blocks(input) {
		sum := 0
		for _, line := range group {
			lineNo++
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("line %d: calories %q is not an integer", lineNo, line)
			}
			sum += n
		}
		lineNo++ // separator
		if len(group) > 0 {
			totals = append(totals, sum)
		}
	}
	if len(totals) == 0 {
		return nil, ErrNoElves
	}
	return totals, nil
}

// Top returns the sum of the n largest totals.
func Top(totals []int, n int) int {
	sorted := slices.Clone(totals)
	slices.Sort(sorted)
	sum := 0
	for i := len(sorted) - 1; i >= 0 && i >= len(sorted)-n; i-- {
		sum += sorted[i]
	}
	return sum
}

// Part1 returns the largest elf total.
func Part1(input []string) (string, error) {
	totals, err := Totals(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(Top(totals, 1)), nil
}

// Part2 returns the sum of the three largest elf totals.
func Part2(input []string) (string, error) {
	totals, err := Totals(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(Top(totals, 3)), nil
}
