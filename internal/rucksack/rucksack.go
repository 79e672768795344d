// Package rucksack solves day 3: finding misplaced items and group badges.
package rucksack

import (
	"fmt"
	"strconv"
)

// GroupSize is the number of elves sharing one badge.
const GroupSize = 3

// Priority maps a..z to 1..26 and A..Z to 27..52.
func Priority(item rune) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, fmt.Errorf("invalid item %q", item)
}

type itemSet map[rune]struct{}

func newItemSet(items string) itemSet {
	s := make(itemSet, len(items))
	for _, r := range items {
		s[r] = struct{}{}
	}
	return s
}

func (s itemSet) intersect(o itemSet) itemSet {
	out := itemSet{}
	for r := range s {
		if _, ok := o[r]; ok {
			out[r] = struct{}{}
		}
	}
	return out
}

func (s itemSet) priority() (int, error) {
	sum := 0
	for r := range s {
		p, err := Priority(r)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

// Misplaced returns the items found in both compartments of a rucksack.
func Misplaced(rucksack string) (string, error) {
	common, err := misplaced(rucksack)
	if err != nil {
		return "", err
	}
	return common.String(), nil
}

func misplaced(rucksack string) (itemSet, error) {
	if rucksack == "" {
		return nil, fmt.Errorf("rucksack is empty")
	}
	if len(rucksack)%2 != 0 {
		return nil, fmt.Errorf("rucksack %q has an odd number of items", rucksack)
	}
	half := len(rucksack) / 2
	return newItemSet(rucksack[:half]).intersect(newItemSet(rucksack[half:])), nil
}

// String returns the set's valid items in priority order.
func (s itemSet) String() string {
	var out []rune
	for _, r := range "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		if _, ok := s[r]; ok {
			out = append(out, r)
		}
	}
	return string(out)
}

// Part1 sums the priorities of the misplaced items of every rucksack.
func Part1(input []string) (string, error) {
	total := 0
	for i, line := range input {
		common, err := misplaced(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		p, err := common.priority()
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		total += p
	}
	return strconv.Itoa(total), nil
}

// Part2 sums the priorities of the badge shared by each group of three.
func Part2(input []string) (string, error) {
	if len(input)%GroupSize != 0 {
		return "", fmt.Errorf("%d rucksacks do not split into groups of %d", len(input), GroupSize)
	}
	total := 0
	for start := 0; start < len(input); start += GroupSize {
		group := input[start : start+GroupSize]
		badge := newItemSet(group[0])
		for _, r := range group[1:] {
			badge = badge.intersect(newItemSet(r))
		}
		if len(badge) == 0 {
			return "", fmt.Errorf("lines %d-%d: group has no common badge", start+1, start+GroupSize)
		}
		p, err := badge.priority()
		if err != nil {
			return "", fmt.Errorf("lines %d-%d: %w", start+1, start+GroupSize, err)
		}
		total += p
	}
	return strconv.Itoa(total), nil
}
