package rucksack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var example = []string{
	"vJrwpWtwJgWrhcsFMMfFFhFp",
	"jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL",
	"PmmdzqPrVvPwwTWBwg",
	"wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn",
	"ttgJtRGJQctTZtZT",
	"CrZsJsPPZsGzwwsLwLmpwMDw",
}

func TestParts(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, "157", got)

	got, err = Part2(example)
	require.NoError(t, err)
	assert.Equal(t, "70", got)
}

func TestMisplaced(t *testing.T) {
	want := []string{"p", "L", "P", "v", "t", "s"}
	for i, line := range example {
		got, err := Misplaced(line)
		require.NoError(t, err)
		assert.Equal(t, want[i], got, line)
	}
}

func TestPriority(t *testing.T) {
	tests := map[rune]int{'a': 1, 'p': 16, 'z': 26, 'A': 27, 'L': 38, 'Z': 52}
	for item, want := range tests {
		got, err := Priority(item)
		require.NoError(t, err)
		assert.Equal(t, want, got, string(item))
	}

	_, err := Priority('1')
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	_, err := Part1([]string{"abca", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2: rucksack is empty")

	_, err = Part1([]string{"abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odd number")

	_, err = Part1([]string{"a1b1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid item")

	_, err = Part2(example[:4])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groups of 3")

	_, err = Part2([]string{"ab", "cd", "ef"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no common badge")
}
