// Package campcleanup solves day 4: comparing pairs of section assignments.
package campcleanup

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive span of section IDs.
type Range struct {
	Lo, Hi int
}

// Contains reports whether r fully covers o.
func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

// ParseRange parses "a-b" with a <= b.
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("range %q is not \"a-b\"", s)
	}
	var r Range
	var err error
	if r.Lo, err = strconv.Atoi(lo); err != nil {
		return Range{}, fmt.Errorf("range %q: start is not an integer", s)
	}
	if r.Hi, err = strconv.Atoi(hi); err != nil {
		return Range{}, fmt.Errorf("range %q: end is not an integer", s)
	}
	if r.Lo > r.Hi {
		return Range{}, fmt.Errorf("range %q: start after end", s)
	}
	return r, nil
}

// ParsePair parses "a-b,c-d".
func ParsePair(line string) (Range, Range, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok {
		return Range{}, Range{}, fmt.Errorf("pair %q is not \"a-b,c-d\"", line)
	}
	a, err := ParseRange(left)
	if err != nil {
		return Range{}, Range{}, err
	}
	b, err := ParseRange(right)
	if err != nil {
		return Range{}, Range{}, err
	}
	return a, b, nil
}

func count(input []string, match func(a, b Range) bool) (string, error) {
	n := 0
	for i, line := range input {
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, b, err := ParsePair(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		if match(a, b) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

// Part1 counts pairs where one assignment contains the other.
func Part1(input []string) (string, error) {
	return count(input, func(a, b Range) bool { return a.Contains(b) || b.Contains(a) })
}

// Part2 counts pairs whose assignments overlap.
func Part2(input []string) (string, error) {
	return count(input, Range.Overlaps)
}
