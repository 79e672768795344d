// Package puzzle maps day numbers to their solvers.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("unknown day")

	// ErrUnknownPart is returned for a part other than 1 or 2.
	ErrUnknownPart = errors.New("unknown part")
)

// Solver computes one answer from the puzzle input lines.
type Solver func(input []string) (string, error)

// Day holds both parts of one puzzle.
type Day struct {
	Number int
	Title  string
	Part1  Solver
	Part2  Solver
}

// Solver returns the solver for part 1 or 2.
func (d Day) Solver(part int) (Solver, error) {
	switch part {
	case 1:
		return d.Part1, nil
	case 2:
		return d.Part2, nil
	}
	return nil, fmt.Errorf("%w %d for day %d: must be 1 or 2", ErrUnknownPart, part, d.Number)
}

// Solve runs one part against input.
func (d Day) Solve(part int, input []string) (string, error) {
	solve, err := d.Solver(part)
	if err != nil {
		return "", err
	}
	answer, err := solve(input)
	if err != nil {
		return "", fmt.Errorf("day %d part %d: %w", d.Number, part, err)
	}
	return answer, nil
}

// Registry is a set of days keyed by number.
type Registry struct {
	days map[int]Day
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Day)}
}

// Register adds d. Registering the same day twice is an error.
func (r *Registry) Register(d Day) error {
	if d.Number < 1 || d.Number > 25 {
		return fmt.Errorf("day %d out of range 1..25", d.Number)
	}
	if d.Part1 == nil || d.Part2 == nil {
		return fmt.Errorf("day %d: both parts are required", d.Number)
	}
	if _, dup := r.days[d.Number]; dup {
		return fmt.Errorf("day %d already registered", d.Number)
	}
	r.days[d.Number] = d
	return nil
}

// Lookup returns the day with number n.
func (r *Registry) Lookup(n int) (Day, error) {
	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("%w %d", ErrUnknownDay, n)
	}
	return d, nil
}

// Days returns every registered day in ascending order.
func (r *Registry) Days() []Day {
	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
