// Package rochambeau solves day 2: scoring a rock paper scissors strategy guide.
package rochambeau

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is a hand shape. Its value is the score for playing it.
type Shape int

const (
	Rock Shape = iota + 1
	Paper
	Scissors
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Score is 1 for rock, 2 for paper and 3 for scissors.
func (s Shape) Score() int { return int(s) }

// Beats returns the shape s defeats.
func (s Shape) Beats() Shape { return (s+1)%3 + 1 }

// LosesTo returns the shape that defeats s.
func (s Shape) LosesTo() Shape { return s%3 + 1 }

// Against returns the outcome of playing s against opponent.
func (s Shape) Against(opponent Shape) Outcome {
	switch opponent {
	case s:
		return Draw
	case s.Beats():
		return Win
	}
	return Loss
}

// Fight returns the round score for playing s against opponent.
func (s Shape) Fight(opponent Shape) int {
	return s.Score() + s.Against(opponent).Score()
}

// Outcome is the result of a round from our side.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Score is 0 for a loss, 3 for a draw and 6 for a win.
func (o Outcome) Score() int { return int(o) * 3 }

// ShapeFor returns the shape that produces o against opponent.
func (o Outcome) ShapeFor(opponent Shape) Shape {
	switch o {
	case Win:
		return opponent.LosesTo()
	case Loss:
		return opponent.Beats()
	}
	return opponent
}

// ParseOpponent decodes A, B or C.
func ParseOpponent(sym string) (Shape, error) {
	switch sym {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	}
	return 0, fmt.Errorf("unknown opponent shape %q", sym)
}

// ParseResponse decodes X, Y or Z as a shape.
func ParseResponse(sym string) (Shape, error) {
	switch sym {
	case "X":
		return Rock, nil
	case "Y":
		return Paper, nil
	case "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("unknown response shape %q", sym)
}

// ParseOutcome decodes X, Y or Z as the outcome to aim for.
func ParseOutcome(sym string) (Outcome, error) {
	switch sym {
	case "X":
		return Loss, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("unknown outcome %q", sym)
}

// score runs play over every round and sums the results. Blank lines are skipped.
func score(input []string, play func(opponent Shape, code string) (int, error)) (int, error) {
	total := 0
	for i, line := range input {
		if strings.TrimSpace(line) == "" {
			continue
		}
		left, right, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok {
			return 0, fmt.Errorf("line %d: round %q is not \"<opponent> <code>\"", i+1, line)
		}
		opponent, err := ParseOpponent(left)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		n, err := play(opponent, right)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += n
	}
	return total, nil
}

// Part1 reads the second column as the shape to play.
func Part1(input []string) (string, error) {
	total, err := score(input, func(opponent Shape, code string) (int, error) {
		us, err := ParseResponse(code)
		if err != nil {
			return 0, err
		}
		return us.Fight(opponent), nil
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(total), nil
}

// Part2 reads the second column as the outcome to reach.
func Part2(input []string) (string, error) {
	total, err := score(input, func(opponent Shape, code string) (int, error) {
		want, err := ParseOutcome(code)
		if err != nil {
			return 0, err
		}
		return want.ShapeFor(opponent).Fight(opponent), nil
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(total), nil
}
