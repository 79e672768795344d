package stackyard

import (
	"fmt"
	"strings"
)

// Yard is an ordered collection of lanes. Lanes are referenced 1-based.
//
// Each lane is stored bottom first, so the top crate is the last element
// and both modes only touch the tail of a slice.
type Yard struct {
	lanes [][]rune
}

// NewYard builds a yard from lane contents written top first, so
// NewYard("NZ", "DCM", "P") is the worked example. An empty string is an
// empty lane.
func NewYard(lanes ...string) *Yard {
	y := &Yard{lanes: make([][]rune, len(lanes))}
	for i, lane := range lanes {
		y.lanes[i] = reversed([]rune(lane))
	}
	return y
}

// Lanes returns the number of lanes. It never changes after construction.
func (y *Yard) Lanes() int {
	return len(y.lanes)
}

// Count returns the total number of crates across all lanes.
func (y *Yard) Count() int {
	total := 0
	for _, lane := range y.lanes {
		total += len(lane)
	}
	return total
}

// Lane returns the crates of lane n (1-based), top first.
func (y *Yard) Lane(n int) ([]rune, error) {
	i, err := y.index(n, "lane")
	if err != nil {
		return nil, err
	}
	return reversed(y.lanes[i]), nil
}

// Snapshot returns every lane as a string, top first.
func (y *Yard) Snapshot() []string {
	out := make([]string, len(y.lanes))
	for i, lane := range y.lanes {
		out[i] = string(reversed(lane))
	}
	return out
}

// Clone returns a deep copy of the yard.
func (y *Yard) Clone() *Yard {
	c := &Yard{lanes: make([][]rune, len(y.lanes))}
	for i, lane := range y.lanes {
		c.lanes[i] = append([]rune(nil), lane...)
	}
	return c
}

// Apply carries out one move in place. The move is checked against the
// yard before anything is touched, so a failing move leaves the yard as it
// was.
func (y *Yard) Apply(m Move, mode Mode) error {
	if m.Quantity < 0 {
		return newError(ErrCodeFieldNotInteger, "quantity must be non-negative, got %d", m.Quantity)
	}
	from, err := y.index(m.From, "source")
	if err != nil {
		return err
	}
	to, err := y.index(m.To, "destination")
	if err != nil {
		return err
	}
	if have := len(y.lanes[from]); m.Quantity > have {
		return newError(ErrCodeLaneExhausted, "%s needs %d crates but lane %d holds %d", m, m.Quantity, m.From, have)
	}

	switch mode {
	case ModeSingle:
		for i := 0; i < m.Quantity; i++ {
			src := y.lanes[from]
			top := src[len(src)-1]
			y.lanes[from] = src[:len(src)-1]
			y.lanes[to] = append(y.lanes[to], top)
		}
	case ModeBlock:
		src := y.lanes[from]
		cut := len(src) - m.Quantity
		block := append([]rune(nil), src[cut:]...)
		y.lanes[from] = src[:cut]
		y.lanes[to] = append(y.lanes[to], block...)
	default:
		return fmt.Errorf("unknown mode %v", mode)
	}
	return nil
}

// Readout returns the top crate of every lane, lane 1 first.
func (y *Yard) Readout() (string, error) {
	var b strings.Builder
	for i, lane := range y.lanes {
		if len(lane) == 0 {
			return "", newError(ErrCodeEmptyLaneAtReadout, "lane %d is empty", i+1)
		}
		b.WriteRune(lane[len(lane)-1])
	}
	return b.String(), nil
}

// index converts a 1-based lane reference to a slice index.
func (y *Yard) index(n int, role string) (int, error) {
	if n < 1 || n > len(y.lanes) {
		return 0, newError(ErrCodeLaneOutOfRange, "%s lane %d outside 1..%d", role, n, len(y.lanes))
	}
	return n - 1, nil
}

func reversed(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[len(in)-1-i] = r
	}
	return out
}
