package stackyard

import (
	"strconv"
	"strings"
	"unicode"
)

// chunkWidth is the width of one lane column in a diagram row: "[X] ".
const chunkWidth = 4

// Move is one parsed instruction. Lanes are 1-based.
type Move struct {
	Quantity int `json:"quantity"`
	From     int `json:"from"`
	To       int `json:"to"`
}

func (m Move) String() string {
	return "move " + strconv.Itoa(m.Quantity) + " from " + strconv.Itoa(m.From) + " to " + strconv.Itoa(m.To)
}

// ParseDiagram builds a yard from the diagram block: every line before the
// blank separator, the last of which is the lane index line.
func ParseDiagram(lines []string) (*Yard, error) {
	if len(lines) == 0 {
		return nil, newError(ErrCodeMissingIndexLine, "diagram has no lane index line")
	}

	last := len(lines) - 1
	count, err := parseIndexLine(lines[last])
	if err != nil {
		return nil, atLine(err, last+1)
	}

	// Rows are read top down, so lanes fill top first and are flipped at the end.
	lanes := make([][]rune, count)
	for i, row := range lines[:last] {
		if err := scanRow(row, lanes); err != nil {
			return nil, atLine(err, i+1)
		}
	}

	y := &Yard{lanes: make([][]rune, count)}
	for i, lane := range lanes {
		y.lanes[i] = reversed(lane)
	}
	return y, nil
}

// parseIndexLine returns the highest lane number, taken from the last token.
func parseIndexLine(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, newError(ErrCodeMalformedIndexLine, "index line %q has no lane numbers", line)
	}
	token := fields[len(fields)-1]
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, newError(ErrCodeMalformedIndexLine, "lane count %q is not an integer", token)
	}
	if n < 1 {
		return 0, newError(ErrCodeMalformedIndexLine, "lane count must be positive, got %d", n)
	}
	return n, nil
}

func scanRow(row string, lanes [][]rune) error {
	runes := []rune(row)
	for slot, start := 0, 0; start < len(runes); slot, start = slot+1, start+chunkWidth {
		chunk := runes[start:min(start+chunkWidth, len(runes))]
		switch {
		case isBlank(chunk):
			continue
		case chunk[0] == '[':
			if len(chunk) < 2 || unicode.IsSpace(chunk[1]) {
				return newError(ErrCodeMalformedDiagramRow, "column %d opens a crate without a label", slot+1)
			}
			if slot >= len(lanes) {
				return newError(ErrCodeMalformedDiagramRow, "crate in column %d but only %d lanes", slot+1, len(lanes))
			}
			lanes[slot] = append(lanes[slot], chunk[1])
		default:
			return newError(ErrCodeMalformedDiagramRow, "unexpected chunk %q in column %d", string(chunk), slot+1)
		}
	}
	return nil
}

func isBlank(chunk []rune) bool {
	for _, r := range chunk {
		if r != ' ' {
			return false
		}
	}
	return true
}

// ParseMove parses "move N from S to D". Whitespace between tokens is
// normalized. Lane ranges are checked when the move is applied.
func ParseMove(line string) (Move, error) {
	f := strings.Fields(line)
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return Move{}, newError(ErrCodePatternMismatch, "%q does not match \"move N from S to D\"", line)
	}

	var m Move
	var err error
	if m.Quantity, err = parseField("quantity", f[1]); err != nil {
		return Move{}, err
	}
	if m.From, err = parseField("source", f[3]); err != nil {
		return Move{}, err
	}
	if m.To, err = parseField("destination", f[5]); err != nil {
		return Move{}, err
	}
	return m, nil
}

// parseField accepts an unsigned decimal that fits in an int.
func parseField(name, s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, newError(ErrCodeFieldNotInteger, "%s %q is not a non-negative integer", name, s)
	}
	return int(n), nil
}
