package stackyard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Step records the yard after one move.
type Step struct {
	Seq   int      `json:"seq"`
	Move  Move     `json:"move"`
	Lanes []string `json:"lanes"`
}

func (s Step) String() string {
	return fmt.Sprintf("%03d %s | %s", s.Seq, s.Move, renderLanes(s.Lanes))
}

// Result is the outcome of a replay.
type Result struct {
	Mode    Mode     `json:"-"`
	Initial []string `json:"initial"`
	Steps   []Step   `json:"steps,omitempty"`
	Final   []string `json:"final"`
	Readout string   `json:"readout"`
}

// Trace renders the replay one line per step, starting with the initial
// yard and ending with the readout.
func (r *Result) Trace() string {
	var b strings.Builder
	fmt.Fprintf(&b, "000 start | %s\n", renderLanes(r.Initial))
	for _, s := range r.Steps {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "readout %s\n", r.Readout)
	return b.String()
}

func renderLanes(lanes []string) string {
	parts := make([]string, len(lanes))
	for i, lane := range lanes {
		if lane == "" {
			lane = "-"
		}
		parts[i] = fmt.Sprintf("%d:%s", i+1, lane)
	}
	return strings.Join(parts, " ")
}

type replayOptions struct {
	logger *slog.Logger
	trace  bool
}

// Option configures Replay.
type Option func(*replayOptions)

// WithLogger logs every applied move at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *replayOptions) { o.logger = logger }
}

// WithTrace records a Step per move in the Result.
func WithTrace() Option {
	return func(o *replayOptions) { o.trace = true }
}

// Replay parses a full puzzle input and replays every instruction under
// mode. Input lines must already have their line endings stripped.
func Replay(input []string, mode Mode, opts ...Option) (*Result, error) {
	o := replayOptions{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	debug := o.logger.Enabled(context.Background(), slog.LevelDebug)

	if len(input) == 0 {
		return nil, newError(ErrCodeMissingStateBlock, "input is empty")
	}

	diagram, instructions, offset := splitInput(input)
	yard, err := ParseDiagram(diagram)
	if err != nil {
		return nil, err
	}

	result := &Result{Mode: mode, Initial: yard.Snapshot()}
	o.logger.Debug("yard parsed", "lanes", yard.Lanes(), "crates", yard.Count(), "mode", mode)

	seq := 0
	for i, line := range instructions {
		if line == "" {
			continue
		}
		lineNo := offset + i + 1
		m, err := ParseMove(line)
		if err != nil {
			return nil, atLine(err, lineNo)
		}
		if err := yard.Apply(m, mode); err != nil {
			return nil, atLine(err, lineNo)
		}
		seq++
		if o.trace {
			result.Steps = append(result.Steps, Step{Seq: seq, Move: m, Lanes: yard.Snapshot()})
		}
		if debug {
			o.logger.Debug("move applied", "seq", seq, "move", m.String(), "lanes", yard.Snapshot())
		}
	}

	result.Final = yard.Snapshot()
	result.Readout, err = yard.Readout()
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Run replays input under mode and returns only the readout.
func Run(input []string, mode Mode) (string, error) {
	r, err := Replay(input, mode)
	if err != nil {
		return "", err
	}
	return r.Readout, nil
}

// splitInput returns the diagram block, the remaining instruction lines, and
// the number of lines that precede the instructions.
func splitInput(input []string) (diagram, instructions []string, offset int) {
	for i, line := range input {
		if line == "" {
			return input[:i], input[i+1:], i + 1
		}
	}
	return input, nil, len(input)
}

// Part1 solves day 5 part one with the CrateMover 9000.
func Part1(lines []string) (string, error) {
	return Run(lines, ModeSingle)
}

// Part2 solves day 5 part two with the CrateMover 9001.
func Part2(lines []string) (string, error) {
	return Run(lines, ModeBlock)
}
