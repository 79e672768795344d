package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/lines"
	"github.com/roach88/adventofcode/internal/store"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Part   int
	Input  string
	Record bool
}

// PartAnswer is the answer to one part.
type PartAnswer struct {
	Part   int    `json:"part"`
	Answer string `json:"answer"`
	Seq    int64  `json:"seq,omitempty"`
}

// SolveResult is the output of the solve command.
type SolveResult struct {
	Day         int          `json:"day"`
	Title       string       `json:"title"`
	Input       string       `json:"input"`
	InputDigest string       `json:"input_digest"`
	Answers     []PartAnswer `json:"answers"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve one day's puzzle",
		Long: `Solve both parts of a day, or one with --part.

The input defaults to <input_dir>/day<N>.txt from the config. With --record
each answer is appended to the SQLite ledger; a warning is logged when an
earlier answer for the same input differs.

Example:
  aoc solve 5
  aoc solve 5 --part 2 --input inputs/day5.txt --record`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.Part, "part", "p", 0, "part to solve (1 or 2, default both)")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "puzzle input file")
	cmd.Flags().BoolVar(&opts.Record, "record", false, "append answers to the ledger")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *SolveOptions, dayArg string) error {
	f := opts.formatter(cmd)

	n, err := strconv.Atoi(dayArg)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeArgs, fmt.Sprintf("invalid day %q", dayArg), nil, nil)
	}
	day, err := opts.Registry.Lookup(n)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeArgs, "unknown day", err, nil)
	}

	parts := []int{1, 2}
	switch opts.Part {
	case 0:
	case 1, 2:
		parts = []int{opts.Part}
	default:
		return f.Fail(ExitCommandError, ErrCodeArgs, fmt.Sprintf("invalid part %d: must be 1 or 2", opts.Part), nil, nil)
	}

	path := opts.Input
	if path == "" {
		path = opts.Config.InputPath(n)
	}
	input, err := lines.Read(path)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInput, "failed to read input", err, nil)
	}

	result := SolveResult{
		Day:         day.Number,
		Title:       day.Title,
		Input:       path,
		InputDigest: store.Digest(input),
	}
	opts.Logger.Debug("input read", "day", n, "path", path, "lines", len(input), "digest", result.InputDigest)

	for _, part := range parts {
		answer, err := day.Solve(part, input)
		if err != nil {
			return f.Fail(ExitFailure, ErrCodeSolve, "solve failed", err, nil)
		}
		result.Answers = append(result.Answers, PartAnswer{Part: part, Answer: answer})
	}

	if opts.Record {
		if err := recordAnswers(cmd, opts, &result); err != nil {
			return f.Fail(ExitCommandError, ErrCodeLedger, "failed to record answers", err, nil)
		}
	}

	if f.isJSON() {
		return f.Success(result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Day %d: %s\n", result.Day, result.Title)
	for _, a := range result.Answers {
		fmt.Fprintf(w, "  part %d: %s\n", a.Part, a.Answer)
	}
	return nil
}

func recordAnswers(cmd *cobra.Command, opts *SolveOptions, result *SolveResult) error {
	st, err := openLedger(opts.Config.Ledger, true)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			opts.Logger.Error("error closing ledger", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	for i, a := range result.Answers {
		prev, ok, err := st.Previous(ctx, result.Day, a.Part, result.InputDigest)
		if err != nil {
			return err
		}
		if ok && prev.Answer != a.Answer {
			opts.Logger.Warn("answer changed for same input",
				"day", result.Day, "part", a.Part, "previous", prev.Answer, "current", a.Answer, "previous_seq", prev.Seq)
		}

		rec, err := st.Record(ctx, store.Answer{
			Day:         result.Day,
			Part:        a.Part,
			InputDigest: result.InputDigest,
			Answer:      a.Answer,
		})
		if err != nil {
			return err
		}
		result.Answers[i].Seq = rec.Seq
		opts.Logger.Info("answer recorded", "day", rec.Day, "part", rec.Part, "seq", rec.Seq, "id", rec.ID)
	}
	return nil
}

// errNoLedger is returned by openLedger when create is false and the
// ledger file does not exist yet.
var errNoLedger = errors.New("ledger not found")

func openLedger(path string, create bool) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if !create {
			return nil, fmt.Errorf("%w: %s", errNoLedger, path)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create ledger directory: %w", err)
			}
		}
	}
	return store.Open(path)
}

