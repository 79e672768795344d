package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Day   int
	Part  int
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List answers recorded in the ledger",
		Long: `List answers recorded with "aoc solve --record", oldest first.

Example:
  aoc history
  aoc history --day 5 --part 2 --limit 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Day, "day", "d", 0, "only this day")
	cmd.Flags().IntVarP(&opts.Part, "part", "p", 0, "only this part")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "show at most this many answers (0 = all)")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	f := opts.formatter(cmd)

	if opts.Limit < 0 {
		return f.Fail(ExitCommandError, ErrCodeArgs, "limit must not be negative", nil, nil)
	}

	st, err := openLedger(opts.Config.Ledger, false)
	if errors.Is(err, errNoLedger) {
		// Nothing recorded yet.
		return writeHistory(cmd, f, []store.Answer{})
	}
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeLedger, "failed to open ledger", err, nil)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			opts.Logger.Error("error closing ledger", "error", closeErr)
		}
	}()

	answers, err := st.List(cmd.Context(), store.Filter{Day: opts.Day, Part: opts.Part, Limit: opts.Limit})
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeLedger, "failed to list answers", err, nil)
	}
	return writeHistory(cmd, f, answers)
}

func writeHistory(cmd *cobra.Command, f *OutputFormatter, answers []store.Answer) error {
	if f.isJSON() {
		return f.Success(answers)
	}

	w := cmd.OutOrStdout()
	if len(answers) == 0 {
		fmt.Fprintln(w, "no answers recorded")
		return nil
	}
	for _, a := range answers {
		fmt.Fprintf(w, "%4d  day %2d part %d  %-16s  %s\n", a.Seq, a.Day, a.Part, a.Answer, shortDigest(a.InputDigest))
	}
	return nil
}

func shortDigest(d string) string {
	return d[:min(len(d), 12)]
}
