package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/lines"
	"github.com/roach88/adventofcode/internal/stackyard"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Mode string
}

// ReplayOutput is the JSON payload of the replay command.
type ReplayOutput struct {
	Mode string `json:"mode"`
	*stackyard.Result
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <input>",
		Short: "Replay a crate-stack input move by move",
		Long: `Replay a day 5 input and print the yard after every move.

Mode "single" moves crates one at a time (CrateMover 9000) and "block"
moves them together (CrateMover 9001). The last line is the readout.

Example:
  aoc replay inputs/day5.txt
  aoc replay inputs/day5.txt --mode block --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", stackyard.ModeSingle.String(),
		fmt.Sprintf("move mode %v", stackyard.ValidModes))

	return cmd
}

func runReplay(cmd *cobra.Command, opts *ReplayOptions, path string) error {
	f := opts.formatter(cmd)

	mode, err := stackyard.ParseMode(opts.Mode)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeArgs, "invalid mode", err, nil)
	}

	input, err := lines.Read(path)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInput, "failed to read input", err, nil)
	}

	result, err := stackyard.Replay(input, mode, stackyard.WithTrace(), stackyard.WithLogger(opts.Logger))
	if err != nil {
		var details any
		if code := stackyard.CodeOf(err); code != "" {
			details = map[string]string{"kind": string(code)}
		}
		return f.Fail(ExitFailure, ErrCodeSolve, "replay failed", err, details)
	}

	if f.isJSON() {
		return f.Success(ReplayOutput{Mode: mode.String(), Result: result})
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), result.Trace())
	return err
}
