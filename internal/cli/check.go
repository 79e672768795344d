package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string
}

// CheckResult is the output of the check command.
type CheckResult struct {
	Scenarios []*harness.Result `json:"scenarios"`
	Passed    int               `json:"passed"`
	Failed    int               `json:"failed"`
	Total     int               `json:"total"`
}

var (
	passLabel  = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <scenario.yaml|dir>...",
		Short: "Check solvers against fixture scenarios",
		Long: `Run YAML fixture scenarios and compare every answer with the expected one.

Directories are scanned for *.yaml and *.yml files. Exits with code 1 when
any scenario fails.

Example:
  aoc check testdata/scenarios
  aoc check testdata/scenarios --filter day5`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only run scenarios whose name contains this string")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, paths []string) error {
	f := opts.formatter(cmd)

	scenarios, err := harness.Collect(paths)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeFixture, "failed to load scenarios", err, nil)
	}

	var selected []*harness.Scenario
	for _, s := range scenarios {
		if opts.Filter == "" || strings.Contains(s.Name, opts.Filter) {
			selected = append(selected, s)
		}
	}
	if len(selected) == 0 {
		return f.Fail(ExitCommandError, ErrCodeFixture, "no scenarios matched", nil, nil)
	}
	opts.Logger.Debug("scenarios loaded", "total", len(scenarios), "selected", len(selected))

	result := CheckResult{Scenarios: harness.RunAll(opts.Registry, selected)}
	for _, r := range result.Scenarios {
		result.Total++
		if r.Passed() {
			result.Passed++
		} else {
			result.Failed++
			opts.Logger.Debug("scenario failed", "scenario", r.Scenario, "day", r.Day)
		}
	}

	if f.isJSON() {
		resp := CLIResponse{Status: "ok", Data: result}
		if result.Failed > 0 {
			resp.Status = "error"
			resp.Error = &CLIError{
				Code:    ErrCodeFailed,
				Message: fmt.Sprintf("%d scenario(s) failed", result.Failed),
			}
		}
		if err := f.encode(resp); err != nil {
			return err
		}
	} else {
		writeCheckText(cmd.OutOrStdout(), result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}

func writeCheckText(w io.Writer, result CheckResult) {
	for _, r := range result.Scenarios {
		for _, line := range strings.SplitAfter(r.String(), "\n") {
			if line == "" {
				continue
			}
			status, rest, _ := strings.Cut(line, " ")
			switch status {
			case "PASS":
				status = passLabel(status)
			case "FAIL":
				status = failLabel(status)
			case "ERROR":
				status = errorLabel(status)
			}
			fmt.Fprintf(w, "%s %s", status, rest)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
}
