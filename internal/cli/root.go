package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/config"
	"github.com/roach88/adventofcode/internal/puzzle"
)

// RootOptions holds global flags for all commands, plus the state the root
// command prepares before any subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	Config   config.Config
	Logger   *slog.Logger
	Registry *puzzle.Registry
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command with the default day registry.
func NewRootCommand() *cobra.Command {
	return newRootCommand(puzzle.Default())
}

func newRootCommand(reg *puzzle.Registry) *cobra.Command {
	opts := &RootOptions{Registry: reg}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2022 solvers",
		Long: `Solvers for Advent of Code 2022, days 1 to 5.

Answers can be recorded to a SQLite ledger and checked against YAML
fixture scenarios. Settings are read from a CUE file (default aoc.cue).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "path to CUE config file")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewDaysCommand(opts))

	return cmd
}

// prepare validates global flags, loads the config and builds the logger.
// An explicit --config must exist; the default path is optional.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	required := cmd.Flags().Changed("config")
	cfg, err := config.Load(o.ConfigPath, required)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	o.Config = cfg

	level := cfg.SlogLevel()
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.Logger.Debug("config loaded", "path", o.ConfigPath, "input_dir", cfg.InputDir, "ledger", cfg.Ledger)
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
