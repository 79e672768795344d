package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DayInfo describes one registered day.
type DayInfo struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
}

// NewDaysCommand creates the days command.
func NewDaysCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "days",
		Short:         "List the days that have solvers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			days := rootOpts.Registry.Days()
			infos := make([]DayInfo, 0, len(days))
			for _, d := range days {
				infos = append(infos, DayInfo{Day: d.Number, Title: d.Title})
			}

			if f.isJSON() {
				return f.Success(infos)
			}
			for _, d := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", d.Day, d.Title)
			}
			return nil
		},
	}
}
