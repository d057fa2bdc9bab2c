package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/RAnders00/advent-of-code-2023/internal/domain"
)

// day1Cmd represents the day1 command.
var day1Cmd = newDay1Cmd()

func newDay1Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day1 [input]",
		Short: "Solve day 1: trebuchet calibration values",
		Long: `Sum the calibration value of every line, first counting decimal digits
only and then also counting spelled out digits (one through nine).

` + inputArgumentHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.SolveDay1(context.Background(), domain.DayArgs{
				Input: inputPath(args, inputDay1Key),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(day1Cmd)
}
