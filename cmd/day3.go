package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/RAnders00/advent-of-code-2023/internal/domain"
)

// day3Cmd represents the day3 command.
var day3Cmd = newDay3Cmd()

func newDay3Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day3 [input]",
		Short: "Solve day 3: engine schematic",
		Long: `Sum every part number (a number adjacent to a symbol) and every gear
ratio (the product of the two part numbers next to a gear).

` + inputArgumentHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.SolveDay3(context.Background(), domain.DayArgs{
				Input: inputPath(args, inputDay3Key),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(day3Cmd)
}
