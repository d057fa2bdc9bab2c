package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/RAnders00/advent-of-code-2023/internal/domain"
)

// day2Cmd represents the day2 command.
var day2Cmd = newDay2Cmd()

func newDay2Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day2 [input]",
		Short: "Solve day 2: cube conundrum",
		Long: `Sum the IDs of the games that are possible with 12 red, 13 green and
14 blue cubes, and the powers of the minimum cube set of every game.

` + inputArgumentHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.SolveDay2(context.Background(), domain.DayArgs{
				Input: inputPath(args, inputDay2Key),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(day2Cmd)
}
