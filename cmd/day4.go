package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/RAnders00/advent-of-code-2023/internal/domain"
)

// day4Cmd represents the day4 command.
var day4Cmd = newDay4Cmd()

func newDay4Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day4 [input]",
		Short: "Solve day 4: scratchcards",
		Long: `Sum the points of every scratchcard and count the total number of cards
after winning cards spawn copies of the cards below them.

` + inputArgumentHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.SolveDay4(context.Background(), domain.DayArgs{
				Input: inputPath(args, inputDay4Key),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(day4Cmd)
}
