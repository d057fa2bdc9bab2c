package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/RAnders00/advent-of-code-2023/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [input]",
		Short: "View an engine schematic with part numbers and gears highlighted",
		Long: `Parse an engine schematic and display the grid with part numbers and
gears highlighted. Large schematics open in a scrollable viewer.

` + inputArgumentHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.ViewSchematic(context.Background(), domain.ViewArgs{
				Input: inputPath(args, inputDay3Key),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
