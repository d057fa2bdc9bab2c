package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RAnders00/advent-of-code-2023/internal/controller"
	"github.com/RAnders00/advent-of-code-2023/internal/domain"
	m "github.com/RAnders00/advent-of-code-2023/internal/model"
)

var allFormatFlag string

// allCmd represents the all command.
var allCmd = newAllCmd()

func newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day and print a summary",
		Long: `Solve all four days concurrently using the configured input paths
(inputs.day1 through inputs.day4) and print a combined summary.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			format := controller.SummaryFormat(viper.GetString(allFormatKey))
			if format != controller.FormatText && format != controller.FormatYAML {
				return fmt.Errorf("unknown summary format %q (expected %q or %q)", format, controller.FormatText, controller.FormatYAML)
			}

			return workflow.SolveAll(context.Background(), domain.AllArgs{
				Inputs: [4]m.Path{
					m.Path(viper.GetString(inputDay1Key)),
					m.Path(viper.GetString(inputDay2Key)),
					m.Path(viper.GetString(inputDay3Key)),
					m.Path(viper.GetString(inputDay4Key)),
				},
				Format: format,
			})
		},
	}

	configureAllFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(allCmd)
}

func configureAllFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&allFormatFlag, allFormatFlagName, "f", viper.GetString(allFormatKey), "summary format (text or yaml)")
	bindFlagToConfig(cmd.Flags().Lookup(allFormatFlagName), allFormatKey)
}
