// Package cmd provides the root command and CLI setup for aoc2023.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/RAnders00/advent-of-code-2023/internal/adapter"
	"github.com/RAnders00/advent-of-code-2023/internal/controller"
	"github.com/RAnders00/advent-of-code-2023/internal/domain"
	m "github.com/RAnders00/advent-of-code-2023/internal/model"
)

var inputReader adapter.InputReader
var ui controller.UI
var viewer controller.SchematicViewer
var workflow domain.Workflow

// verboseFlag switches the log level to debug when set.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(logFileFlag, verboseFlag)
	}

	// Initialize shared dependencies.
	inputReader = adapter.NewLocalInputReader()
	ui = controller.NewSimpleUI(rootCmd)
	viewer = controller.NewTUI(os.Stdout)
	workflow = domain.NewWorkflow(inputReader, ui, viewer)
}

const inputArgumentHelp = `The input document can be given as a positional argument. When omitted,
the path configured under inputs.dayN (config file or environment) is used.`

const rootLongDescription = `aoc2023 solves the first four Advent of Code 2023 puzzles: calibration
values (day 1), cube games (day 2), engine schematics (day 3) and
scratchcards (day 4).

` + inputArgumentHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aoc2023",
		Short: "Advent of Code 2023 puzzle solver",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log debug information")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "file to write logs to")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// inputPath resolves the input document path for a day command: the
// positional argument wins, otherwise the configured path is used.
func inputPath(args []string, configKey string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(configKey))
}
