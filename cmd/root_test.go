package cmd

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAnders00/advent-of-code-2023/internal/domain"
	m "github.com/RAnders00/advent-of-code-2023/internal/model"
)

// fakeWorkflow records the last call made to it and returns a configurable
// error.
type fakeWorkflow struct {
	day      int
	dayArgs  domain.DayArgs
	allArgs  *domain.AllArgs
	viewArgs *domain.ViewArgs
	err      error
}

func (f *fakeWorkflow) solveDay(day int, args domain.DayArgs) error {
	f.day = day
	f.dayArgs = args

	return f.err
}

func (f *fakeWorkflow) SolveDay1(_ context.Context, args domain.DayArgs) error {
	return f.solveDay(1, args)
}

func (f *fakeWorkflow) SolveDay2(_ context.Context, args domain.DayArgs) error {
	return f.solveDay(2, args)
}

func (f *fakeWorkflow) SolveDay3(_ context.Context, args domain.DayArgs) error {
	return f.solveDay(3, args)
}

func (f *fakeWorkflow) SolveDay4(_ context.Context, args domain.DayArgs) error {
	return f.solveDay(4, args)
}

func (f *fakeWorkflow) SolveAll(_ context.Context, args domain.AllArgs) error {
	f.allArgs = &args

	return f.err
}

func (f *fakeWorkflow) ViewSchematic(_ context.Context, args domain.ViewArgs) error {
	f.viewArgs = &args

	return f.err
}

// swapWorkflow installs fake as the package workflow for the duration of the
// test.
func swapWorkflow(t *testing.T, fake domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = fake
	t.Cleanup(func() { workflow = originalWorkflow })
}

func newTestRootCmd(subcommand *cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(subcommand)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "aoc2023", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "Advent of Code 2023")
}

func TestInputPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want m.Path
	}{
		{"positional argument wins", []string{"./custom.txt"}, m.Path("./custom.txt")},
		{"falls back to config", []string{}, m.Path("inputs/day3.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inputPath(tt.args, inputDay3Key)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, inputReader)
	assert.NotNil(t, ui)
	assert.NotNil(t, viewer)
	assert.NotNil(t, workflow)
}

func TestExecute(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd

	// Create a mock command that succeeds
	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute should not panic or exit
	Execute()

	// Restore
	rootCmd = originalRootCmd
}

func TestExecute_WithError(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	// Create a mock command that fails
	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute() on a failing command calls os.Exit(1), so only the command
	// itself is exercised here.
	err := rootCmd.Execute()
	require.Error(t, err)
}
