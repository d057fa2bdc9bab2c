package cmd

import (
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/RAnders00/advent-of-code-2023/internal/model"
)

func TestDayCmds_PositionalInputIsPassedThrough(t *testing.T) {
	tests := []struct {
		name    string
		command func() *cobra.Command
		arg     string
		wantDay int
	}{
		{"day1", newDay1Cmd, "day1", 1},
		{"day2", newDay2Cmd, "day2", 2},
		{"day3", newDay3Cmd, "day3", 3},
		{"day4", newDay4Cmd, "day4", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeWorkflow{}
			swapWorkflow(t, fake)

			cmd := newTestRootCmd(tt.command())
			cmd.SetArgs([]string{tt.arg, "./custom-input.txt"})

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.wantDay, fake.day)
			assert.Equal(t, m.Path("./custom-input.txt"), fake.dayArgs.Input)
		})
	}
}

func TestDayCmds_ConfiguredInputIsUsedByDefault(t *testing.T) {
	tests := []struct {
		name      string
		command   func() *cobra.Command
		arg       string
		wantInput m.Path
	}{
		{"day1", newDay1Cmd, "day1", m.Path("inputs/day1.txt")},
		{"day2", newDay2Cmd, "day2", m.Path("inputs/day2.txt")},
		{"day3", newDay3Cmd, "day3", m.Path("inputs/day3.txt")},
		{"day4", newDay4Cmd, "day4", m.Path("inputs/day4.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeWorkflow{}
			swapWorkflow(t, fake)

			cmd := newTestRootCmd(tt.command())
			cmd.SetArgs([]string{tt.arg})

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.wantInput, fake.dayArgs.Input)
		})
	}
}

func TestDayCmds_ExtraArgsAreRejected(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRootCmd(newDay3Cmd())
	cmd.SetArgs([]string{"day3", "a.txt", "b.txt"})

	require.Error(t, cmd.Execute())
	assert.Zero(t, fake.day)
}

func TestDayCmds_WorkflowErrorIsPropagated(t *testing.T) {
	fake := &fakeWorkflow{err: fmt.Errorf("no input")}
	swapWorkflow(t, fake)

	cmd := newTestRootCmd(newDay1Cmd())
	cmd.SetArgs([]string{"day1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input")
}
