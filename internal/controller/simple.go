package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/RAnders00/advent-of-code-2023/internal/model"
)

var (
	dayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	answerStyle    = lipgloss.NewStyle().Bold(true)
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAnswers prints the answers of a single day.
func (s *SimpleUI) DisplayAnswers(ctx context.Context, result m.DayResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Println(dayHeaderStyle.Render(fmt.Sprintf("Day %d", result.Day)))
	for _, answer := range result.Answers {
		s.cmd.Printf("%s: %s\n", answer.Label, answerStyle.Render(strconv.FormatUint(answer.Value, 10)))
	}

	return nil
}

// DisplaySummary prints the answers of all days in the requested format.
func (s *SimpleUI) DisplaySummary(ctx context.Context, results []m.DayResult, format SummaryFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatYAML {
		encoded, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}

		s.cmd.Print(string(encoded))

		return nil
	}

	s.cmd.Printf("\n%s", renderSummaryTable(results))

	return nil
}

func renderSummaryTable(results []m.DayResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Day", "Answer", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	answersCount := 0

	for _, result := range results {
		for _, answer := range result.Answers {
			table.Append([]string{
				strconv.Itoa(result.Day),
				answer.Label,
				strconv.FormatUint(answer.Value, 10),
			})

			answersCount++
		}
	}

	table.SetFooter([]string{
		"",
		"Total answers",
		strconv.Itoa(answersCount),
	})

	table.Render()

	return tableBuffer.String()
}
