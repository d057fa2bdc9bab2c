// Package controller provides output adapters for displaying puzzle answers.
package controller

import (
	"context"

	m "github.com/RAnders00/advent-of-code-2023/internal/model"
	"github.com/RAnders00/advent-of-code-2023/internal/schematic"
)

// SummaryFormat selects how the all-days summary is rendered.
type SummaryFormat string

// Available SummaryFormat values.
const (
	// FormatText renders the summary as a table.
	FormatText SummaryFormat = "text"
	// FormatYAML renders the summary as a YAML document.
	FormatYAML SummaryFormat = "yaml"
)

// UI defines the interface for displaying puzzle answers.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayAnswers(ctx context.Context, result m.DayResult) error
	DisplaySummary(ctx context.Context, results []m.DayResult, format SummaryFormat) error
}

// SchematicViewer renders a parsed engine schematic for inspection.
type SchematicViewer interface {
	DisplaySchematic(ctx context.Context, lines []string, sch schematic.Schematic) error
}
