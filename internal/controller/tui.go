package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/RAnders00/advent-of-code-2023/internal/schematic"
)

var (
	partNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	gearStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle     = lipgloss.NewStyle().Faint(true)
)

// TUI implements SchematicViewer using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplaySchematic renders the schematic grid with part numbers and gears
// highlighted. Interactive scrolling is only offered on a terminal and only
// when the grid does not fit the screen; otherwise the annotated grid is
// printed directly.
func (t *TUI) DisplaySchematic(ctx context.Context, lines []string, sch schematic.Schematic) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered := renderSchematic(lines, sch)
	status := fmt.Sprintf("%d part numbers, %d gears", len(sch.PartNumbers), len(sch.Gears))

	file, isFile := t.output.(*os.File)
	if !isFile || !term.IsTerminal(int(file.Fd())) {
		_, err := fmt.Fprintf(t.output, "%s\n%s\n", strings.Join(rendered, "\n"), status)

		return err
	}

	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	// If the grid is small, just print and exit.
	if len(rendered)+2 <= height {
		_, err := fmt.Fprintf(t.output, "%s\n%s\n", strings.Join(rendered, "\n"), status)

		return err
	}

	model := newSchematicModel(rendered, status, width, height)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// renderSchematic styles every character belonging to a part number and every
// gear symbol. Annotation walks each line by logical character so multi-byte
// characters stay aligned with the parse result.
func renderSchematic(lines []string, sch schematic.Schematic) []string {
	type cell struct {
		line, char int
	}

	partCells := make(map[cell]bool)
	for _, part := range sch.PartNumbers {
		for charIdx := part.CharSpan.Start; charIdx < part.CharSpan.End; charIdx++ {
			partCells[cell{part.LineIdx, charIdx}] = true
		}
	}

	gearCells := make(map[cell]bool)
	for _, gear := range sch.Gears {
		gearCells[cell{gear.LineIdx, gear.CharIdx}] = true
	}

	rendered := make([]string, 0, len(lines))

	for lineIdx, line := range lines {
		var b strings.Builder

		charIdx := 0
		for _, r := range line {
			pos := cell{lineIdx, charIdx}
			switch {
			case gearCells[pos]:
				b.WriteString(gearStyle.Render(string(r)))
			case partCells[pos]:
				b.WriteString(partNumberStyle.Render(string(r)))
			default:
				b.WriteRune(r)
			}
			charIdx++
		}

		rendered = append(rendered, b.String())
	}

	return rendered
}

// schematicModel is the Bubble Tea model paging through an annotated grid.
type schematicModel struct {
	viewport viewport.Model
	status   string
}

func newSchematicModel(lines []string, status string, width, height int) schematicModel {
	// Reserve two lines below the viewport for the status bar.
	vp := viewport.New(width, height-2)
	vp.SetContent(strings.Join(lines, "\n"))

	return schematicModel{viewport: vp, status: status}
}

func (sm schematicModel) Init() tea.Cmd {
	return nil
}

func (sm schematicModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.viewport.Width = msg.Width
		sm.viewport.Height = msg.Height - 2

		return sm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return sm, tea.Quit
		}
	}

	var cmd tea.Cmd
	sm.viewport, cmd = sm.viewport.Update(msg)

	return sm, cmd
}

func (sm schematicModel) View() string {
	help := statusStyle.Render(sm.status + " (scroll with arrow keys, quit with q)")

	return sm.viewport.View() + "\n\n" + help
}
