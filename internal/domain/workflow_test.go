package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAnders00/advent-of-code-2023/internal/controller"
	m "github.com/RAnders00/advent-of-code-2023/internal/model"
	"github.com/RAnders00/advent-of-code-2023/internal/schematic"
)

const (
	day1Document = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`
	day2Document = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`
	day3Document = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`
	day4Document = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`
)

// fakeInputReader serves documents from memory.
type fakeInputReader struct {
	documents map[m.Path]string
}

func (f *fakeInputReader) ReadInput(path m.Path) (string, error) {
	document, found := f.documents[path]
	if !found {
		return "", fmt.Errorf("while trying to read file %s: no such document", path)
	}

	return document, nil
}

// recordingUI captures everything it is asked to display.
type recordingUI struct {
	results       []m.DayResult
	summary       []m.DayResult
	summaryFormat controller.SummaryFormat
}

func (r *recordingUI) DisplayAnswers(_ context.Context, result m.DayResult) error {
	r.results = append(r.results, result)

	return nil
}

func (r *recordingUI) DisplaySummary(_ context.Context, results []m.DayResult, format controller.SummaryFormat) error {
	r.summary = results
	r.summaryFormat = format

	return nil
}

// recordingViewer captures the schematic it is asked to display.
type recordingViewer struct {
	lines []string
	sch   schematic.Schematic
}

func (r *recordingViewer) DisplaySchematic(_ context.Context, lines []string, sch schematic.Schematic) error {
	r.lines = lines
	r.sch = sch

	return nil
}

func newTestWorkflow() (Workflow, *recordingUI, *recordingViewer) {
	inputs := &fakeInputReader{documents: map[m.Path]string{
		"day1.txt": day1Document,
		"day2.txt": day2Document,
		"day3.txt": day3Document,
		"day4.txt": day4Document,
	}}
	ui := &recordingUI{}
	viewer := &recordingViewer{}

	return NewWorkflow(inputs, ui, viewer), ui, viewer
}

func answerValues(result m.DayResult) []uint64 {
	values := make([]uint64, 0, len(result.Answers))
	for _, answer := range result.Answers {
		values = append(values, answer.Value)
	}

	return values
}

func TestWorkflow_SolveDay1(t *testing.T) {
	workflow, ui, _ := newTestWorkflow()

	err := workflow.SolveDay1(context.Background(), DayArgs{Input: "day1.txt"})
	require.NoError(t, err)

	require.Len(t, ui.results, 1)
	assert.Equal(t, 1, ui.results[0].Day)
	// The part 1 example contains no spelled out digits, so both algorithms
	// agree on it.
	assert.Equal(t, []uint64{142, 142}, answerValues(ui.results[0]))
}

func TestWorkflow_SolveDay2(t *testing.T) {
	workflow, ui, _ := newTestWorkflow()

	err := workflow.SolveDay2(context.Background(), DayArgs{Input: "day2.txt"})
	require.NoError(t, err)

	require.Len(t, ui.results, 1)
	assert.Equal(t, 2, ui.results[0].Day)
	assert.Equal(t, []uint64{8, 2286}, answerValues(ui.results[0]))
}

func TestWorkflow_SolveDay3(t *testing.T) {
	workflow, ui, _ := newTestWorkflow()

	err := workflow.SolveDay3(context.Background(), DayArgs{Input: "day3.txt"})
	require.NoError(t, err)

	require.Len(t, ui.results, 1)
	assert.Equal(t, 3, ui.results[0].Day)
	assert.Equal(t, []uint64{4361, 467835}, answerValues(ui.results[0]))
}

func TestWorkflow_SolveDay4(t *testing.T) {
	workflow, ui, _ := newTestWorkflow()

	err := workflow.SolveDay4(context.Background(), DayArgs{Input: "day4.txt"})
	require.NoError(t, err)

	require.Len(t, ui.results, 1)
	assert.Equal(t, 4, ui.results[0].Day)
	assert.Equal(t, []uint64{13, 30}, answerValues(ui.results[0]))
}

func TestWorkflow_SolveDay2_MalformedLine(t *testing.T) {
	inputs := &fakeInputReader{documents: map[m.Path]string{
		"day2.txt": "Game 1: 3 blue\nnot a game\n",
	}}
	workflow := NewWorkflow(inputs, &recordingUI{}, &recordingViewer{})

	err := workflow.SolveDay2(context.Background(), DayArgs{Input: "day2.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "while trying to parse line 2")
	assert.Contains(t, err.Error(), "not a game")
}

func TestWorkflow_SolveDay_MissingInput(t *testing.T) {
	workflow, ui, _ := newTestWorkflow()

	err := workflow.SolveDay3(context.Background(), DayArgs{Input: "nope.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
	assert.Empty(t, ui.results)
}

func TestWorkflow_SolveDay_CancelledContext(t *testing.T) {
	workflow, ui, _ := newTestWorkflow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := workflow.SolveDay1(ctx, DayArgs{Input: "day1.txt"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ui.results)
}

func TestWorkflow_SolveAll(t *testing.T) {
	workflow, ui, _ := newTestWorkflow()

	err := workflow.SolveAll(context.Background(), AllArgs{
		Inputs: [4]m.Path{"day1.txt", "day2.txt", "day3.txt", "day4.txt"},
		Format: controller.FormatYAML,
	})
	require.NoError(t, err)

	require.Len(t, ui.summary, 4)
	assert.Equal(t, controller.FormatYAML, ui.summaryFormat)

	// Results arrive ordered by day regardless of which solver finished
	// first.
	for idx, result := range ui.summary {
		assert.Equal(t, idx+1, result.Day)
	}

	assert.Equal(t, []uint64{4361, 467835}, answerValues(ui.summary[2]))
}

func TestWorkflow_SolveAll_MissingInput(t *testing.T) {
	workflow, ui, _ := newTestWorkflow()

	err := workflow.SolveAll(context.Background(), AllArgs{
		Inputs: [4]m.Path{"day1.txt", "day2.txt", "nope.txt", "day4.txt"},
		Format: controller.FormatText,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
	assert.Empty(t, ui.summary)
}

func TestWorkflow_ViewSchematic(t *testing.T) {
	workflow, _, viewer := newTestWorkflow()

	err := workflow.ViewSchematic(context.Background(), ViewArgs{Input: "day3.txt"})
	require.NoError(t, err)

	require.Len(t, viewer.lines, 10)
	assert.Equal(t, "467..114..", viewer.lines[0])
	assert.Len(t, viewer.sch.PartNumbers, 8)
	assert.Len(t, viewer.sch.Gears, 2)
}

func TestWorkflow_ViewSchematic_MissingInput(t *testing.T) {
	workflow, _, viewer := newTestWorkflow()

	err := workflow.ViewSchematic(context.Background(), ViewArgs{Input: "nope.txt"})
	require.Error(t, err)
	assert.Empty(t, viewer.lines)
}
