// Package domain contains the workflow orchestration of the puzzle solvers.
package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/RAnders00/advent-of-code-2023/internal/adapter"
	"github.com/RAnders00/advent-of-code-2023/internal/controller"
	m "github.com/RAnders00/advent-of-code-2023/internal/model"
	"github.com/RAnders00/advent-of-code-2023/internal/schematic"
)

// DayArgs holds the parameters for solving a single day.
type DayArgs struct {
	// Input is the path of the puzzle input document.
	Input m.Path
}

// AllArgs holds the parameters for solving every day at once.
type AllArgs struct {
	// Inputs are the input document paths, indexed by day minus one.
	Inputs [4]m.Path
	// Format selects how the summary is rendered.
	Format controller.SummaryFormat
}

// ViewArgs holds the parameters for inspecting an engine schematic.
type ViewArgs struct {
	// Input is the path of the schematic document.
	Input m.Path
}

// Workflow defines the use cases of the CLI.
type Workflow interface {
	SolveDay1(ctx context.Context, args DayArgs) error
	SolveDay2(ctx context.Context, args DayArgs) error
	SolveDay3(ctx context.Context, args DayArgs) error
	SolveDay4(ctx context.Context, args DayArgs) error
	SolveAll(ctx context.Context, args AllArgs) error
	ViewSchematic(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	inputs adapter.InputReader
	ui     controller.UI
	viewer controller.SchematicViewer
}

// NewWorkflow creates a Workflow wired to the given input reader and outputs.
func NewWorkflow(inputs adapter.InputReader, ui controller.UI, viewer controller.SchematicViewer) Workflow {
	return &workflow{inputs: inputs, ui: ui, viewer: viewer}
}

// solve reads the input document for day and computes its answers.
func (w *workflow) solve(ctx context.Context, day int, input m.Path) (m.DayResult, error) {
	if err := ctx.Err(); err != nil {
		return m.DayResult{}, err
	}

	document, err := w.inputs.ReadInput(input)
	if err != nil {
		return m.DayResult{}, err
	}

	var answers []m.Answer

	switch day {
	case 1:
		answers, err = solveDay1(document)
	case 2:
		answers, err = solveDay2(document)
	case 3:
		answers, err = solveDay3(document)
	case 4:
		answers, err = solveDay4(document)
	}

	if err != nil {
		return m.DayResult{}, err
	}

	return m.DayResult{Day: day, Answers: answers}, nil
}

func (w *workflow) solveAndDisplay(ctx context.Context, day int, args DayArgs) error {
	result, err := w.solve(ctx, day, args.Input)
	if err != nil {
		return err
	}

	return w.ui.DisplayAnswers(ctx, result)
}

func (w *workflow) SolveDay1(ctx context.Context, args DayArgs) error {
	return w.solveAndDisplay(ctx, 1, args)
}

func (w *workflow) SolveDay2(ctx context.Context, args DayArgs) error {
	return w.solveAndDisplay(ctx, 2, args)
}

func (w *workflow) SolveDay3(ctx context.Context, args DayArgs) error {
	return w.solveAndDisplay(ctx, 3, args)
}

func (w *workflow) SolveDay4(ctx context.Context, args DayArgs) error {
	return w.solveAndDisplay(ctx, 4, args)
}

// SolveAll solves every day concurrently and displays a combined summary.
func (w *workflow) SolveAll(ctx context.Context, args AllArgs) error {
	results := make([]m.DayResult, len(args.Inputs))

	group, groupCtx := errgroup.WithContext(ctx)

	for idx, input := range args.Inputs {
		group.Go(func() error {
			result, err := w.solve(groupCtx, idx+1, input)
			if err != nil {
				return err
			}

			results[idx] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return w.ui.DisplaySummary(ctx, results, args.Format)
}

// ViewSchematic parses the schematic document and hands it to the viewer.
func (w *workflow) ViewSchematic(ctx context.Context, args ViewArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	document, err := w.inputs.ReadInput(args.Input)
	if err != nil {
		return err
	}

	sch, err := schematic.Parse(document)
	if err != nil {
		return err
	}

	return w.viewer.DisplaySchematic(ctx, schematic.Lines(document), sch)
}
