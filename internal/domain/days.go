package domain

import (
	"fmt"
	"log/slog"

	"github.com/RAnders00/advent-of-code-2023/internal/cubegame"
	m "github.com/RAnders00/advent-of-code-2023/internal/model"
	"github.com/RAnders00/advent-of-code-2023/internal/schematic"
	"github.com/RAnders00/advent-of-code-2023/internal/scratchcard"
	"github.com/RAnders00/advent-of-code-2023/internal/trebuchet"
)

// Cube limits the elf asks about in part 1 of day 2.
const (
	day2MaxRedCubes   uint8 = 12
	day2MaxGreenCubes uint8 = 13
	day2MaxBlueCubes  uint8 = 14
)

func solveDay1(document string) ([]m.Answer, error) {
	part1, err := trebuchet.SumCalibrationValues(document, trebuchet.FirstAndLastDecimal)
	if err != nil {
		return nil, err
	}

	part2, err := trebuchet.SumCalibrationValues(document, trebuchet.FirstAndLastDecimalOrSpelled)
	if err != nil {
		return nil, err
	}

	slog.Info("solved day 1", "part1", part1, "part2", part2)

	return []m.Answer{
		{Label: "(Part 1) Sum of calibration values, decimal digits only", Value: part1},
		{Label: "(Part 2) Sum of calibration values, including spelled out digits", Value: part2},
	}, nil
}

func solveDay2(document string) ([]m.Answer, error) {
	var possibleIDSum, powerSum uint64

	for lineIdx, line := range schematic.Lines(document) {
		if line == "" {
			continue
		}

		game, err := cubegame.ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("while trying to parse line %d (%q): %w", lineIdx+1, line, err)
		}

		if game.WasPossible(day2MaxRedCubes, day2MaxGreenCubes, day2MaxBlueCubes) {
			possibleIDSum += game.ID
		}

		powerSum += game.Power()

		slog.Debug("parsed game", "id", game.ID, "draws", len(game.Draws))
	}

	slog.Info("solved day 2", "part1", possibleIDSum, "part2", powerSum)

	return []m.Answer{
		{Label: "(Part 1) Sum of IDs of possible games", Value: possibleIDSum},
		{Label: "(Part 2) Sum of powers of minimum cube sets", Value: powerSum},
	}, nil
}

func solveDay3(document string) ([]m.Answer, error) {
	sch, err := schematic.Parse(document)
	if err != nil {
		return nil, err
	}

	part1 := sch.PartNumberSum()
	part2 := sch.GearRatioSum()

	slog.Info("solved day 3", "part1", part1, "part2", part2)

	return []m.Answer{
		{Label: "(Part 1) Sum of all part numbers", Value: part1},
		{Label: "(Part 2) Sum of all gear ratios", Value: part2},
	}, nil
}

func solveDay4(document string) ([]m.Answer, error) {
	var cards []scratchcard.Scratchcard

	for _, line := range schematic.Lines(document) {
		if line == "" {
			continue
		}

		card, err := scratchcard.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scratchcard %q: %w", line, err)
		}

		cards = append(cards, card)
	}

	part1, err := scratchcard.TotalPoints(cards)
	if err != nil {
		return nil, err
	}

	scratchcard.PropagateCopies(cards)
	part2 := scratchcard.TotalCards(cards)

	slog.Info("solved day 4", "part1", part1, "part2", part2)

	return []m.Answer{
		{Label: "(Part 1) Total points of all scratchcards", Value: part1},
		{Label: "(Part 2) Total number of scratchcards after copying", Value: part2},
	}, nil
}
