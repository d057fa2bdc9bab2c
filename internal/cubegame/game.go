package cubegame

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Capture group 1 = game ID, capture group 2 = unparsed list of draws (the
// pattern also enforces a roughly valid overall format).
var gameFormat = regexp.MustCompile(`^Game (\d+): ((?:\d+ (?:red|green|blue)(?:[,;] )?)+)$`)

// Game is a single game of draw-the-cubes: a game ID plus the list of cube
// subsets that were revealed from the bag.
type Game struct {
	ID    uint64
	Draws []Draw
}

// ParseGame parses a line like
// "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
func ParseGame(input string) (Game, error) {
	captures := gameFormat.FindStringSubmatch(input)
	if captures == nil {
		return Game{}, fmt.Errorf("game %q is of invalid format", input)
	}

	id, err := strconv.ParseUint(captures[1], 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("game ID in %q is not valid: %w", input, err)
	}

	var draws []Draw
	for _, drawStr := range strings.Split(captures[2], "; ") {
		draw, err := ParseDraw(drawStr)
		if err != nil {
			return Game{}, fmt.Errorf("a draw in game %q has an invalid format: %w", input, err)
		}
		draws = append(draws, draw)
	}

	return Game{ID: id, Draws: draws}, nil
}

// WasPossible reports whether this game's draws had been theoretically
// possible with the given number of red, green and blue cubes in the bag.
func (g Game) WasPossible(maxRed, maxGreen, maxBlue uint8) bool {
	for _, draw := range g.Draws {
		if draw.Red > maxRed || draw.Green > maxGreen || draw.Blue > maxBlue {
			return false
		}
	}

	return true
}

// MinimumBagContents returns the fewest cubes of each color that must have
// been in the bag for every draw in this game to be possible.
func (g Game) MinimumBagContents() Draw {
	var minimum Draw
	for _, draw := range g.Draws {
		minimum.Red = max(minimum.Red, draw.Red)
		minimum.Green = max(minimum.Green, draw.Green)
		minimum.Blue = max(minimum.Blue, draw.Blue)
	}

	return minimum
}

// Power returns the product of the minimum bag contents' red, green and blue
// counts.
func (g Game) Power() uint64 {
	minimum := g.MinimumBagContents()

	return uint64(minimum.Red) * uint64(minimum.Green) * uint64(minimum.Blue)
}
