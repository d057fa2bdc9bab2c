// Package cubegame parses and evaluates games of draw-the-cubes (day 2).
package cubegame

import (
	"fmt"
	"strconv"
	"strings"
)

// Draw is one subset of cubes revealed from the bag.
type Draw struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// ParseDraw parses a string like "3 blue, 4 red", "2 green" or
// "1 red, 2 green, 6 blue". Every color may appear at most once and zero
// counts are rejected.
func ParseDraw(drawStr string) (Draw, error) {
	var draw Draw

	// single is e.g. "3 blue", "1 red" or "14 green".
	for _, single := range strings.Split(drawStr, ", ") {
		numStr, color, found := strings.Cut(single, " ")
		if !found {
			return Draw{}, fmt.Errorf("while parsing draw %q: no space between number and color in %q", drawStr, single)
		}

		num, err := strconv.ParseUint(numStr, 10, 8)
		if err != nil {
			return Draw{}, fmt.Errorf("while parsing draw %q: in single draw %q: number %q is not valid: %w", drawStr, single, numStr, err)
		}
		if num == 0 {
			return Draw{}, fmt.Errorf("while parsing draw %q: in single draw %q: cannot specify that zero were drawn", drawStr, single)
		}

		var field *uint8
		switch color {
		case "red":
			field = &draw.Red
		case "green":
			field = &draw.Green
		case "blue":
			field = &draw.Blue
		default:
			return Draw{}, fmt.Errorf("while parsing draw %q: in single draw %q: color %q is not valid", drawStr, single, color)
		}

		if *field != 0 {
			return Draw{}, fmt.Errorf("while parsing draw %q: multiple instances of %s draw", drawStr, color)
		}
		*field = uint8(num)
	}

	if draw.Red == 0 && draw.Green == 0 && draw.Blue == 0 {
		return Draw{}, fmt.Errorf("while parsing draw %q: no cubes were drawn (empty string)", drawStr)
	}

	return draw, nil
}
