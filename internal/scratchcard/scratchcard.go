// Package scratchcard scores scratchcards (day 4): points from matching
// numbers, and the card-copy cascade of part 2.
package scratchcard

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	// Capture group 1 = winning numbers, capture group 2 = our numbers.
	cardFormat = regexp.MustCompile(`^Card +[0-9]+: +([0-9 ]+?) +\| +([0-9 ]+)$`)

	anyNumberOfSpaces = regexp.MustCompile(` +`)
)

// Scratchcard is one card: the winning numbers, the numbers we have, and how
// many copies of the card we hold.
type Scratchcard struct {
	Winning map[uint8]struct{}
	Ours    map[uint8]struct{}

	// Copies starts at 1; won copies accumulate during PropagateCopies.
	Copies uint64
}

// Parse parses a line like "Card 1: 41 48 83 86 17 | 83 86  6 31 17".
// Repeated spaces between numbers are tolerated.
func Parse(input string) (Scratchcard, error) {
	captures := cardFormat.FindStringSubmatch(input)
	if captures == nil {
		return Scratchcard{}, fmt.Errorf("invalid scratchcard format: %s", input)
	}

	winning, err := parseNumberSet(captures[1])
	if err != nil {
		return Scratchcard{}, err
	}

	ours, err := parseNumberSet(captures[2])
	if err != nil {
		return Scratchcard{}, err
	}

	return Scratchcard{Winning: winning, Ours: ours, Copies: 1}, nil
}

func parseNumberSet(input string) (map[uint8]struct{}, error) {
	set := make(map[uint8]struct{})

	for _, numStr := range anyNumberOfSpaces.Split(input, -1) {
		num, err := strconv.ParseUint(numStr, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", numStr, err)
		}
		set[uint8(num)] = struct{}{}
	}

	return set, nil
}

// Matches returns how many of our numbers are winning numbers.
func (s Scratchcard) Matches() int {
	matches := 0
	for num := range s.Ours {
		if _, ok := s.Winning[num]; ok {
			matches++
		}
	}

	return matches
}

// Points returns the card's score: 2^(matches-1), or zero without a match.
func (s Scratchcard) Points() (uint64, error) {
	matches := s.Matches()
	switch {
	case matches == 0:
		return 0, nil
	case matches > 64:
		return 0, fmt.Errorf("overflow while trying to calculate points for %d wins", matches)
	default:
		return 1 << (matches - 1), nil
	}
}

// TotalPoints sums the points of all cards.
func TotalPoints(cards []Scratchcard) (uint64, error) {
	var total uint64
	for _, card := range cards {
		points, err := card.Points()
		if err != nil {
			return 0, err
		}
		total += points
	}

	return total, nil
}

// PropagateCopies applies the part 2 rule in place: for each copy of a card
// with N matches, one copy of each of the next N cards is won.
func PropagateCopies(cards []Scratchcard) {
	for idx := range cards {
		matches := cards[idx].Matches()
		copies := cards[idx].Copies

		for offset := 1; offset <= matches && idx+offset < len(cards); offset++ {
			cards[idx+offset].Copies += copies
		}
	}
}

// TotalCards sums the copy counts of all cards.
func TotalCards(cards []Scratchcard) uint64 {
	var total uint64
	for _, card := range cards {
		total += card.Copies
	}

	return total
}
