// Package trebuchet recovers calibration values from scrambled lines of text
// (day 1). Each line's value is the first digit concatenated with the last.
package trebuchet

import (
	"fmt"
	"strconv"
	"strings"
)

// DigitAlgorithm finds the first and last digit in a line. ok is false when
// the line does not contain a single digit.
type DigitAlgorithm func(line string) (first, last uint8, ok bool)

// FirstAndLastDecimal returns the first and last ASCII digit between '1' and
// '9' found in the input, ignoring zero and every other character. If only a
// single digit is found, it is returned as both first and last.
func FirstAndLastDecimal(input string) (uint8, uint8, bool) {
	var first, last uint8
	found := false

	for _, r := range input {
		if r < '1' || r > '9' {
			continue
		}

		digit := uint8(r - '0')
		if !found {
			first = digit
			found = true
		}
		last = digit
	}

	return first, last, found
}

// spelledDigits holds the spelled-out forms additionally accepted by
// FirstAndLastDecimalOrSpelled, indexed by digit minus one.
var spelledDigits = [9]string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// FirstAndLastDecimalOrSpelled behaves like FirstAndLastDecimal but also
// accepts spelled-out digits between "one" and "nine". Overlapping words each
// count ("eightwo" contains both an eight and a two).
func FirstAndLastDecimalOrSpelled(input string) (uint8, uint8, bool) {
	var firstDigit, lastDigit uint8
	firstIdx, lastIdx := -1, -1

	for i, spelled := range spelledDigits {
		digit := uint8(i + 1)
		ascii := strconv.Itoa(i + 1)

		for _, idx := range [2]int{strings.Index(input, spelled), strings.Index(input, ascii)} {
			if idx < 0 {
				continue
			}
			if firstIdx < 0 || idx < firstIdx {
				firstIdx, firstDigit = idx, digit
			}
		}

		for _, idx := range [2]int{strings.LastIndex(input, spelled), strings.LastIndex(input, ascii)} {
			if idx > lastIdx {
				lastIdx, lastDigit = idx, digit
			}
		}
	}

	if firstIdx < 0 {
		return 0, 0, false
	}

	return firstDigit, lastDigit, true
}

// concatenateDigits combines a first and last digit into a two-digit value,
// e.g. 4 and 7 become 47.
func concatenateDigits(first, last uint8) uint8 {
	return first*10 + last
}

// SumCalibrationValues splits the input into lines and runs the given digit
// algorithm on each. The first and last digits of every line concatenate and
// the results are summed up. Empty lines are skipped; a non-empty line
// without any digits is an error.
func SumCalibrationValues(input string, algorithm DigitAlgorithm) (uint64, error) {
	var sum uint64

	for lineIdx, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		first, last, ok := algorithm(line)
		if !ok {
			return 0, fmt.Errorf("line %d (contents: %q) does not contain any digits", lineIdx+1, line)
		}

		sum += uint64(concatenateDigits(first, last))
	}

	return sum, nil
}
