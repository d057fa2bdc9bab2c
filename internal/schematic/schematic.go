// Package schematic analyzes engine-schematic grids (day 3): it locates
// numeric tokens that qualify as part numbers through symbol adjacency, and
// the gear symbols sitting between exactly two of them.
//
// All adjacency math happens in logical character offsets so that multi-byte
// encoded characters earlier in a line cannot shift a token against its
// neighbor lines. Byte offsets are retained on the results for traceability.
package schematic

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	m "github.com/RAnders00/advent-of-code-2023/internal/model"
)

// numberPattern matches maximal runs of decimal digits. Compiled once and
// reused across every line scan.
var numberPattern = regexp.MustCompile(`[0-9]+`)

// PartNumber is a numeric token with at least one adjacent symbol.
type PartNumber struct {
	Value   uint64
	LineIdx int
	// ByteSpan is the token's range in terms of bytes of the raw line.
	ByteSpan m.Span
	// CharSpan is the token's range in terms of logical characters.
	CharSpan m.CharSpan
}

// IsNeighboringChar reports whether the character at (lineIdx, charIdx)
// touches this part number. Diagonal neighbors are included. charIdx counts
// logical characters, not bytes.
func (p PartNumber) IsNeighboringChar(lineIdx, charIdx int) bool {
	sameLine := lineIdx == p.LineIdx
	lineAbove := lineIdx+1 == p.LineIdx
	lineBelow := lineIdx-1 == p.LineIdx

	toLeft := sameLine && charIdx == p.CharSpan.Start-1
	toRight := sameLine && charIdx == p.CharSpan.End
	above := lineAbove && p.CharSpan.GrownByOne().Contains(charIdx)
	below := lineBelow && p.CharSpan.GrownByOne().Contains(charIdx)

	return toLeft || toRight || above || below
}

// Gear is a '*' symbol with exactly two neighboring part numbers.
type Gear struct {
	LineIdx int
	// ByteIdx is the symbol's position in terms of bytes of the raw line.
	ByteIdx int
	// CharIdx is the symbol's position in terms of logical characters.
	CharIdx int
	// Neighbors holds the two part numbers adjacent to this symbol, in the
	// order they were discovered.
	Neighbors [2]PartNumber
}

// Ratio returns the product of the two neighboring part numbers.
func (g Gear) Ratio() uint64 {
	return g.Neighbors[0].Value * g.Neighbors[1].Value
}

// Schematic is the result of parsing an engine schematic. Both collections
// are ordered line-major, then left to right. A parsed Schematic is never
// mutated and is safe to share.
type Schematic struct {
	PartNumbers []PartNumber
	Gears       []Gear
}

// PartNumberSum returns the total of all part number values.
func (s Schematic) PartNumberSum() uint64 {
	var sum uint64
	for _, part := range s.PartNumbers {
		sum += part.Value
	}

	return sum
}

// GearRatioSum returns the total of all gear ratios.
func (s Schematic) GearRatioSum() uint64 {
	var sum uint64
	for _, gear := range s.Gears {
		sum += gear.Ratio()
	}

	return sum
}

// MalformedNumberError reports a digit run that does not fit the numeric
// width of a part number.
type MalformedNumberError struct {
	Line string
	Text string
	Err  error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("while parsing line %q: %q is not a valid unsigned 64 bit integer", e.Line, e.Text)
}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}

// Parse analyzes a schematic document.
//
// A number with at least one symbol around it (diagonals included) is a part
// number; a symbol is any character that is not an ASCII digit or a dot. A
// '*' with exactly two neighboring part numbers is a gear.
//
// Parsing fails only when a digit run overflows an unsigned 64 bit integer;
// the whole document is rejected in that case.
func Parse(document string) (Schematic, error) {
	lines := Lines(document)

	var partNumbers []PartNumber

	for lineIdx, line := range lines {
		for _, loc := range numberPattern.FindAllStringIndex(line, -1) {
			byteSpan := m.Span{Start: loc[0], End: loc[1]}
			text := line[byteSpan.Start:byteSpan.End]

			value, err := strconv.ParseUint(text, 10, 64)
			if err != nil {
				return Schematic{}, &MalformedNumberError{Line: line, Text: text, Err: err}
			}

			// The scanner yields byte offsets; convert them to character
			// offsets before any cross-line comparison.
			charSpan := m.CharSpanFromBytes(line, byteSpan)

			hasAdjacentSymbol := symbolLeftOf(line, byteSpan) ||
				symbolRightOf(line, byteSpan) ||
				symbolInLine(lines, lineIdx-1, charSpan) ||
				symbolInLine(lines, lineIdx+1, charSpan)

			if hasAdjacentSymbol {
				partNumbers = append(partNumbers, PartNumber{
					Value:    value,
					LineIdx:  lineIdx,
					ByteSpan: byteSpan,
					CharSpan: charSpan,
				})
			}
		}
	}

	var gears []Gear

	for lineIdx, line := range lines {
		for byteIdx, r := range line {
			if r != '*' {
				continue
			}

			// This is a potential gear; it qualifies only with exactly two
			// neighboring part numbers.
			charIdx := m.CharIndexOfByte(line, byteIdx)

			var neighbors []PartNumber
			for _, part := range partNumbers {
				if part.IsNeighboringChar(lineIdx, charIdx) {
					neighbors = append(neighbors, part)
				}
			}

			if len(neighbors) != 2 {
				continue
			}

			gears = append(gears, Gear{
				LineIdx:   lineIdx,
				ByteIdx:   byteIdx,
				CharIdx:   charIdx,
				Neighbors: [2]PartNumber{neighbors[0], neighbors[1]},
			})
		}
	}

	return Schematic{PartNumbers: partNumbers, Gears: gears}, nil
}

// Lines splits a document the way Parse indexes it: interior empty lines keep
// their index so above/below lookups stay aligned, a trailing newline does
// not produce a final empty line, and Windows line endings are tolerated.
func Lines(document string) []string {
	lines := strings.Split(document, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}

// isSymbol reports whether r counts as a schematic symbol: any character that
// is not an ASCII digit and not a dot.
func isSymbol(r rune) bool {
	return (r < '0' || r > '9') && r != '.'
}

// symbolLeftOf reports whether the character immediately before the byte span
// is a symbol. A span at the start of the line has no left neighbor.
func symbolLeftOf(line string, span m.Span) bool {
	r, size := utf8.DecodeLastRuneInString(line[:span.Start])
	if size == 0 {
		return false
	}

	return isSymbol(r)
}

// symbolRightOf reports whether the character immediately after the byte span
// is a symbol. A span at the end of the line has no right neighbor.
func symbolRightOf(line string, span m.Span) bool {
	r, size := utf8.DecodeRuneInString(line[span.End:])
	if size == 0 {
		return false
	}

	return isSymbol(r)
}

// symbolInLine reports whether lines[lineIdx] contains a symbol within span
// grown by one character on each side. Line indices outside the document and
// columns beyond the line's own length mean "no symbol", never an error.
func symbolInLine(lines []string, lineIdx int, span m.CharSpan) bool {
	if lineIdx < 0 || lineIdx >= len(lines) {
		return false
	}

	widened := span.GrownByOne()

	charIdx := 0
	for _, r := range lines[lineIdx] {
		if charIdx >= widened.End {
			break
		}
		if charIdx >= widened.Start && isSymbol(r) {
			return true
		}
		charIdx++
	}

	return false
}
