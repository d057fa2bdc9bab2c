package model

import "unicode/utf8"

// Span is a half-open byte range [Start, End) within a single line.
type Span struct {
	Start int // inclusive
	End   int // exclusive
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// CharSpan is a half-open range [Start, End) of logical character offsets,
// counted the way a rune iteration over the line counts them. It diverges from
// the byte span of the same text whenever a multi-byte encoded character
// appears before or inside the spanned text.
type CharSpan struct {
	Start int // inclusive
	End   int // exclusive
}

// Len returns the number of characters covered by the span.
func (s CharSpan) Len() int {
	return s.End - s.Start
}

// Contains reports whether idx falls within the half-open range.
func (s CharSpan) Contains(idx int) bool {
	return idx >= s.Start && idx < s.End
}

// GrownByOne widens the range by one character on each side. The lower bound
// saturates at zero.
func (s CharSpan) GrownByOne() CharSpan {
	start := s.Start - 1
	if start < 0 {
		start = 0
	}

	return CharSpan{Start: start, End: s.End + 1}
}

// CharIndexOfByte converts byteIdx, a byte offset into line, into the number
// of characters preceding it.
func CharIndexOfByte(line string, byteIdx int) int {
	return utf8.RuneCountInString(line[:byteIdx])
}

// CharSpanFromBytes converts a byte span referring to a substring of line into
// the equivalent character-offset span.
func CharSpanFromBytes(line string, bytes Span) CharSpan {
	return CharSpan{
		Start: CharIndexOfByte(line, bytes.Start),
		End:   CharIndexOfByte(line, bytes.End),
	}
}
