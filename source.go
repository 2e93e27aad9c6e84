package ruler

import "bytes"

// Source gives row-wise access to the text a tree was parsed from. Anchors
// need it to find the first non-blank column of a row (the "beginning of
// line" a parent starting mid-line is normalized to), and blank-line
// detection drives the no-node fallback rule.
type Source struct {
	lines [][]byte
}

// NewSource splits src into lines. The split keeps an empty final line for
// text ending in a newline, matching how editors address rows.
func NewSource(src []byte) *Source {
	return &Source{lines: bytes.Split(src, []byte{'\n'})}
}

// LineCount returns the number of rows.
func (s *Source) LineCount() int {
	return len(s.lines)
}

// Line returns the raw bytes of a row, without the trailing newline.
// Out-of-range rows return nil.
func (s *Source) Line(row int) []byte {
	if row < 0 || row >= len(s.lines) {
		return nil
	}
	return s.lines[row]
}

// BOL returns the column of the first non-blank character on a row, or -1
// for blank (or out-of-range) rows. Columns count bytes; a tab counts as one.
func (s *Source) BOL(row int) int {
	line := s.Line(row)
	for i, b := range line {
		if b != ' ' && b != '\t' {
			return i
		}
	}
	return -1
}

// Blank reports whether the row holds only whitespace.
func (s *Source) Blank(row int) bool {
	return s.BOL(row) < 0
}
