// Package span tracks byte-offset ranges into a source buffer and converts
// them to line/column positions for diagnostics.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into a source buffer.
type Span struct {
	Start int
	End   int
}

// Zero returns a zero-length span positioned at off, used for synthetic
// layout tokens such as INDENT/DEDENT.
func Zero(off int) Span {
	return Span{Start: off, End: off}
}

// Len reports the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Slice returns the source bytes the span covers.
func (s Span) Slice(source string) string {
	if s.Start < 0 || s.End > len(source) || s.Start > s.End {
		return ""
	}
	return source[s.Start:s.End]
}

// Cover returns the smallest span enclosing both s and other.
func (s Span) Cover(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Point is a 1-based line/column position, used for user-facing output.
type Point struct {
	Line   int
	Column int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Table maps byte offsets in a source buffer to 1-based line/column
// positions. Lines are delimited by '\n'; a preceding '\r' is folded into
// the same line break, and a standalone '\r' also breaks a line.
type Table struct {
	source     string
	lineStarts []int
}

// NewTable builds a lookup table over source. Construction is O(n) in the
// length of source; lookups are O(log n).
func NewTable(source string) *Table {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(source) && source[i+1] == '\n' {
				continue // let the '\n' branch record the break
			}
			starts = append(starts, i+1)
		}
	}
	return &Table{source: source, lineStarts: starts}
}

// LineCount returns the number of logical lines in the source.
func (t *Table) LineCount() int {
	return len(t.lineStarts)
}

// Point converts a byte offset into a 1-based line/column position.
func (t *Table) Point(offset int) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.source) {
		offset = len(t.source)
	}
	line := t.lineForOffset(offset)
	return Point{Line: line + 1, Column: offset - t.lineStarts[line] + 1}
}

// lineForOffset returns the 0-based line index containing offset.
func (t *Table) lineForOffset(offset int) int {
	lo, hi := 0, len(t.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineText returns the raw text of the given 1-based line, excluding its
// terminator.
func (t *Table) LineText(line int) string {
	idx := line - 1
	if idx < 0 || idx >= len(t.lineStarts) {
		return ""
	}
	start := t.lineStarts[idx]
	end := len(t.source)
	if idx+1 < len(t.lineStarts) {
		end = t.lineStarts[idx+1]
	}
	text := t.source[start:end]
	for len(text) > 0 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r') {
		text = text[:len(text)-1]
	}
	return text
}
