package jsonlex

import (
	"fmt"
	"strings"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColOf reports the line and column of the given byte offset in text.
func lineColOf(text string, offset int) LineCol {
	head := text[:min(offset, len(text))]
	return LineCol{
		Line:   strings.Count(head, "\n") + 1,
		Column: len(head) - (strings.LastIndexByte(head, '\n') + 1),
	}
}
