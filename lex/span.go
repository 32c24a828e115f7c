package lex

import "fmt"

// Position is a location in the input. Line and Column are 1-based and
// Column counts runes; Offset is the 0-based byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a contiguous run of input matched by one token production.
type Span struct {
	Kind string
	Text string
	Pos  Position // first rune
	End  Position // just past the last rune
}

func (s Span) String() string {
	return fmt.Sprintf("%s %s %q", s.Pos, s.Kind, s.Text)
}

// Len is the length of the span in bytes.
func (s Span) Len() int { return s.End.Offset - s.Pos.Offset }

// LastColumn is the column of the span's final rune. It is only meaningful
// for spans that do not cross a line break.
func (s Span) LastColumn() int { return s.End.Column - 1 }
