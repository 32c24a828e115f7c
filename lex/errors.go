package lex

import (
	"fmt"
	"strings"
)

// ParseError reports input that the grammar or a record builder cannot
// accept: a character no token production matches, or a token in the wrong
// place.
type ParseError struct {
	Grammar string
	Pos     Position
	Lexical bool     // no token production matched at Pos
	Char    rune     // the rune at Pos, for lexical failures
	Found   string   // offending token text; empty at end of input
	Want    []string // token kinds that would have been accepted
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%s: ", e.Grammar, e.Pos)
	switch {
	case e.Lexical:
		fmt.Fprintf(&b, "unexpected character %q", e.Char)
	case e.Found == "":
		b.WriteString("unexpected end of input")
	default:
		fmt.Fprintf(&b, "unexpected %q", e.Found)
	}
	if len(e.Want) > 0 {
		fmt.Fprintf(&b, ", want %s", strings.Join(e.Want, " or "))
	}
	return b.String()
}

// OverflowError reports a digit run that does not fit the numeric width a
// record builder asked for.
type OverflowError struct {
	Pos  Position
	Text string
	Bits int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: %s overflows %d-bit integer", e.Pos, e.Text, e.Bits)
}
