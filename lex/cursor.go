package lex

import (
	"io"
	"slices"

	"github.com/aoclive/aoc/internal/errors"
)

// Cursor reads spans with one token of lookahead. Record builders for
// line-structured inputs walk their grammar with it.
type Cursor struct {
	lx     *Lexer
	tok    Span
	err    error
	peeked bool
}

// Peek returns the next span without consuming it. At end of input it
// returns io.EOF.
func (c *Cursor) Peek() (Span, error) {
	if !c.peeked {
		c.tok, c.err = c.lx.Next()
		c.peeked = true
	}
	return c.tok, c.err
}

// Next consumes and returns the next span.
func (c *Cursor) Next() (Span, error) {
	s, err := c.Peek()
	if err == nil {
		c.peeked = false
	}
	return s, err
}

// Is reports whether the next span has one of the given kinds.
func (c *Cursor) Is(kinds ...string) bool {
	s, err := c.Peek()
	return err == nil && slices.Contains(kinds, s.Kind)
}

// Done reports whether the input is exhausted.
func (c *Cursor) Done() bool {
	_, err := c.Peek()
	return err == io.EOF
}

// Accept consumes the next span if it has the given kind.
func (c *Cursor) Accept(kind string) (Span, bool) {
	if !c.Is(kind) {
		return Span{}, false
	}
	s, _ := c.Next()
	return s, true
}

// Skip consumes any run of spans of the given kind and reports how many
// it consumed.
func (c *Cursor) Skip(kind string) int {
	n := 0
	for c.Is(kind) {
		c.peeked = false
		n++
	}
	return n
}

// Expect consumes the next span, which must have one of the given kinds.
func (c *Cursor) Expect(kinds ...string) (Span, error) {
	s, err := c.Peek()
	if err == io.EOF {
		return Span{}, errors.WithStack(&ParseError{
			Grammar: c.lx.rules.name,
			Pos:     c.lx.Position(),
			Want:    kinds,
		})
	}
	if err != nil {
		return Span{}, err
	}
	if !slices.Contains(kinds, s.Kind) {
		return Span{}, c.Unexpected(s, kinds...)
	}
	c.peeked = false
	return s, nil
}

// Unexpected builds the error for a span found where one of want belongs.
func (c *Cursor) Unexpected(s Span, want ...string) error {
	return errors.WithStack(&ParseError{
		Grammar: c.lx.rules.name,
		Pos:     s.Pos,
		Found:   s.Text,
		Want:    want,
	})
}

// Ints consumes a run of spans of the given kind and parses each as an
// integer of the given width.
func (c *Cursor) Ints(kind string, bits int) ([]int, error) {
	var out []int
	for c.Is(kind) {
		s, _ := c.Next()
		v, err := Int(s, bits)
		if err != nil {
			return nil, err
		}
		out = append(out, int(v))
	}
	if _, err := c.Peek(); err != nil && err != io.EOF {
		return nil, err
	}
	return out, nil
}

// Err returns a lexical error pending at the cursor, if any.
func (c *Cursor) Err() error {
	if _, err := c.Peek(); err != nil && err != io.EOF {
		return err
	}
	return nil
}
