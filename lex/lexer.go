package lex

import (
	"bytes"
	"io"
	"iter"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/aoclive/aoc/internal/errors"
)

// noMatch is the matcher's failure result; zero is a valid (empty) match.
const noMatch = -1

type memoKey struct {
	name   string
	offset int
}

// Lexer produces spans from one input. It is not safe for concurrent use.
type Lexer struct {
	rules    *Rules
	input    []byte
	pos      Position
	memo     map[memoKey]int // match length per production and offset; noMatch when it failed
	visiting map[memoKey]bool
}

// Position returns the position of the next unread rune.
func (l *Lexer) Position() Position { return l.pos }

// Next returns the next non-filler span, or io.EOF once the input is
// consumed. A rune that starts no token yields a *ParseError.
func (l *Lexer) Next() (Span, error) {
	for {
		if l.pos.Offset >= len(l.input) {
			return Span{}, io.EOF
		}

		kind, n := l.longest()
		if n <= 0 {
			r, _ := utf8.DecodeRune(l.input[l.pos.Offset:])
			return Span{}, errors.WithStack(&ParseError{
				Grammar: l.rules.name,
				Pos:     l.pos,
				Lexical: true,
				Char:    r,
			})
		}

		start := l.pos
		text := l.input[start.Offset : start.Offset+n]
		l.advance(text)
		if l.rules.filler[kind] {
			continue
		}
		return Span{Kind: kind, Text: string(text), Pos: start, End: l.pos}, nil
	}
}

// All returns the remaining spans as a sequence. An error is yielded once,
// with a zero Span, and ends the sequence.
func (l *Lexer) All() iter.Seq2[Span, error] {
	return func(yield func(Span, error) bool) {
		for {
			s, err := l.Next()
			if err == io.EOF {
				return
			}
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}

// longest tries every token kind at the current offset. Ties keep the
// earlier declared kind.
func (l *Lexer) longest() (kind string, n int) {
	clear(l.memo)
	n = noMatch
	for _, k := range l.rules.kinds {
		clear(l.visiting)
		if m := l.matchName(k, l.pos.Offset); m > n {
			kind, n = k, m
		}
	}
	return kind, n
}

func (l *Lexer) advance(text []byte) {
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]
		l.pos.Offset += size
		if r == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		} else {
			l.pos.Column++
		}
	}
}

// match returns the number of bytes expr matches at offset, or noMatch.
// Repetitions and alternatives are greedy and do not backtrack.
func (l *Lexer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		if bytes.HasPrefix(l.input[offset:], []byte(e.String)) {
			return len(e.String)
		}
		return noMatch

	case *ebnf.Range:
		if offset >= len(l.input) {
			return noMatch
		}
		r, size := utf8.DecodeRune(l.input[offset:])
		lo, _ := utf8.DecodeRuneInString(e.Begin.String)
		hi, _ := utf8.DecodeRuneInString(e.End.String)
		if r >= lo && r <= hi {
			return size
		}
		return noMatch

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.match(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := l.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Option:
		if n := l.match(e.Body, offset); n != noMatch {
			return n
		}
		return 0

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Name:
		return l.matchName(e.String, offset)

	default:
		return noMatch
	}
}

// matchName matches a production with memoization. A production revisited
// at the same offset (left recursion) fails instead of looping.
func (l *Lexer) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if n, ok := l.memo[key]; ok {
		return n
	}
	if l.visiting[key] {
		return noMatch
	}
	prod, ok := l.rules.grammar[name]
	if !ok {
		l.memo[key] = noMatch
		return noMatch
	}

	l.visiting[key] = true
	n := l.match(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = n
	return n
}
