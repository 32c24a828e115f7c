// Package lex turns a declarative lexical rule set, written as an EBNF
// grammar, into a stream of positioned spans.
//
// Productions whose names start with an upper-case letter are token kinds;
// lower-case productions are helpers that only other productions use. The
// start production lists which kinds may appear and is what ebnf.Verify
// checks reachability from:
//
//	Schematic = { Number | Symbol | Filler } .
//	Number    = digit { digit } .
//	Symbol    = "*" | "#" | "+" | "$" .
//	Filler    = "." | "\n" .
//	digit     = "0" … "9" .
//
// At each position the longest match wins; equal lengths go to the kind
// declared first. Filler kinds are matched but never emitted.
package lex

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/aoclive/aoc/internal/errors"
)

// Rules is a compiled grammar. It is immutable and safe for concurrent use;
// each Lexer carries its own matching state.
type Rules struct {
	name    string
	grammar ebnf.Grammar
	start   string
	kinds   []string // token productions in declaration order
	filler  map[string]bool
}

// Compile parses and verifies src. filler names the token kinds to skip.
func Compile(name, src, start string, filler ...string) (*Rules, error) {
	grammar, err := ebnf.Parse(name, strings.NewReader(src))
	if err != nil {
		return nil, errors.Wrapf(err, "parse grammar %s", name)
	}
	if err := ebnf.Verify(grammar, start); err != nil {
		return nil, errors.Wrapf(err, "verify grammar %s", name)
	}

	r := &Rules{
		name:    name,
		grammar: grammar,
		start:   start,
		filler:  make(map[string]bool, len(filler)),
	}
	for prodName := range grammar {
		if prodName != start && isToken(prodName) {
			r.kinds = append(r.kinds, prodName)
		}
	}
	slices.SortFunc(r.kinds, func(a, b string) int {
		return grammar[a].Name.StringPos.Offset - grammar[b].Name.StringPos.Offset
	})

	for _, f := range filler {
		if !slices.Contains(r.kinds, f) {
			return nil, errors.Newf("grammar %s: filler %q is not a token production", name, f)
		}
		r.filler[f] = true
	}
	if len(r.kinds) == len(r.filler) {
		return nil, errors.Newf("grammar %s: no token productions besides filler", name)
	}
	return r, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// package-level grammars.
func MustCompile(name, src, start string, filler ...string) *Rules {
	r, err := Compile(name, src, start, filler...)
	if err != nil {
		panic(err)
	}
	return r
}

func isToken(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// Name is the grammar name used in error messages.
func (r *Rules) Name() string { return r.name }

// Kinds returns the emitted token kinds in priority order.
func (r *Rules) Kinds() []string {
	var kinds []string
	for _, k := range r.kinds {
		if !r.filler[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// IsFiller reports whether kind is skipped by the lexer.
func (r *Rules) IsFiller(kind string) bool { return r.filler[kind] }

// Lexer returns a lexer positioned at the start of input.
func (r *Rules) Lexer(input []byte) *Lexer {
	return &Lexer{
		rules:    r,
		input:    input,
		pos:      Position{Line: 1, Column: 1},
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// Tokenize returns every span of input.
func (r *Rules) Tokenize(input []byte) ([]Span, error) {
	var spans []Span
	for s, err := range r.Lexer(input).All() {
		if err != nil {
			return spans, err
		}
		spans = append(spans, s)
	}
	return spans, nil
}

// Cursor returns a one-token-lookahead reader over input.
func (r *Rules) Cursor(input []byte) *Cursor {
	return &Cursor{lx: r.Lexer(input)}
}
