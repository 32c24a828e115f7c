// Package schematic solves day 3: numbers in an engine schematic count as
// part numbers when a symbol touches them, diagonals included.
package schematic

import (
	"iter"
	"slices"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/internal/logger"
	"github.com/aoclive/aoc/lex"
)

// Schematic is the set of records from one input, indexed by cell.
type Schematic struct {
	Numbers  []Number // input order
	symbols  map[aoc.Pt]Symbol
	numberAt map[aoc.Pt]int // cell -> index into Numbers
}

// Parse tokenizes input and builds its schematic.
func Parse(input []byte) (*Schematic, error) {
	return Build(Rules.Lexer(input).All())
}

// Build collects records from a span stream.
func Build(spans iter.Seq2[lex.Span, error]) (*Schematic, error) {
	s := &Schematic{
		symbols:  make(map[aoc.Pt]Symbol),
		numberAt: make(map[aoc.Pt]int),
	}
	for span, err := range spans {
		if err != nil {
			return nil, err
		}
		rec, err := NewRecord(span)
		if err != nil {
			return nil, err
		}
		if err := s.add(rec); err != nil {
			return nil, err
		}
	}
	logger.Logger.Debugw("schematic built", "numbers", len(s.Numbers), "symbols", len(s.symbols))
	return s, nil
}

func (s *Schematic) add(rec Record) error {
	switch r := rec.(type) {
	case Number:
		i := len(s.Numbers)
		for x := r.Start; x <= r.End; x++ {
			p := aoc.Pt{X: x, Y: r.Line}
			if j, taken := s.numberAt[p]; taken {
				return errors.AssertionFailedf("numbers %v and %v overlap at %v", s.Numbers[j], r, p)
			}
			s.numberAt[p] = i
		}
		s.Numbers = append(s.Numbers, r)
	case Symbol:
		s.symbols[r.Pt()] = r
	}
	return nil
}

// Symbols returns the symbols in reading order.
func (s *Schematic) Symbols() []Symbol {
	out := make([]Symbol, 0, len(s.symbols))
	for _, sym := range s.symbols {
		out = append(out, sym)
	}
	slices.SortFunc(out, func(a, b Symbol) int {
		if a.Line != b.Line {
			return a.Line - b.Line
		}
		return a.Column - b.Column
	})
	return out
}

// SymbolAt returns the symbol at p, if any.
func (s *Schematic) SymbolAt(p aoc.Pt) (Symbol, bool) {
	sym, ok := s.symbols[p]
	return sym, ok
}

// NumberAt returns the number covering p, if any.
func (s *Schematic) NumberAt(p aoc.Pt) (Number, bool) {
	i, ok := s.numberAt[p]
	if !ok {
		return Number{}, false
	}
	return s.Numbers[i], true
}

// Active returns the numbers with at least one symbol on their boundary,
// in input order.
func (s *Schematic) Active() []Number {
	var active []Number
	for _, n := range s.Numbers {
		if slices.ContainsFunc(n.Boundary(), func(p aoc.Pt) bool {
			_, ok := s.symbols[p]
			return ok
		}) {
			active = append(active, n)
		}
	}
	return active
}

// ActiveBySymbol finds the same numbers as Active, starting from each
// symbol's neighbors instead of each number's boundary.
func (s *Schematic) ActiveBySymbol() []Number {
	seen := make(map[int]bool)
	for p := range s.symbols {
		for _, i := range s.adjacent(p) {
			seen[i] = true
		}
	}
	idx := make([]int, 0, len(seen))
	for i := range seen {
		idx = append(idx, i)
	}
	slices.Sort(idx)

	var active []Number
	for _, i := range idx {
		active = append(active, s.Numbers[i])
	}
	return active
}

// adjacent returns the indexes of the distinct numbers touching p.
func (s *Schematic) adjacent(p aoc.Pt) []int {
	var idx []int
	p.ForNeighbors(func(q aoc.Pt) bool {
		if i, ok := s.numberAt[q]; ok && !slices.Contains(idx, i) {
			idx = append(idx, i)
		}
		return true
	})
	return idx
}

// PartNumberSum is the sum of all active numbers.
func (s *Schematic) PartNumberSum() int {
	sum := 0
	for _, n := range s.Active() {
		sum += n.Value
	}
	return sum
}

// GearRatioSum adds, for every '*' touching exactly two numbers, the
// product of those numbers.
func (s *Schematic) GearRatioSum() int {
	sum := 0
	for p, sym := range s.symbols {
		if sym.Char != '*' {
			continue
		}
		if idx := s.adjacent(p); len(idx) == 2 {
			sum += s.Numbers[idx[0]].Value * s.Numbers[idx[1]].Value
		}
	}
	return sum
}
