package schematic

import (
	"unicode/utf8"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/lex"
)

// numberBits is the width part numbers must fit in.
const numberBits = 32

// Record is either a Number or a Symbol.
type Record interface {
	record()
}

// Number is a run of digits. Start and End are the columns of its first
// and last digit.
type Number struct {
	Value int
	Line  int
	Start int
	End   int
}

// Symbol is a single non-digit, non-filler character.
type Symbol struct {
	Char   rune
	Line   int
	Column int
}

func (Number) record() {}
func (Symbol) record() {}

// Pt is the cell a symbol occupies, with X as the column and Y as the line.
func (s Symbol) Pt() aoc.Pt { return aoc.Pt{X: s.Column, Y: s.Line} }

// Occupies reports whether the number covers the cell p.
func (n Number) Occupies(p aoc.Pt) bool {
	return p.Y == n.Line && p.X >= n.Start && p.X <= n.End
}

// Boundary returns the cells around the number, including diagonals.
// Rows and columns below the number are clamped at zero instead of going
// negative, so a number on line 1 or at column 1 borders line or column 0.
func (n Number) Boundary() []aoc.Pt {
	var cells []aoc.Pt
	for y := aoc.SatSub(n.Line, 1); y <= n.Line+1; y++ {
		for x := aoc.SatSub(n.Start, 1); x <= n.End+1; x++ {
			p := aoc.Pt{X: x, Y: y}
			if !n.Occupies(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// NewRecord builds the record for one span of the schematic grammar.
func NewRecord(s lex.Span) (Record, error) {
	switch s.Kind {
	case "Number":
		v, err := lex.Int(s, numberBits)
		if err != nil {
			return nil, err
		}
		return Number{
			Value: int(v),
			Line:  s.Pos.Line,
			Start: s.Pos.Column,
			End:   s.LastColumn(),
		}, nil
	case "Symbol":
		r, size := utf8.DecodeRuneInString(s.Text)
		if size != len(s.Text) {
			return nil, errors.AssertionFailedf("symbol span %v is not a single character", s)
		}
		return Symbol{Char: r, Line: s.Pos.Line, Column: s.Pos.Column}, nil
	default:
		return nil, errors.AssertionFailedf("unknown span kind %q", s.Kind)
	}
}
