package schematic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/lex"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func mustParse(t *testing.T, s string) *Schematic {
	t.Helper()
	sch, err := Parse([]byte(s))
	require.NoError(t, err)
	return sch
}

func values(ns []Number) []int {
	var vs []int
	for _, n := range ns {
		vs = append(vs, n.Value)
	}
	return vs
}

func TestParts(t *testing.T) {
	got, err := Part1([]byte(example))
	require.NoError(t, err)
	assert.Equal(t, 4361, got)

	got, err = Part2([]byte(example))
	require.NoError(t, err)
	assert.Equal(t, 467835, got)
}

func TestSamples(t *testing.T) {
	d, ok := aoc.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, "Gear Ratios", d.Title)
	for part := 1; part <= 2; part++ {
		n, err := d.CheckSamples(part)
		require.NoError(t, err, "part %d", part)
		assert.Equal(t, 1, n, "part %d", part)
	}
}

func TestTwoLines(t *testing.T) {
	sch := mustParse(t, "467..114..\n...*......")
	require.Len(t, sch.Numbers, 2)
	assert.Equal(t, Number{Value: 467, Line: 1, Start: 1, End: 3}, sch.Numbers[0])
	assert.Equal(t, Number{Value: 114, Line: 1, Start: 6, End: 8}, sch.Numbers[1])
	assert.Equal(t, []Symbol{{Char: '*', Line: 2, Column: 4}}, sch.Symbols())
	assert.Equal(t, []int{467}, values(sch.Active()))
	assert.Equal(t, 467, sch.PartNumberSum())
}

func TestBoundary(t *testing.T) {
	n := Number{Value: 467, Line: 1, Start: 1, End: 3}
	b := n.Boundary()
	assert.Len(t, b, 12)
	assert.Contains(t, b, aoc.Pt{X: 0, Y: 0})
	assert.Contains(t, b, aoc.Pt{X: 4, Y: 2})
	assert.Contains(t, b, aoc.Pt{X: 0, Y: 1})
	for _, p := range b {
		assert.False(t, n.Occupies(p), "%v is inside the number", p)
	}

	mid := Number{Value: 5, Line: 4, Start: 7, End: 7}
	assert.Len(t, mid.Boundary(), 8)
}

func TestActiveStrategiesAgree(t *testing.T) {
	for _, in := range []string{
		example,
		"",
		"....\n",
		"1*1\n",
		"12.\n..#\n34.\n",
		"#..\n.5.\n..#\n",
	} {
		sch := mustParse(t, in)
		assert.Equal(t, sch.Active(), sch.ActiveBySymbol(), "input %q", in)
	}
}

func TestNumberCountsOnce(t *testing.T) {
	sch := mustParse(t, "#.#\n.7.\n#.#\n")
	assert.Equal(t, []int{7}, values(sch.Active()))
	assert.Equal(t, []int{7}, values(sch.ActiveBySymbol()))
	assert.Equal(t, 7, sch.PartNumberSum())
}

func TestGearNeedsExactlyTwo(t *testing.T) {
	assert.Equal(t, 0, mustParse(t, "2*\n").GearRatioSum())
	assert.Equal(t, 6, mustParse(t, "2*3\n").GearRatioSum())
	assert.Equal(t, 0, mustParse(t, "2*3\n.4.\n").GearRatioSum())
	// Only '*' is a gear.
	assert.Equal(t, 0, mustParse(t, "2#3\n").GearRatioSum())
	// One long number touching the star twice is still one number.
	assert.Equal(t, 0, mustParse(t, "123\n.*.\n").GearRatioSum())
}

func TestLookups(t *testing.T) {
	sch := mustParse(t, example)

	n, ok := sch.NumberAt(aoc.Pt{X: 7, Y: 3})
	require.True(t, ok)
	assert.Equal(t, 633, n.Value)
	_, ok = sch.NumberAt(aoc.Pt{X: 1, Y: 2})
	assert.False(t, ok)

	sym, ok := sch.SymbolAt(aoc.Pt{X: 4, Y: 9})
	require.True(t, ok)
	assert.Equal(t, '$', sym.Char)
	assert.Len(t, sch.Symbols(), 6)
}

func TestEvaluateTwice(t *testing.T) {
	sch := mustParse(t, example)
	assert.Equal(t, sch.PartNumberSum(), sch.PartNumberSum())
	assert.Equal(t, sch.GearRatioSum(), sch.GearRatioSum())
	assert.Equal(t, sch.Active(), sch.Active())
}

func TestCRLF(t *testing.T) {
	sch := mustParse(t, strings.ReplaceAll(example, "\n", "\r\n"))
	assert.Equal(t, 4361, sch.PartNumberSum())
}

func TestOverflow(t *testing.T) {
	_, err := Parse([]byte("..99999999999*\n"))
	var oe *lex.OverflowError
	require.True(t, errors.As(err, &oe), "got %v", err)
	assert.Equal(t, "99999999999", oe.Text)
	assert.Equal(t, 32, oe.Bits)
	assert.Equal(t, lex.Position{Offset: 2, Line: 1, Column: 3}, oe.Pos)
}

func TestUnknownCharacter(t *testing.T) {
	_, err := Parse([]byte("12.\n.a.\n"))
	var pe *lex.ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, 'a', pe.Char)
	assert.Equal(t, "2:2", pe.Pos.String())
	assert.Equal(t, "schematic", pe.Grammar)
}

func TestNewRecord(t *testing.T) {
	_, err := NewRecord(lex.Span{Kind: "Filler", Text: "."})
	assert.True(t, errors.IsAssertionFailure(err))
}

func TestBuildRejectsOverlap(t *testing.T) {
	spans := func(yield func(lex.Span, error) bool) {
		for _, s := range []lex.Span{
			{Kind: "Number", Text: "12", Pos: lex.Position{Line: 1, Column: 1}, End: lex.Position{Line: 1, Column: 3}},
			{Kind: "Number", Text: "34", Pos: lex.Position{Line: 1, Column: 2}, End: lex.Position{Line: 1, Column: 4}},
		} {
			if !yield(s, nil) {
				return
			}
		}
	}
	_, err := Build(spans)
	assert.True(t, errors.IsAssertionFailure(err), "got %v", err)
}
