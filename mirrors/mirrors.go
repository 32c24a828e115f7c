// Package mirrors solves day 13: find the line of reflection in each
// pattern of ash and rock, first exactly and then with one smudge.
package mirrors

import (
	_ "embed"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/internal/logger"
	"github.com/aoclive/aoc/lex"
)

var (
	//go:embed grammar.ebnf
	grammar string
	//go:embed sample.yaml
	samples []byte
)

var Rules = lex.MustCompile("mirrors", grammar, "Notes", "Return")

func init() {
	aoc.Register(aoc.Day{
		Number:  13,
		Title:   "Point of Incidence",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

// Pattern is one block of the notes. Cells are 0-based from the block's
// top-left corner.
type Pattern struct {
	Line int // first input line of the block
	W, H int
	Grid aoc.Grid
}

// Parse splits the notes into patterns at blank lines.
func Parse(input []byte) ([]*Pattern, error) {
	var (
		pats  []*Pattern
		cur   *Pattern
		blank = true // no cell yet on the current line
	)
	finish := func() error {
		if cur == nil {
			return nil
		}
		minX, minY, maxX, maxY := cur.Grid.Bounds()
		cur.W, cur.H = maxX-minX+1, maxY-minY+1
		if len(cur.Grid) != cur.W*cur.H {
			return errors.WithHint(
				errors.Newf("pattern at line %d has %d cells, want %d for %dx%d", cur.Line, len(cur.Grid), cur.W*cur.H, cur.W, cur.H),
				"every row of a pattern must be the same width")
		}
		pats = append(pats, cur)
		cur = nil
		return nil
	}
	for s, err := range Rules.Lexer(input).All() {
		if err != nil {
			return nil, err
		}
		if s.Kind == "Newline" {
			if blank {
				if err := finish(); err != nil {
					return nil, err
				}
			}
			blank = true
			continue
		}
		if cur == nil {
			cur = &Pattern{Line: s.Pos.Line, Grid: aoc.Grid{}}
		}
		cur.Grid[aoc.Pt{X: s.Pos.Column - 1, Y: s.Pos.Line - cur.Line}] = rune(s.Text[0])
		blank = false
	}
	if err := finish(); err != nil {
		return nil, err
	}
	logger.Logger.Debugw("notes parsed", "patterns", len(pats))
	return pats, nil
}

// Cols returns how many columns lie left of the first vertical line of
// reflection across which exactly smudges cells differ, or 0 if none.
func (p *Pattern) Cols(smudges int) int {
	return mirror(p.W, p.H, smudges, func(a, b, i int) bool {
		return p.Grid[aoc.Pt{X: a, Y: i}] != p.Grid[aoc.Pt{X: b, Y: i}]
	})
}

// Rows is like Cols for horizontal lines, counting the rows above.
func (p *Pattern) Rows(smudges int) int {
	return mirror(p.H, p.W, smudges, func(a, b, i int) bool {
		return p.Grid[aoc.Pt{X: i, Y: a}] != p.Grid[aoc.Pt{X: i, Y: b}]
	})
}

// mirror tries each line between k-1 and k along an axis of length n. For
// every mirrored pair (a, b) it compares the m cells across the axis.
func mirror(n, m, smudges int, differ func(a, b, i int) bool) int {
	for k := 1; k < n; k++ {
		d := 0
		for a, b := k-1, k; a >= 0 && b < n && d <= smudges; a, b = a-1, b+1 {
			for i := range m {
				if differ(a, b, i) {
					d++
				}
			}
		}
		if d == smudges {
			return k
		}
	}
	return 0
}

// Summary is the columns left of the pattern's line of reflection, or 100
// times the rows above it when the line is horizontal.
func (p *Pattern) Summary(smudges int) (int, error) {
	if c := p.Cols(smudges); c > 0 {
		return c, nil
	}
	if r := p.Rows(smudges); r > 0 {
		return 100 * r, nil
	}
	return 0, errors.Newf("pattern at line %d has no line of reflection with %d smudges", p.Line, smudges)
}

func solve(input []byte, smudges int) (int, error) {
	pats, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, p := range pats {
		v, err := p.Summary(smudges)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

func Part1(input []byte) (int, error) { return solve(input, 0) }
func Part2(input []byte) (int, error) { return solve(input, 1) }
