// Package mirage solves day 9: extend each sensor history one step past
// either end using its table of differences.
package mirage

import (
	_ "embed"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/lex"
)

var (
	//go:embed grammar.ebnf
	grammar string
	//go:embed sample.yaml
	samples []byte
)

var Rules = lex.MustCompile("mirage", grammar, "Report", "Space")

func init() {
	aoc.Register(aoc.Day{
		Number:  9,
		Title:   "Mirage Maintenance",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

// History is one line of readings, oldest first.
type History []int

func (h History) constant() bool {
	for _, v := range h[1:] {
		if v != h[0] {
			return false
		}
	}
	return true
}

func (h History) diffs() History {
	d := make(History, len(h)-1)
	for i := range d {
		d[i] = h[i+1] - h[i]
	}
	return d
}

// Next predicts the reading after the last one.
func (h History) Next() int {
	if h.constant() {
		return h[0]
	}
	return h[len(h)-1] + h.diffs().Next()
}

// Prev predicts the reading before the first one.
func (h History) Prev() int {
	if h.constant() {
		return h[0]
	}
	return h[0] - h.diffs().Prev()
}

// Parse reads one history per line. Blank lines are skipped.
func Parse(input []byte) ([]History, error) {
	c := Rules.Cursor(input)
	var hs []History
	for c.Skip("Newline"); !c.Done(); c.Skip("Newline") {
		vs, err := c.Ints("Number", 64)
		if err != nil {
			return nil, err
		}
		if len(vs) == 0 {
			_, err := c.Expect("Number")
			return nil, err
		}
		hs = append(hs, History(vs))
		if !c.Done() {
			if _, err := c.Expect("Newline"); err != nil {
				return nil, err
			}
		}
	}
	return hs, nil
}

func solve(input []byte, predict func(History) int) (int, error) {
	hs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(hs) == 0 {
		return 0, errors.New("empty report")
	}
	sum := 0
	for _, h := range hs {
		sum += predict(h)
	}
	return sum, nil
}

func Part1(input []byte) (int, error) { return solve(input, History.Next) }
func Part2(input []byte) (int, error) { return solve(input, History.Prev) }
