// Package trebuchet solves day 1: recover a two-digit calibration value
// from the first and last digit on each line, where part 2 also counts
// digits spelled out as words.
package trebuchet

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

var Rules = lex.MustCompile("trebuchet", grammar, "Document", "Break")

func init() {
	aoc.Register(aoc.Day{
		Number:  1,
		Title:   "Trebuchet?!",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

// Line is one line of the calibration document.
type Line struct {
	Number int
	Text   string
}

// Parse splits input into its non-blank lines.
func Parse(input []byte) ([]Line, error) {
	var lines []Line
	for s, err := range Rules.Lexer(input).All() {
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{Number: s.Pos.Line, Text: s.Text})
	}
	return lines, nil
}

// A Strategy finds every digit in line, in order, overlapping matches
// included. With words set, "one" through "nine" count as digits too.
type Strategy func(line string, words bool) []int

// Strategies are the interchangeable digit finders. They all agree.
var Strategies = map[string]Strategy{
	"scan":       Scan,
	"continuous": Continuous,
	"restart":    Restart,
	"lookahead":  Lookahead,
}

// Sum adds up the calibration value of every line.
func Sum(lines []Line, find Strategy, words bool) (int, error) {
	sum := 0
	for _, l := range lines {
		digits := find(l.Text, words)
		if len(digits) == 0 {
			return 0, errors.Newf("line %d: no digit in %q", l.Number, l.Text)
		}
		v := digits[0]*10 + digits[len(digits)-1]
		logger.Logger.Debugw("calibration", "line", l.Number, "value", v)
		sum += v
	}
	return sum, nil
}

func solve(input []byte, words bool) (int, error) {
	lines, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Sum(lines, Continuous, words)
}

func Part1(input []byte) (int, error) { return solve(input, false) }
func Part2(input []byte) (int, error) { return solve(input, true) }
