package schematic

import (
	_ "embed"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/lex"
)

var (
	//go:embed grammar.ebnf
	grammar string
	//go:embed sample.yaml
	samples []byte
)

// Rules tokenizes an engine schematic. '.' and line breaks are filler.
var Rules = lex.MustCompile("schematic", grammar, "Schematic", "Filler")

func init() {
	aoc.Register(aoc.Day{
		Number:  3,
		Title:   "Gear Ratios",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

func Part1(input []byte) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return s.PartNumberSum(), nil
}

func Part2(input []byte) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return s.GearRatioSum(), nil
}
