// Package dish solves day 14: tilt a platform so its round rocks roll
// until something stops them, then weigh the load on the north beams.
package dish

import (
	_ "embed"
	"maps"
	"slices"
	"strings"

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

var Rules = lex.MustCompile("dish", grammar, "Platform", "Break")

func init() {
	aoc.Register(aoc.Day{
		Number:  14,
		Title:   "Parabolic Reflector Dish",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

const (
	round = 'O'
	empty = '.'
)

// Platform holds every cell of the dish's platform. X is the column and Y
// the line, both 1-based.
type Platform struct {
	aoc.Grid
}

// Parse reads a rectangular platform.
func Parse(input []byte) (*Platform, error) {
	g := aoc.Grid{}
	for s, err := range Rules.Lexer(input).All() {
		if err != nil {
			return nil, err
		}
		g[aoc.Pt{X: s.Pos.Column, Y: s.Pos.Line}] = rune(s.Text[0])
	}
	if len(g) > 0 {
		minX, minY, maxX, maxY := g.Bounds()
		if w, h := maxX-minX+1, maxY-minY+1; len(g) != w*h {
			return nil, errors.WithHint(
				errors.Newf("platform has %d cells, want %d for %dx%d", len(g), w*h, w, h),
				"every row of the platform must be the same width")
		}
	}
	return &Platform{g}, nil
}

// Tilt rolls every round rock in the direction of step until it meets
// another rock or the edge.
func (p *Platform) Tilt(step func(aoc.Pt) aoc.Pt) {
	d := step(aoc.Pt{})
	rocks := slices.Collect(maps.Keys(p.PosSetWithValue(round)))
	// Rocks nearest the edge being tilted toward settle first.
	slices.SortFunc(rocks, func(a, b aoc.Pt) int {
		return (b.X*d.X + b.Y*d.Y) - (a.X*d.X + a.Y*d.Y)
	})
	for _, r := range rocks {
		at := r
		for next := step(at); p.Grid[next] == empty; next = step(next) {
			at = next
		}
		p.Grid[r], p.Grid[at] = empty, round
	}
}

// Cycle tilts north, west, south, then east.
func (p *Platform) Cycle() {
	for _, step := range aoc.NorthCounterClockwise {
		p.Tilt(step)
	}
}

// Load is the total load on the north support beams: each round rock
// weighs its number of rows from the south edge, counting its own.
func (p *Platform) Load() int {
	_, _, _, maxY := p.Bounds()
	load := 0
	for r := range p.PosSetWithValue(round) {
		load += maxY - r.Y + 1
	}
	return load
}

func (p *Platform) String() string {
	var b strings.Builder
	aoc.MustDo(p.Draw(&b))
	return b.String()
}

// LoadAfter runs n spin cycles and returns the load. Once the platform
// repeats an earlier state the remaining cycles are skipped.
func (p *Platform) LoadAfter(n int) int {
	seen := map[string]int{} // drawn platform -> cycles run
	var loads []int
	for i := 0; i < n; i++ {
		state := p.String()
		if j, ok := seen[state]; ok {
			logger.Logger.Debugw("spin cycle repeats", "from", j, "period", i-j)
			return loads[j+(n-j)%(i-j)]
		}
		seen[state] = i
		loads = append(loads, p.Load())
		p.Cycle()
	}
	return p.Load()
}

func Part1(input []byte) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}
	p.Tilt(aoc.Pt.North)
	return p.Load(), nil
}

func Part2(input []byte) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return p.LoadAfter(1_000_000_000), nil
}
