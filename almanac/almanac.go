// Package almanac solves day 5: seeds are carried through a chain of
// range maps to a location, and the lowest location wins.
package almanac

import (
	_ "embed"
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

var Rules = lex.MustCompile("almanac", grammar, "Almanac", "Space")

func init() {
	aoc.Register(aoc.Day{
		Number:  5,
		Title:   "If You Give A Seed A Fertilizer",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

// Entry sends [Src, Src+Len) to [Dst, Dst+Len).
type Entry struct {
	Dst, Src, Len int
}

// Map converts one category to the next. Values no entry covers map to
// themselves.
type Map struct {
	From, To string
	Entries  []Entry
}

// Lookup maps a single value.
func (m Map) Lookup(v int) int {
	for _, e := range m.Entries {
		if v >= e.Src && v < e.Src+e.Len {
			return e.Dst + v - e.Src
		}
	}
	return v
}

// Span is the half-open interval [Start, End).
type Span struct {
	Start, End int
}

// Spans maps a set of intervals, splitting each where entry boundaries
// cut it. Empty intervals are dropped.
func (m Map) Spans(in []Span) []Span {
	var out []Span
	todo := slices.Clone(in)
	for len(todo) > 0 {
		s := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if s.Start >= s.End {
			continue
		}
		mapped := false
		for _, e := range m.Entries {
			lo, hi := max(s.Start, e.Src), min(s.End, e.Src+e.Len)
			if lo >= hi {
				continue
			}
			out = append(out, Span{lo - e.Src + e.Dst, hi - e.Src + e.Dst})
			if s.Start < lo {
				todo = append(todo, Span{s.Start, lo})
			}
			if hi < s.End {
				todo = append(todo, Span{hi, s.End})
			}
			mapped = true
			break
		}
		if !mapped {
			out = append(out, s)
		}
	}
	return out
}

// Almanac is the seed list and the maps in the order they chain.
type Almanac struct {
	Seeds []int
	Maps  []Map
}

// Location runs v through every map.
func (a *Almanac) Location(v int) int {
	for _, m := range a.Maps {
		v = m.Lookup(v)
	}
	return v
}

// Parse reads an almanac. The maps must chain from "seed" to "location".
func Parse(input []byte) (*Almanac, error) {
	c := Rules.Cursor(input)
	head, err := c.Expect("Name")
	if err != nil {
		return nil, err
	}
	if head.Text != "seeds" {
		return nil, c.Unexpected(head, "seeds")
	}
	if _, err := c.Expect("Colon"); err != nil {
		return nil, err
	}
	a := new(Almanac)
	if a.Seeds, err = c.Ints("Number", 64); err != nil {
		return nil, err
	}

	from := "seed"
	for !c.Done() {
		m, err := parseMap(c)
		if err != nil {
			return nil, err
		}
		if m.From != from {
			return nil, errors.Newf("map %s-to-%s does not follow %s", m.From, m.To, from)
		}
		from = m.To
		a.Maps = append(a.Maps, m)
	}
	if from != "location" {
		return nil, errors.Newf("maps end at %s, not location", from)
	}
	logger.Logger.Debugw("almanac", "seeds", len(a.Seeds), "maps", len(a.Maps))
	return a, nil
}

func parseMap(c *lex.Cursor) (Map, error) {
	var m Map
	name, err := c.Expect("Name")
	if err != nil {
		return m, err
	}
	from, to, ok := strings.Cut(name.Text, "-to-")
	if !ok {
		return m, c.Unexpected(name, "category-to-category")
	}
	m.From, m.To = from, to
	word, err := c.Expect("Name")
	if err != nil {
		return m, err
	}
	if word.Text != "map" {
		return m, c.Unexpected(word, "map")
	}
	if _, err := c.Expect("Colon"); err != nil {
		return m, err
	}
	nums, err := c.Ints("Number", 64)
	if err != nil {
		return m, err
	}
	if len(nums)%3 != 0 {
		return m, errors.Newf("%s: %s map has %d numbers, not a multiple of 3", name.Pos, name.Text, len(nums))
	}
	for i := 0; i < len(nums); i += 3 {
		m.Entries = append(m.Entries, Entry{Dst: nums[i], Src: nums[i+1], Len: nums[i+2]})
	}
	return m, nil
}

func Part1(input []byte) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, errors.New("no seeds")
	}
	best := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		best = min(best, a.Location(s))
	}
	return best, nil
}

func Part2(input []byte) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return 0, errors.Newf("want seed ranges in pairs, got %d numbers", len(a.Seeds))
	}
	var spans []Span
	for i := 0; i < len(a.Seeds); i += 2 {
		spans = append(spans, Span{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	for _, m := range a.Maps {
		spans = m.Spans(spans)
	}
	if len(spans) == 0 {
		return 0, errors.New("every seed range is empty")
	}
	best := spans[0].Start
	for _, s := range spans[1:] {
		best = min(best, s.Start)
	}
	return best, nil
}
