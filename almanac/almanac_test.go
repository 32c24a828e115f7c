package almanac

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/lex"
)

func TestSamples(t *testing.T) {
	d, ok := aoc.Lookup(5)
	require.True(t, ok)
	for part := 1; part <= 2; part++ {
		_, err := d.CheckSamples(part)
		require.NoError(t, err)
	}
}

func TestParse(t *testing.T) {
	d, _ := aoc.Lookup(5)
	a, err := Parse([]byte(d.Samples[0].Input))
	require.NoError(t, err)
	assert.Equal(t, []int{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Maps, 7)
	assert.Equal(t, "seed", a.Maps[0].From)
	assert.Equal(t, "soil", a.Maps[0].To)
	assert.Equal(t, []Entry{{50, 98, 2}, {52, 50, 48}}, a.Maps[0].Entries)

	for seed, want := range map[int]int{79: 82, 14: 43, 55: 86, 13: 35} {
		assert.Equal(t, want, a.Location(seed), "seed %d", seed)
	}
}

func TestLookup(t *testing.T) {
	m := Map{Entries: []Entry{{50, 98, 2}, {52, 50, 48}}}
	assert.Equal(t, 81, m.Lookup(79))
	assert.Equal(t, 50, m.Lookup(98))
	assert.Equal(t, 100, m.Lookup(100))
	assert.Equal(t, 10, m.Lookup(10))
}

func TestSpansSplit(t *testing.T) {
	m := Map{Entries: []Entry{{Dst: 100, Src: 10, Len: 5}}}
	got := m.Spans([]Span{{5, 20}})
	assert.ElementsMatch(t, []Span{{100, 105}, {5, 10}, {15, 20}}, got)

	assert.Equal(t, []Span{{0, 3}}, m.Spans([]Span{{0, 3}}))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("seeds: 1\n\nsoil-to-water map:\n1 2 3\n"))
	assert.ErrorContains(t, err, "does not follow seed")

	_, err = Parse([]byte("seeds: 1\n\nseed-to-location map:\n1 2\n"))
	assert.ErrorContains(t, err, "multiple of 3")

	_, err = Parse([]byte("seeds: 1\n\nseed-to-soil map:\n1 2 3\n"))
	assert.ErrorContains(t, err, "not location")

	_, err = Parse([]byte("plants: 1\n"))
	var pe *lex.ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestOddSeedRanges(t *testing.T) {
	_, err := Part2([]byte("seeds: 1 2 3\n\nseed-to-location map:\n1 2 3\n"))
	assert.ErrorContains(t, err, "pairs")
}

func TestEmptySeedRange(t *testing.T) {
	d, _ := aoc.Lookup(5)
	in := strings.Replace(d.Samples[0].Input, "seeds: 79 14 55 13", "seeds: 1 0 79 14", 1)
	got, err := Part2([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, 46, got)

	m := Map{Entries: []Entry{{Dst: 100, Src: 10, Len: 5}}}
	assert.Empty(t, m.Spans([]Span{{7, 7}, {12, 9}}))

	_, err = Part2([]byte("seeds: 5 0\n\nseed-to-location map:\n1 2 3\n"))
	assert.ErrorContains(t, err, "empty")
}
