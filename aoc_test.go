package aoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoclive/aoc/internal/errors"
)

func register(t *testing.T, d Day) {
	t.Helper()
	Register(d)
	t.Cleanup(func() { delete(days, d.Number) })
}

func countLines(input []byte) (int, error) {
	n := 0
	for range Lines(input) {
		n++
	}
	return n, nil
}

func TestRegistry(t *testing.T) {
	register(t, Day{Number: 24, Title: "Later", Parts: []Solver{countLines}})
	register(t, Day{Number: 23, Title: "Earlier", Parts: []Solver{countLines, countLines}})

	d, ok := Lookup(23)
	require.True(t, ok)
	assert.Equal(t, "Earlier", d.Title)

	_, ok = Lookup(22)
	assert.False(t, ok)

	var nums []int
	for _, d := range Days() {
		nums = append(nums, d.Number)
	}
	assert.Equal(t, []int{23, 24}, nums)
	assert.Equal(t, 24, Latest().Number)
}

func TestRegisterPanics(t *testing.T) {
	assert.Panics(t, func() { Register(Day{Number: 0, Parts: []Solver{countLines}}) })
	assert.Panics(t, func() { Register(Day{Number: 26, Parts: []Solver{countLines}}) })
	assert.Panics(t, func() { Register(Day{Number: 20}) })
	assert.Panics(t, func() {
		Register(Day{Number: 20, Parts: []Solver{countLines}, Samples: []Sample{{Part: 2, Input: "x"}}})
	})

	register(t, Day{Number: 21, Parts: []Solver{countLines}})
	assert.Panics(t, func() { Register(Day{Number: 21, Parts: []Solver{countLines}}) })
}

func TestSolve(t *testing.T) {
	d := &Day{Number: 22, Parts: []Solver{
		countLines,
		func([]byte) (int, error) { return 0, errors.New("boom") },
	}}

	v, err := d.Solve(1, []byte("a\nb\nc\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = d.Solve(2, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 22 part 2")
	assert.Contains(t, err.Error(), "boom")

	_, err = d.Solve(3, nil)
	assert.Error(t, err)
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", nil},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		var got []string
		var nums []int
		for n, line := range Lines([]byte(tt.in)) {
			nums = append(nums, n)
			got = append(got, line)
		}
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		for i, n := range nums {
			assert.Equal(t, i+1, n)
		}
	}
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day_03.txt"), []byte("467..114..\n"), 0o644))

	b, err := ReadInput(dir, 3)
	require.NoError(t, err)
	assert.Equal(t, "467..114..\n", string(b))

	_, err = ReadInput(dir, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoInput))
	assert.Contains(t, errors.FlattenHints(err), "day_04.txt")
}

func TestSatSub(t *testing.T) {
	assert.Equal(t, 0, SatSub(1, 1))
	assert.Equal(t, 0, SatSub(0, 1))
	assert.Equal(t, 2, SatSub(3, 1))
	assert.Equal(t, uint(0), SatSub(uint(0), uint(1)))
	assert.Equal(t, uint8(4), SatSub(uint8(5), uint8(1)))
}

func TestPoints(t *testing.T) {
	p := Pt{X: 2, Y: 3}
	assert.Equal(t, 7, p.MDist(Pt{X: -1, Y: 7}))
	assert.Equal(t, 0, p.MDist(p))

	var n []Pt
	p.ForNeighbors(func(q Pt) bool {
		n = append(n, q)
		return true
	})
	require.Len(t, n, 8)
	assert.NotContains(t, n, p)
	for _, q := range n {
		assert.LessOrEqual(t, AbsInt(q.X, p.X), 1)
		assert.LessOrEqual(t, AbsInt(q.Y, p.Y), 1)
	}

	calls := 0
	p.ForNeighbors(func(Pt) bool {
		calls++
		return calls < 3
	})
	assert.Equal(t, 3, calls)
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 5, GCD(-5, 0))
	assert.Equal(t, 6, LCM(2, 3))
	assert.Equal(t, 36, LCM(12, 18, 4))
	assert.Equal(t, int64(30), LCM(int64(2), 3, 5))
	assert.Equal(t, 0, LCM[int]())
}

func TestOr(t *testing.T) {
	assert.Equal(t, "b", Or("", "b", "c"))
	assert.Equal(t, 0, Or(0, 0))
	assert.Equal(t, '.', Or(rune(0), '.'))
}

func TestDigVal(t *testing.T) {
	assert.Equal(t, 7, DigVal('7'))
	assert.Panics(t, func() { DigVal('x') })
}

func TestMust(t *testing.T) {
	assert.Equal(t, 3, MustGet(3, nil))
	assert.Panics(t, func() { MustGet(3, errors.New("x")) })
	assert.NotPanics(t, func() { MustDo(nil) })
	assert.Panics(t, func() { MustDo(errors.New("x")) })
}

func TestDirections(t *testing.T) {
	p := Pt{X: 2, Y: 5}
	var got []Pt
	for _, step := range NorthCounterClockwise {
		got = append(got, step(p))
	}
	assert.Equal(t, []Pt{{2, 4}, {1, 5}, {2, 6}, {3, 5}}, got)
	assert.Equal(t, p, p.North().East().South().West())
}

func TestGrid(t *testing.T) {
	g := Grid{{1, 0}: '#', {3, 1}: '#', {0, 2}: '*'}

	minX, minY, maxX, maxY := g.Bounds()
	assert.Equal(t, []int{0, 0, 3, 2}, []int{minX, minY, maxX, maxY})
	assert.Equal(t, map[Pt]bool{{1, 0}: true, {3, 1}: true}, g.PosSetWithValue('#'))

	var b strings.Builder
	require.NoError(t, g.Draw(&b))
	assert.Equal(t, ".#..\n...#\n*...\n", b.String())
}
