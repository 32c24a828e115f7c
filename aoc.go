// Package aoc holds the puzzle registry and the small helpers the Advent of
// Code 2023 days share: generic points, grids, and a few must/or helpers.
package aoc

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/lex"
)

// Solver computes one part's answer from the raw puzzle input.
type Solver func(input []byte) (int, error)

// Day is one registered puzzle.
type Day struct {
	Number  int
	Title   string
	Rules   *lex.Rules // input grammar; used by `aoc tokens`
	Parts   []Solver   // Parts[0] is part 1
	Samples []Sample
}

var days = map[int]*Day{}

// Register adds d to the registry. It is called from package init
// functions and panics on a malformed or duplicate day.
func Register(d Day) {
	if d.Number < 1 || d.Number > 25 {
		panic(fmt.Sprintf("aoc: bogus day number %d", d.Number))
	}
	if len(d.Parts) == 0 || len(d.Parts) > 2 {
		panic(fmt.Sprintf("aoc: day %d has %d parts", d.Number, len(d.Parts)))
	}
	if _, dup := days[d.Number]; dup {
		panic(fmt.Sprintf("aoc: day %d registered twice", d.Number))
	}
	for _, s := range d.Samples {
		if s.Part > len(d.Parts) {
			panic(fmt.Sprintf("aoc: day %d has a sample for missing part %d", d.Number, s.Part))
		}
	}
	days[d.Number] = &d
}

// Lookup returns the registered day n.
func Lookup(n int) (*Day, bool) {
	d, ok := days[n]
	return d, ok
}

// Days returns every registered day in day order.
func Days() []*Day {
	all := make([]*Day, 0, len(days))
	for _, d := range days {
		all = append(all, d)
	}
	slices.SortFunc(all, func(a, b *Day) int { return cmp.Compare(a.Number, b.Number) })
	return all
}

// Latest returns the highest-numbered registered day, or nil.
func Latest() *Day {
	all := Days()
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

// Solve runs part (1-based) of d on input.
func (d *Day) Solve(part int, input []byte) (int, error) {
	if part < 1 || part > len(d.Parts) {
		return 0, errors.Newf("day %d has no part %d", d.Number, part)
	}
	v, err := d.Parts[part-1](input)
	if err != nil {
		return 0, errors.Wrapf(err, "day %d part %d", d.Number, part)
	}
	return v, nil
}

// SamplesFor returns d's samples for part.
func (d *Day) SamplesFor(part int) []Sample {
	var out []Sample
	for _, s := range d.Samples {
		if s.Part == part {
			out = append(out, s)
		}
	}
	return out
}

// InputPath is where the real input for day lives under dir.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day_%02d.txt", day))
}

// ReadInput reads the puzzle input for day from dir.
func ReadInput(dir string, day int) ([]byte, error) {
	path := InputPath(dir, day)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.WithHintf(errors.Wrapf(ErrNoInput, "day %d", day),
			"save your puzzle input as %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading input for day %d", day)
	}
	return b, nil
}

// ErrNoInput means a day's input file is missing.
var ErrNoInput = errors.New("no puzzle input")

// Lines yields each line of input with its 1-based line number. A final
// line without a trailing newline is still yielded; a trailing newline does
// not produce an empty last line.
func Lines(input []byte) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		s := strings.TrimSuffix(string(input), "\n")
		if s == "" {
			return
		}
		for i, line := range strings.Split(s, "\n") {
			if !yield(i+1, strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

// ForNeighbors calls f for the eight points around p until f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

func AbsInt[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// SatSub returns a-b, clamped at zero.
func SatSub[T constraints.Integer](a, b T) T {
	if a <= b {
		return 0
	}
	return a - b
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsInt[T](a.X, b.X) + AbsInt[T](a.Y, b.Y)
}

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

func sliceOf[T any](v ...T) []T { return v }

// NorthCounterClockwise is one step in each direction, starting north and
// turning left.
var NorthCounterClockwise = sliceOf(
	Pt2[int].North,
	Pt2[int].West,
	Pt2[int].South,
	Pt2[int].East,
)

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of vs, or 0 for none.
func LCM[T constraints.Integer](vs ...T) T {
	if len(vs) == 0 {
		return 0
	}
	l := vs[0]
	for _, v := range vs[1:] {
		l = l / GCD(l, v) * v
	}
	return l
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func DigVal(b byte) int {
	if b >= '0' && b <= '9' {
		return int(b - '0')
	}
	panic(fmt.Sprintf("bogus digit %q", string(b)))
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

type Grid map[Pt]rune

func (g Grid) PosSetWithValue(v rune) map[Pt]bool {
	s := map[Pt]bool{}
	for p, r := range g {
		if r == v {
			s[p] = true
		}
	}
	return s
}

func (g Grid) Bounds() (minX, minY, maxX, maxY int) {
	n := 0
	for p := range g {
		if n == 0 {
			minX = p.X
			maxX = p.X
			minY = p.Y
			maxY = p.Y
		}
		n++
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return
}

// Draw writes g to w, one row per line. Cells with no value print as '.'.
func (g Grid) Draw(w io.Writer) error {
	minX, minY, maxX, maxY := g.Bounds()
	var b strings.Builder
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			b.WriteRune(Or(g[Pt{x, y}], '.'))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
