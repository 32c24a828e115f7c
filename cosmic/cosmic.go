// Package cosmic solves day 11: sum the distances between every pair of
// galaxies after rows and columns with no galaxy have grown.
package cosmic

import (
	_ "embed"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/logger"
	"github.com/aoclive/aoc/lex"
)

var (
	//go:embed grammar.ebnf
	grammar string
	//go:embed sample.yaml
	samples []byte
)

var Rules = lex.MustCompile("cosmic", grammar, "Image", "Empty", "Break")

func init() {
	aoc.Register(aoc.Day{
		Number:  11,
		Title:   "Cosmic Expansion",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

// Image holds galaxy positions with X as the column and Y as the line,
// both 1-based, in reading order.
type Image struct {
	Galaxies []aoc.Pt
}

// Parse finds every galaxy in input.
func Parse(input []byte) (*Image, error) {
	img := new(Image)
	for s, err := range Rules.Lexer(input).All() {
		if err != nil {
			return nil, err
		}
		img.Galaxies = append(img.Galaxies, aoc.Pt{X: s.Pos.Column, Y: s.Pos.Line})
	}
	return img, nil
}

// Grid returns the galaxies as a grid of '#'.
func (img *Image) Grid() aoc.Grid {
	g := aoc.Grid{}
	for _, p := range img.Galaxies {
		g[p] = '#'
	}
	return g
}

// Expand returns the galaxy positions after every empty row and column
// inside the image's bounds has become factor rows or columns wide.
// Empty space outside the galaxies changes no distance and is ignored.
func (img *Image) Expand(factor int) []aoc.Pt {
	g := img.Grid()
	minX, minY, maxX, maxY := g.Bounds()
	usedX, usedY := map[int]bool{}, map[int]bool{}
	for p := range g.PosSetWithValue('#') {
		usedX[p.X], usedY[p.Y] = true, true
	}
	// gaps[v-lo] is the number of empty coordinates in [lo, v).
	gaps := func(lo, hi int, used map[int]bool) []int {
		n := make([]int, hi-lo+1)
		for v := lo + 1; v <= hi; v++ {
			n[v-lo] = n[v-lo-1]
			if !used[v-1] {
				n[v-lo]++
			}
		}
		return n
	}
	gx, gy := gaps(minX, maxX, usedX), gaps(minY, maxY, usedY)

	out := make([]aoc.Pt, len(img.Galaxies))
	for i, p := range img.Galaxies {
		out[i] = aoc.Pt{
			X: p.X + gx[p.X-minX]*(factor-1),
			Y: p.Y + gy[p.Y-minY]*(factor-1),
		}
	}
	return out
}

// DistanceSum adds the Manhattan distance of every pair.
func DistanceSum(pts []aoc.Pt) int {
	sum := 0
	for i, p := range pts {
		for _, q := range pts[i+1:] {
			sum += p.MDist(q)
		}
	}
	return sum
}

// Solve expands by factor and sums the pairwise distances.
func Solve(input []byte, factor int) (int, error) {
	img, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(img.Galaxies) == 0 {
		return 0, nil
	}
	logger.Logger.Debugw("expanding", "galaxies", len(img.Galaxies), "factor", factor)
	return DistanceSum(img.Expand(factor)), nil
}

func Part1(input []byte) (int, error) { return Solve(input, 2) }
func Part2(input []byte) (int, error) { return Solve(input, 1_000_000) }
