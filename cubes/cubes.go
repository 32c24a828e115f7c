// Package cubes solves day 2: games of cubes drawn from a bag, checked
// against a bag's contents and reduced to the smallest bag that fits.
package cubes

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

var Rules = lex.MustCompile("cubes", grammar, "Record", "Space")

func init() {
	aoc.Register(aoc.Day{
		Number:  2,
		Title:   "Cube Conundrum",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

// Cubes counts cubes by color.
type Cubes struct {
	Red, Green, Blue int
}

// Within reports whether every count in c fits in bag.
func (c Cubes) Within(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

// Max returns the per-color maximum of c and o.
func (c Cubes) Max(o Cubes) Cubes {
	return Cubes{max(c.Red, o.Red), max(c.Green, o.Green), max(c.Blue, o.Blue)}
}

func (c Cubes) Power() int { return c.Red * c.Green * c.Blue }

func (c *Cubes) add(color string, n int) {
	switch color {
	case "red":
		c.Red += n
	case "green":
		c.Green += n
	case "blue":
		c.Blue += n
	}
}

// Game is one line of the record: an id and the handfuls shown.
type Game struct {
	ID    int
	Draws []Cubes
}

// Smallest is the least bag that could have produced every draw.
func (g Game) Smallest() Cubes {
	var m Cubes
	for _, d := range g.Draws {
		m = m.Max(d)
	}
	return m
}

// Possible reports whether every draw fits in bag.
func (g Game) Possible(bag Cubes) bool {
	for _, d := range g.Draws {
		if !d.Within(bag) {
			return false
		}
	}
	return true
}

// Parse reads every game in input.
func Parse(input []byte) ([]Game, error) {
	c := Rules.Cursor(input)
	var games []Game
	for !c.Done() {
		g, err := parseGame(c)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, c.Err()
}

func parseGame(c *lex.Cursor) (Game, error) {
	var g Game
	if _, err := c.Expect("Game"); err != nil {
		return g, err
	}
	id, err := c.Expect("Number")
	if err != nil {
		return g, err
	}
	v, err := lex.Int(id, 32)
	if err != nil {
		return g, err
	}
	g.ID = int(v)
	if _, err := c.Expect("Colon"); err != nil {
		return g, err
	}

	var draw Cubes
	for {
		n, err := c.Expect("Number")
		if err != nil {
			return g, err
		}
		count, err := lex.Int(n, 32)
		if err != nil {
			return g, err
		}
		color, err := c.Expect("Color")
		if err != nil {
			return g, err
		}
		draw.add(color.Text, int(count))

		if _, ok := c.Accept("Comma"); ok {
			continue
		}
		g.Draws = append(g.Draws, draw)
		draw = Cubes{}
		if _, ok := c.Accept("Semicolon"); !ok {
			return g, nil
		}
	}
}

// Bag is what part 1 checks each game against.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

func Part1(input []byte) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.Possible(Bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

func Part2(input []byte) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.Smallest().Power()
	}
	return sum, nil
}
