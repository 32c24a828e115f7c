// Package scratchcards solves day 4: cards score by how many of their
// numbers are winning numbers, and in part 2 each match wins copies of the
// cards that follow.
package scratchcards

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

var Rules = lex.MustCompile("scratchcards", grammar, "Pile", "Space")

func init() {
	aoc.Register(aoc.Day{
		Number:  4,
		Title:   "Scratchcards",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts the numbers on the card that are winning numbers.
func (c Card) Matches() int {
	win := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = true
	}
	n := 0
	for _, h := range c.Have {
		if win[h] {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for each match after it.
func (c Card) Points() int {
	if m := c.Matches(); m > 0 {
		return 1 << (m - 1)
	}
	return 0
}

// Parse reads every card in input.
func Parse(input []byte) ([]Card, error) {
	c := Rules.Cursor(input)
	var cards []Card
	for !c.Done() {
		if _, err := c.Expect("Card"); err != nil {
			return nil, err
		}
		id, err := c.Expect("Number")
		if err != nil {
			return nil, err
		}
		v, err := lex.Int(id, 32)
		if err != nil {
			return nil, err
		}
		// Copies are won by position, so ids must count up from 1.
		if int(v) != len(cards)+1 {
			return nil, errors.Newf("%s: card %d out of order, want %d", id.Pos, v, len(cards)+1)
		}
		if _, err := c.Expect("Colon"); err != nil {
			return nil, err
		}
		card := Card{ID: int(v)}
		if card.Winning, err = c.Ints("Number", 32); err != nil {
			return nil, err
		}
		if _, err := c.Expect("Bar"); err != nil {
			return nil, err
		}
		if card.Have, err = c.Ints("Number", 32); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func Part1(input []byte) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum, nil
}

// Copies returns how many of each card you end up holding. A card with k
// matches wins one copy of each of the next k cards, for every copy held,
// never past the last card.
func Copies(cards []Card) []int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= min(i+c.Matches(), len(cards)-1); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}

func Part2(input []byte) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range Copies(cards) {
		total += n
	}
	return total, nil
}
