// Package camelcards solves day 7: rank poker-like hands and total the
// bids weighted by rank.
package camelcards

import (
	"cmp"
	_ "embed"
	"slices"
	"strings"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/lex"
)

var (
	//go:embed grammar.ebnf
	grammar string
	//go:embed sample.yaml
	samples []byte
)

// A hand and its bid lex the same way ("33332" could be either), so the
// grammar has one Field kind and Parse tells them apart by position.
var Rules = lex.MustCompile("camelcards", grammar, "Hands", "Space")

func init() {
	aoc.Register(aoc.Day{
		Number:  7,
		Title:   "Camel Cards",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

// Type is a hand's category, weakest first.
type Type int

const (
	HighCard Type = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (t Type) String() string {
	return [...]string{"high card", "one pair", "two pair", "three of a kind",
		"full house", "four of a kind", "five of a kind"}[t]
}

// Card orders, weakest first. With jokers, J drops to the bottom.
const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

type Hand struct {
	Cards string
	Bid   int
}

// Type classifies h. With jokers, each J joins whichever group is largest.
func (h Hand) Type(jokers bool) Type {
	counts := map[rune]int{}
	for _, c := range h.Cards {
		counts[c]++
	}
	wild := 0
	if jokers {
		wild = counts['J']
		delete(counts, 'J')
	}
	groups := []int{0, 0} // so groups[1] exists for "JJJJJ" and "AAAAA"
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by type and then card by card.
func Compare(a, b Hand, jokers bool) int {
	if c := cmp.Compare(a.Type(jokers), b.Type(jokers)); c != 0 {
		return c
	}
	ord := order
	if jokers {
		ord = jokerOrder
	}
	for i := range len(a.Cards) {
		if c := cmp.Compare(strings.IndexByte(ord, a.Cards[i]), strings.IndexByte(ord, b.Cards[i])); c != 0 {
			return c
		}
	}
	return 0
}

// Parse reads one hand and bid per line.
func Parse(input []byte) ([]Hand, error) {
	c := Rules.Cursor(input)
	var hands []Hand
	for !c.Done() {
		cards, err := c.Expect("Field")
		if err != nil {
			return nil, err
		}
		if len(cards.Text) != 5 || strings.Trim(cards.Text, order) != "" {
			return nil, c.Unexpected(cards, "hand of five cards")
		}
		bid, err := c.Expect("Field")
		if err != nil {
			return nil, err
		}
		if strings.Trim(bid.Text, "0123456789") != "" {
			return nil, c.Unexpected(bid, "bid")
		}
		v, err := lex.Int(bid, 32)
		if err != nil {
			return nil, err
		}
		hands = append(hands, Hand{Cards: cards.Text, Bid: int(v)})
	}
	return hands, nil
}

// Winnings ranks hands from weakest (rank 1) and sums rank times bid.
func Winnings(hands []Hand, jokers bool) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return Compare(a, b, jokers) })
	sum := 0
	for i, h := range sorted {
		sum += (i + 1) * h.Bid
	}
	return sum
}

func solve(input []byte, jokers bool) (int, error) {
	hands, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, jokers), nil
}

func Part1(input []byte) (int, error) { return solve(input, false) }
func Part2(input []byte) (int, error) { return solve(input, true) }
