// Package lenses solves day 15: hash the steps of an initialization
// sequence, then follow them to arrange lenses in 256 boxes.
package lenses

import (
	_ "embed"
	"slices"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/lex"
)

var (
	//go:embed grammar.ebnf
	grammar string
	//go:embed sample.yaml
	samples []byte
)

var Rules = lex.MustCompile("lenses", grammar, "Sequence", "Break")

func init() {
	aoc.Register(aoc.Day{
		Number:  15,
		Title:   "Lens Library",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

// Hash is the running value of the HASH algorithm. It implements
// io.Writer; line breaks are ignored.
type Hash uint8

func (h *Hash) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' || b == '\r' {
			continue
		}
		*h = (*h + Hash(b)) * 17
	}
	return len(p), nil
}

// HASH returns the hash of s.
func HASH(s string) int {
	var h Hash
	h.Write([]byte(s))
	return int(h)
}

// Step is one comma-separated instruction.
type Step struct {
	Text  string // as written
	Label string
	Op    byte // '=' or '-'
	Focal int  // set for '='
}

// Box is the label's box number.
func (s Step) Box() int { return HASH(s.Label) }

// Parse reads the comma-separated steps.
func Parse(input []byte) ([]Step, error) {
	c := Rules.Cursor(input)
	var steps []Step
	for !c.Done() {
		if len(steps) > 0 {
			if _, err := c.Expect("Comma"); err != nil {
				return nil, err
			}
		}
		label, err := c.Expect("Label")
		if err != nil {
			return nil, err
		}
		op, err := c.Expect("Assign", "Remove")
		if err != nil {
			return nil, err
		}
		s := Step{Label: label.Text, Op: op.Text[0]}
		end := op.End.Offset
		if op.Kind == "Assign" {
			f, err := c.Expect("Focal")
			if err != nil {
				return nil, err
			}
			s.Focal = aoc.DigVal(f.Text[0])
			end = f.End.Offset
		}
		s.Text = string(input[label.Pos.Offset:end])
		steps = append(steps, s)
	}
	return steps, nil
}

func Part1(input []byte) (int, error) {
	steps, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, s := range steps {
		sum += HASH(s.Text)
	}
	return sum, nil
}

type lens struct {
	label string
	focal int
}

// Boxes holds lenses in slot order, indexed by box number.
type Boxes [256][]lens

// Apply performs one step: '=' replaces a lens with the same label in place
// or adds it at the back, '-' removes it.
func (b *Boxes) Apply(s Step) {
	box := &b[s.Box()]
	i := slices.IndexFunc(*box, func(l lens) bool { return l.label == s.Label })
	switch {
	case s.Op == '-' && i >= 0:
		*box = slices.Delete(*box, i, i+1)
	case s.Op == '=' && i >= 0:
		(*box)[i].focal = s.Focal
	case s.Op == '=':
		*box = append(*box, lens{s.Label, s.Focal})
	}
}

// Power sums box number times slot times focal length, all 1-based.
func (b *Boxes) Power() int {
	sum := 0
	for n, box := range b {
		for slot, l := range box {
			sum += (n + 1) * (slot + 1) * l.focal
		}
	}
	return sum
}

func Part2(input []byte) (int, error) {
	steps, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var boxes Boxes
	for _, s := range steps {
		boxes.Apply(s)
	}
	return boxes.Power(), nil
}
