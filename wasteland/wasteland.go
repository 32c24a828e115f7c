// Package wasteland solves day 8: follow left/right instructions through
// a network of nodes until reaching the exit.
package wasteland

import (
	_ "embed"
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

// The instruction line and a node named "LRL" would lex alike, so both are
// Words and Parse tells them apart by position.
var Rules = lex.MustCompile("wasteland", grammar, "Network", "Space")

func init() {
	aoc.Register(aoc.Day{
		Number:  8,
		Title:   "Haunted Wasteland",
		Rules:   Rules,
		Parts:   []aoc.Solver{Part1, Part2},
		Samples: aoc.MustParseSamples(samples),
	})
}

// Node is one line of the network: a name and where left and right lead.
type Node struct {
	Name        string
	Left, Right string
}

type Map struct {
	Path  string // of 'L' and 'R'
	Nodes map[string]Node
	Order []string // node names as listed
}

// ErrNoExit means a walk cycles without reaching an exit.
var ErrNoExit = errors.New("no exit reachable")

// Parse reads the instructions and the node list.
func Parse(input []byte) (*Map, error) {
	c := Rules.Cursor(input)
	path, err := c.Expect("Word")
	if err != nil {
		return nil, err
	}
	if strings.Trim(path.Text, "LR") != "" {
		return nil, c.Unexpected(path, "L/R instructions")
	}
	m := &Map{Path: path.Text, Nodes: map[string]Node{}}
	for !c.Done() {
		var n Node
		var name, left, right lex.Span
		for _, step := range []struct {
			kind string
			dst  *lex.Span
		}{
			{"Word", &name}, {"Equals", nil}, {"Open", nil},
			{"Word", &left}, {"Comma", nil}, {"Word", &right}, {"Close", nil},
		} {
			s, err := c.Expect(step.kind)
			if err != nil {
				return nil, err
			}
			if step.dst != nil {
				*step.dst = s
			}
		}
		n.Name, n.Left, n.Right = name.Text, left.Text, right.Text
		if _, dup := m.Nodes[n.Name]; dup {
			return nil, errors.Newf("%s: node %s listed twice", name.Pos, n.Name)
		}
		m.Nodes[n.Name] = n
		m.Order = append(m.Order, n.Name)
	}
	for _, name := range m.Order {
		n := m.Nodes[name]
		for _, to := range []string{n.Left, n.Right} {
			if _, ok := m.Nodes[to]; !ok {
				return nil, errors.Newf("node %s leads to unknown node %s", name, to)
			}
		}
	}
	return m, nil
}

// Walk counts steps from start until done reports true for the current
// node. The instructions repeat as often as needed.
func (m *Map) Walk(start string, done func(string) bool) (int, error) {
	if _, ok := m.Nodes[start]; !ok {
		return 0, errors.Newf("unknown node %s", start)
	}
	if len(m.Path) == 0 {
		return 0, errors.New("no instructions")
	}
	// Past this many steps some (node, instruction) pair has repeated.
	limit := len(m.Nodes)*len(m.Path) + 1
	cur := start
	for steps := 0; steps <= limit; steps++ {
		if done(cur) {
			return steps, nil
		}
		n := m.Nodes[cur]
		if m.Path[steps%len(m.Path)] == 'L' {
			cur = n.Left
		} else {
			cur = n.Right
		}
	}
	return 0, errors.Wrapf(ErrNoExit, "from %s", start)
}

func Part1(input []byte) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.Walk("AAA", func(n string) bool { return n == "ZZZ" })
}

// Part2 walks every node ending in A at once. Each start reaches a Z node
// on a fixed cycle, so they all meet at the LCM of the first arrivals.
func Part2(input []byte) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var arrivals []int
	for _, name := range m.Order {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		steps, err := m.Walk(name, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, err
		}
		logger.Logger.Debugw("ghost arrives", "start", name, "steps", steps)
		arrivals = append(arrivals, steps)
	}
	if len(arrivals) == 0 {
		return 0, errors.New("no start nodes")
	}
	return aoc.LCM(arrivals...), nil
}
