package trebuchet

// State is a recognizer state. It carries the digit recognized on
// entering it, if any, so callers never consult the machine for output.
type State struct {
	id    uint8
	digit int8 // -1 when nothing ends here
	width uint8
}

// Digit returns the digit that ends at this state.
func (s State) Digit() (int, bool) {
	return int(s.digit), s.digit >= 0
}

// Width is the length in bytes of the pattern that ends at this state.
func (s State) Width() int { return int(s.width) }

// Machine recognizes the digits 0-9 and, optionally, the words one through
// nine. It is a trie of the patterns whose missing edges have been filled
// in with failure transitions, so every (state, byte) pair has exactly one
// successor and the input is never rescanned.
type Machine struct {
	next  [][256]uint8
	final []State
}

// Start is the state before any input.
func (m *Machine) Start() State { return m.final[0] }

// Step returns the state after reading b in s.
func (m *Machine) Step(s State, b byte) State {
	return m.final[m.next[s.id][b]]
}

var (
	digitMachine = NewMachine(false)
	wordMachine  = NewMachine(true)
)

func machineFor(words bool) *Machine {
	if words {
		return wordMachine
	}
	return digitMachine
}

// NewMachine builds the transition table.
func NewMachine(spelled bool) *Machine {
	type pattern struct {
		text  string
		digit int
	}
	var pats []pattern
	for d := range 10 {
		pats = append(pats, pattern{string(rune('0' + d)), d})
	}
	if spelled {
		for i, w := range words {
			pats = append(pats, pattern{w, i + 1})
		}
	}

	// Trie, with 0 as the root and 0 also meaning "no edge".
	edges := [][256]uint8{{}}
	final := []State{{digit: -1}}
	for _, p := range pats {
		n := uint8(0)
		for i := range len(p.text) {
			c := p.text[i]
			if edges[n][c] == 0 {
				edges = append(edges, [256]uint8{})
				final = append(final, State{id: uint8(len(final)), digit: -1})
				edges[n][c] = uint8(len(edges) - 1)
			}
			n = edges[n][c]
		}
		final[n].digit = int8(p.digit)
		final[n].width = uint8(len(p.text))
	}

	// Breadth-first, so a node's failure target is complete before the
	// node itself is visited.
	next := make([][256]uint8, len(edges))
	fail := make([]uint8, len(edges))
	queue := []uint8{0}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n != 0 && final[n].digit < 0 {
			// No pattern is a proper suffix of another, so at most one
			// output needs inheriting.
			f := final[fail[n]]
			final[n].digit, final[n].width = f.digit, f.width
		}
		for c := range 256 {
			child := edges[n][c]
			if child == 0 {
				next[n][c] = next[fail[n]][c]
				continue
			}
			next[n][c] = child
			if n != 0 {
				fail[child] = next[fail[n]][c]
			}
			queue = append(queue, child)
		}
	}
	return &Machine{next: next, final: final}
}

// Continuous runs the machine over line once, collecting every digit as
// its pattern ends.
func Continuous(line string, words bool) []int {
	m := machineFor(words)
	var digits []int
	s := m.Start()
	for i := range len(line) {
		s = m.Step(s, line[i])
		if d, ok := s.Digit(); ok {
			digits = append(digits, d)
		}
	}
	return digits
}

// Restart runs the machine from its start state again after each match,
// beginning one byte after the match began.
func Restart(line string, words bool) []int {
	m := machineFor(words)
	var digits []int
	s := m.Start()
	for i := 0; i < len(line); i++ {
		s = m.Step(s, line[i])
		if d, ok := s.Digit(); ok {
			digits = append(digits, d)
			i -= s.Width() - 1
			s = m.Start()
		}
	}
	return digits
}
