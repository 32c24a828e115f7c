package trebuchet

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/aoclive/aoc"
)

// A zero-width lookahead matches at every offset, so overlapping words
// like "eightwo" yield both digits.
var (
	digitPattern = regexp2.MustCompile(`(?=(\d))`, regexp2.None)
	wordPattern  = regexp2.MustCompile(`(?=(`+strings.Join(words[:], "|")+`|\d))`, regexp2.None)
)

// Lookahead finds digits with a backtracking regexp.
func Lookahead(line string, spelled bool) []int {
	re := digitPattern
	if spelled {
		re = wordPattern
	}
	var digits []int
	m := aoc.MustGet(re.FindStringMatch(line))
	for m != nil {
		digits = append(digits, value(m.GroupByNumber(1).String()))
		m = aoc.MustGet(re.FindNextMatch(m))
	}
	return digits
}

func value(s string) int {
	if len(s) == 1 {
		return aoc.DigVal(s[0])
	}
	for i, w := range words {
		if w == s {
			return i + 1
		}
	}
	panic("bogus digit word " + s)
}
