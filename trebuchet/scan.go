package trebuchet

import (
	"strings"

	"github.com/aoclive/aoc"
)

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Scan tries every word and digit at every offset of line.
func Scan(line string, spelled bool) []int {
	var digits []int
	for i := range len(line) {
		if c := line[i]; c >= '0' && c <= '9' {
			digits = append(digits, aoc.DigVal(c))
			continue
		}
		if !spelled {
			continue
		}
		for j, w := range words {
			if strings.HasPrefix(line[i:], w) {
				digits = append(digits, j+1)
				break
			}
		}
	}
	return digits
}
