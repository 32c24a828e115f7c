package lex

import (
	"strconv"

	"github.com/aoclive/aoc/internal/errors"
)

// Int parses s.Text as a base-10 signed integer that must fit in bits.
// A value out of range is an *OverflowError.
func Int(s Span, bits int) (int64, error) {
	v, err := strconv.ParseInt(s.Text, 10, bits)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, errors.WithStack(&OverflowError{Pos: s.Pos, Text: s.Text, Bits: bits})
	}
	return 0, errors.Wrapf(err, "%s: %q", s.Pos, s.Text)
}
