package lenses

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/lex"
)

func TestSamples(t *testing.T) {
	d, ok := aoc.Lookup(15)
	require.True(t, ok)
	for part := 1; part <= 2; part++ {
		_, err := d.CheckSamples(part)
		require.NoError(t, err)
	}
}

func TestHASH(t *testing.T) {
	assert.Equal(t, 52, HASH("HASH"))
	assert.Equal(t, 30, HASH("rn=1"))
	assert.Equal(t, 0, HASH("rn"))
	assert.Equal(t, 3, HASH("pc"))
	assert.Equal(t, HASH("rn=1"), HASH("rn=\n1"))

	var h Hash
	fmt.Fprint(&h, "HA", "SH")
	assert.Equal(t, Hash(52), h)
}

func TestParse(t *testing.T) {
	steps, err := Parse([]byte("rn=1,cm-\n"))
	require.NoError(t, err)
	assert.Equal(t, []Step{
		{Text: "rn=1", Label: "rn", Op: '=', Focal: 1},
		{Text: "cm-", Label: "cm", Op: '-'},
	}, steps)

	for _, in := range []string{"rn=", "rn=1,,cm-", "rn1", "=1", "rn=0"} {
		_, err := Parse([]byte(in))
		var pe *lex.ParseError
		assert.True(t, errors.As(err, &pe), "input %q: %v", in, err)
	}
}

func TestBoxes(t *testing.T) {
	var b Boxes
	for _, s := range []Step{
		{Label: "rn", Op: '=', Focal: 1},
		{Label: "cm", Op: '-'},
		{Label: "qp", Op: '=', Focal: 3},
		{Label: "cm", Op: '=', Focal: 2},
		{Label: "qp", Op: '-'},
	} {
		b.Apply(s)
	}
	assert.Equal(t, []lens{{"rn", 1}, {"cm", 2}}, b[0])
	assert.Empty(t, b[1])
	assert.Equal(t, 1*1*1+1*2*2, b.Power())
}
