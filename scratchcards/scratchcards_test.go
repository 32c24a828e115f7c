package scratchcards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoclive/aoc"
)

func TestSamples(t *testing.T) {
	d, ok := aoc.Lookup(4)
	require.True(t, ok)
	for part := 1; part <= 2; part++ {
		_, err := d.CheckSamples(part)
		require.NoError(t, err)
	}
}

func TestCard(t *testing.T) {
	cards, err := Parse([]byte("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53\n"))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	c := cards[0]
	assert.Equal(t, []int{41, 48, 83, 86, 17}, c.Winning)
	assert.Equal(t, 4, c.Matches())
	assert.Equal(t, 8, c.Points())
	assert.Zero(t, Card{Winning: []int{1}, Have: []int{2}}.Points())
}

func TestCopies(t *testing.T) {
	d, _ := aoc.Lookup(4)
	cards, err := Parse([]byte(d.Samples[0].Input))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 14, 1}, Copies(cards))

	// Matches past the end of the pile win nothing.
	last := []Card{{ID: 1}, {ID: 2, Winning: []int{5}, Have: []int{5}}}
	assert.Equal(t, []int{1, 1}, Copies(last))
}

func TestOutOfOrder(t *testing.T) {
	_, err := Parse([]byte("Card 2: 1 | 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of order")
}
