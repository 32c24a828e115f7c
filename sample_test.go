package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSamples(t *testing.T) {
	data := []byte(`
- part: 1
  want: 142
  input: |
    1abc2
    treb7uchet
- part: 2
  want: 281
- name: words
  part: 2
  want: 83
  input: "eightwothree\n"
`)
	samples, err := ParseSamples(data)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, Sample{Part: 1, Want: 142, Input: "1abc2\ntreb7uchet\n"}, samples[0])
	assert.Equal(t, samples[0].Input, samples[1].Input)
	assert.Equal(t, "words", samples[2].Name)
	assert.Equal(t, "eightwothree\n", samples[2].Input)
}

func TestParseSamples_CommentedFile(t *testing.T) {
	data := []byte(`# schematic/sample.yaml
- part: 1
  want: 4361
  input: |
    467..114..
    ...*......
- part: 2
  want: 467835
`)
	samples, err := ParseSamples(data)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "467..114..\n...*......\n", samples[0].Input)
	assert.Equal(t, samples[0].Input, samples[1].Input)
	assert.Equal(t, 467835, samples[1].Want)
}

func TestParseSamplesErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "- part: [",
		"bad part":      "- part: 3\n  want: 1\n  input: x\n",
		"missing input": "- part: 1\n  want: 1\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSamples([]byte(data))
			assert.Error(t, err)
		})
	}
	assert.Panics(t, func() { MustParseSamples([]byte("- part: 0")) })
}
