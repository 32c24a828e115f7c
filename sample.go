package aoc

import (
	"gopkg.in/yaml.v3"

	"github.com/aoclive/aoc/internal/errors"
)

// Sample is a worked example from a puzzle statement with its known answer.
//
// A sample file is a YAML list. An entry without input reuses the input of
// the entry before it, since part 2 usually runs on part 1's example:
//
//	# schematic/sample.yaml
//	- part: 1
//	  want: 4361
//	  input: |
//	    467..114..
//	    ...*......
//	- part: 2
//	  want: 467835
type Sample struct {
	Name  string `yaml:"name,omitempty"`
	Part  int    `yaml:"part"`
	Want  int    `yaml:"want"`
	Input string `yaml:"input,omitempty"`
}

// ParseSamples decodes a sample file.
func ParseSamples(data []byte) ([]Sample, error) {
	var samples []Sample
	if err := yaml.Unmarshal(data, &samples); err != nil {
		return nil, errors.Wrap(err, "decoding samples")
	}
	var lastInput string
	for i := range samples {
		s := &samples[i]
		if s.Part != 1 && s.Part != 2 {
			return nil, errors.Newf("sample %d: part must be 1 or 2, got %d", i+1, s.Part)
		}
		s.Input = Or(s.Input, lastInput)
		if s.Input == "" {
			return nil, errors.Newf("sample %d: no input and no earlier sample to reuse", i+1)
		}
		lastInput = s.Input
	}
	return samples, nil
}

// MustParseSamples is like ParseSamples but panics on error. Days call it
// on their embedded sample file.
func MustParseSamples(data []byte) []Sample {
	return MustGet(ParseSamples(data))
}
