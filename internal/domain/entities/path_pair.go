package entities

import "fmt"

// PathPair binds one input assembly to the path its rewritten copy is written to.
type PathPair struct {
	Input  string
	Output string
}

// String renders the pair the way it is reported in logs.
func (p PathPair) String() string {
	return fmt.Sprintf("%s -> %s", p.Input, p.Output)
}

// NewPathPairs zips the input and output path lists by position.
//
// Behaviour:
//   - An empty input list fails with ErrNoInputs.
//   - An empty output list fails with ErrNoOutputs.
//   - Lists of different length fail with ErrCountMismatch.
//   - Otherwise inputs[i] is paired with outputs[i], in order, without
//     deduplication and without touching the filesystem.
func NewPathPairs(inputs, outputs []string) ([]PathPair, error) {
	if len(inputs) == 0 {
		return nil, newConfigurationError(ErrNoInputs, "must supply at least one input path using -i")
	}
	if len(outputs) == 0 {
		return nil, newConfigurationError(ErrNoOutputs, "must supply at least one output path using -o")
	}
	if len(inputs) != len(outputs) {
		return nil, newConfigurationError(ErrCountMismatch, fmt.Sprintf(
			"number of input paths (%d) must equal number of output paths (%d)",
			len(inputs), len(outputs),
		))
	}

	pairs := make([]PathPair, 0, len(inputs))
	for i := range inputs {
		pairs = append(pairs, PathPair{Input: inputs[i], Output: outputs[i]})
	}
	return pairs, nil
}

// OutputsOf returns the output paths of the given pairs, in pair order.
func OutputsOf(pairs []PathPair) []string {
	outputs := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		outputs = append(outputs, pair.Output)
	}
	return outputs
}
