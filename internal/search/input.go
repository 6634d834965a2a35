package search

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// SearchInput is the JSON job-file form of a search request.
type SearchInput struct {
	Dimension int
	Width     int
	Counters  int
	Parallel  bool
	Workers   int
}

// Config translates the input into a search configuration. A missing
// counters value defaults to the grid width, mirroring the usual statement
// of the puzzle (N counters on an NxN grid).
func (input SearchInput) Config() Config {
	counters := input.Counters
	if counters == 0 {
		counters = input.Width
	}
	return Config{
		Dimension: input.Dimension,
		Width:     input.Width,
		Counters:  counters,
	}
}

// Solver returns the solver the input asks for.
func (input SearchInput) Solver() Solver {
	if input.Parallel {
		return NewParallelSolver(input.Workers)
	}
	return NewSequentialSolver()
}

func InputFromJson(file string) (SearchInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return SearchInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return SearchInput{}, err
	}

	var input SearchInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return SearchInput{}, err
	}
	return input, nil
}
