package search

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	file := path.Join(t.TempDir(), "job.json")
	assert.NoError(t, os.WriteFile(file, []byte(content), 0644))
	return file
}

func TestInputFromJson(t *testing.T) {
	// Arrange
	file := writeJobFile(t, `{
		"dimension": 3,
		"width": 4,
		"counters": 5,
		"parallel": true,
		"workers": 8
	}`)

	// Act
	input, err := InputFromJson(file)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, SearchInput{Dimension: 3, Width: 4, Counters: 5, Parallel: true, Workers: 8}, input)
}

func TestInputCountersDefaultToWidth(t *testing.T) {
	// Arrange
	file := writeJobFile(t, `{"dimension": 2, "width": 6}`)

	// Act
	input, err := InputFromJson(file)
	assert.NoError(t, err)
	config := input.Config()

	// Assert
	assert.Equal(t, 6, config.Counters)
	assert.NoError(t, config.Validate())
}

func TestInputFromJsonMissingFile(t *testing.T) {
	_, err := InputFromJson(path.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestInputFromJsonMalformed(t *testing.T) {
	file := writeJobFile(t, `{"width": `)
	_, err := InputFromJson(file)
	assert.Error(t, err)
}

func TestInputSolverSelection(t *testing.T) {
	assert.IsType(t, &sequentialSolver{}, SearchInput{}.Solver())
	assert.IsType(t, &parallelSolver{}, SearchInput{Parallel: true}.Solver())
}
