package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/uniquedistancing/internal/grid"
	"github.com/limaJavier/uniquedistancing/internal/search"
)

func TestArrangementPlane(t *testing.T) {
	// Arrange: one of the five canonical 3x3 solutions
	g := grid.New(2, 3)
	a := search.NewPlacement(grid.Point{2, 0}, grid.Point{0, 1}, grid.Point{1, 1})

	// Act & Assert
	assert.Equal(t, "..*\n**.\n...\n", Arrangement(g, a))
}

func TestArrangementSlices(t *testing.T) {
	// Arrange
	g := grid.New(3, 2)
	a := search.NewPlacement(grid.Point{0, 0, 0}, grid.Point{1, 1, 1})

	// Act & Assert: z slices side by side, rows by y
	assert.Equal(t, "*.  ..\n..  .*\n", Arrangement(g, a))
}

func TestArrangementFallback(t *testing.T) {
	// Arrange
	g := grid.New(4, 2)
	a := search.NewPlacement(grid.Point{0, 0, 0, 0}, grid.Point{1, 1, 1, 1})

	// Act & Assert
	assert.Equal(t, "{(0,0,0,0), (1,1,1,1)}\n", Arrangement(g, a))
}

func TestArrangementEmpty(t *testing.T) {
	// Arrange
	g := grid.New(2, 2)

	// Act & Assert
	assert.Equal(t, "..\n..\n", Arrangement(g, search.NewPlacement()))
}
