package grid

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountArrangements(t *testing.T) {
	// Arrange
	scenarios := []struct {
		dimension, width, n int
		expected            int64
	}{
		{2, 3, 3, 84},      // C(9, 3)
		{2, 6, 6, 1947792}, // C(36, 6)
		{4, 3, 2, 3240},    // C(81, 2)
		{1, 1, 1, 1},
		{2, 3, 0, 1},
		{2, 2, 5, 0}, // more counters than points
	}

	for _, scenario := range scenarios {
		// Act
		count := CountArrangements(scenario.dimension, scenario.width, scenario.n)

		// Assert: compare numerically, not by internal representation
		assert.Equal(t, 0, big.NewInt(scenario.expected).Cmp(count), "have %v, want %v", count, scenario.expected)
	}
}

func TestCountArrangementsMatchesBinomial(t *testing.T) {
	// Large grids must stay exact, with no fixed-width overflow.
	for dimension := 1; dimension <= 6; dimension++ {
		for width := 1; width <= 6; width++ {
			for n := 0; n <= 10; n++ {
				points := int64(1)
				for range dimension {
					points *= int64(width)
				}

				expected := new(big.Int).Binomial(points, int64(n))
				count := CountArrangements(dimension, width, n)
				assert.Equal(t, 0, expected.Cmp(count), "C(%v, %v): have %v, want %v", points, n, count, expected)
			}
		}
	}
}
