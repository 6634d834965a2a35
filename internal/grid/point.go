package grid

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Point is a lattice point: one integer coordinate per spatial dimension.
// Points are treated as immutable values once built.
type Point []int

func (p Point) Dimension() int {
	return len(p)
}

// Compare orders points lexicographically by their coordinates.
func (p Point) Compare(q Point) int {
	return slices.Compare(p, q)
}

func (p Point) Equal(q Point) bool {
	return slices.Equal(p, q)
}

func (p Point) String() string {
	coords := make([]string, len(p))
	for i, x := range p {
		coords[i] = strconv.Itoa(x)
	}
	return "(" + strings.Join(coords, ",") + ")"
}

// DistanceSquared returns the sum of squared per-axis differences between
// two points of equal dimension. Comparing points of different dimensions
// is a programming error and panics.
func DistanceSquared(p, q Point) int {
	if len(p) != len(q) {
		panic(fmt.Sprintf("distance between points of dimension %d and %d", len(p), len(q)))
	}
	total := 0
	for i := range p {
		d := p[i] - q[i]
		total += d * d
	}
	return total
}
