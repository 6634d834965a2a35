package search

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/uniquedistancing/internal/grid"
)

// Placement is a set of counter positions. The points are kept sorted, so
// two placements holding the same points compare equal regardless of the
// order they were built in.
type Placement []grid.Point

func NewPlacement(points ...grid.Point) Placement {
	placement := make(Placement, 0, len(points))
	for _, p := range points {
		placement = placement.Add(p)
	}
	return placement
}

// Add returns a new placement with p inserted at its sorted position. The
// receiver is left untouched; adding a point that is already present
// returns the placement unchanged.
func (a Placement) Add(p grid.Point) Placement {
	i, found := slices.BinarySearchFunc(a, p, grid.Point.Compare)
	if found {
		return a
	}
	return slices.Insert(slices.Clone(a), i, p)
}

func (a Placement) Contains(p grid.Point) bool {
	_, found := slices.BinarySearchFunc(a, p, grid.Point.Compare)
	return found
}

// Equal reports set equality: same number of points, same points.
func (a Placement) Equal(b Placement) bool {
	return slices.EqualFunc(a, b, grid.Point.Equal)
}

func (a Placement) String() string {
	coords := lo.Map(a, func(p grid.Point, _ int) string { return p.String() })
	return "{" + strings.Join(coords, ", ") + "}"
}
