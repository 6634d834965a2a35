package search

import (
	"iter"
	"math/big"

	"github.com/limaJavier/uniquedistancing/internal/grid"
)

// Enumerator produces every placement of a fixed number of counters on a
// grid.
type Enumerator interface {
	// Placements yields each combination of the grid's points exactly once,
	// in lexicographic order of point indices. The sequence is lazy and
	// restartable.
	Placements() iter.Seq[Placement]
	// Total returns the exact number of placements the sequence yields.
	Total() *big.Int
}

func NewEnumerator(g grid.Grid, counters int) Enumerator {
	return &combinationEnumerator{grid: g, counters: counters}
}

type combinationEnumerator struct {
	grid     grid.Grid
	counters int
}

func (e *combinationEnumerator) Total() *big.Int {
	return grid.CountArrangements(e.grid.Dimension, e.grid.Width, e.counters)
}

func (e *combinationEnumerator) Placements() iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		positions := e.grid.Size()
		if uint64(e.counters) > positions {
			return
		}
		indices := make([]uint64, e.counters)
		for i := range indices {
			indices[i] = uint64(i)
		}
		for {
			if !yield(e.placement(indices)) {
				return
			}
			if !nextCombination(indices, positions) {
				return
			}
		}
	}
}

// placement decodes a strictly ascending index combination. Ascending
// indices decode to points in sorted order, so no re-sort is needed.
func (e *combinationEnumerator) placement(indices []uint64) Placement {
	placement := make(Placement, len(indices))
	for i, index := range indices {
		placement[i] = e.grid.PointAt(index)
	}
	return placement
}

// nextCombination advances indices to the next combination in lexicographic
// order, reporting false once the last combination has been consumed.
func nextCombination(indices []uint64, positions uint64) bool {
	for i := len(indices) - 1; i >= 0; i-- {
		if indices[i] < positions-uint64(len(indices)-i) {
			indices[i]++
			for j := i + 1; j < len(indices); j++ {
				indices[j] = indices[j-1] + 1
			}
			return true
		}
	}
	return false
}
