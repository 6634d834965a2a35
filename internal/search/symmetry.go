package search

import (
	"iter"

	"github.com/samber/lo"

	"github.com/limaJavier/uniquedistancing/internal/grid"
)

// Transform is one element of the grid's symmetry group: an axis
// permutation followed by per-axis reflection. Output axis i takes its
// value from input axis Perm[i]; when bit i of Flip is set that value is
// reflected to Width-1-x.
type Transform struct {
	Flip int
	Perm []int
}

// Apply maps every point of the placement through the transform, yielding
// a placement of the same cardinality. Transforms are bijections on the
// grid, so the result is again a valid placement.
func (t Transform) Apply(g grid.Grid, a Placement) Placement {
	b := make(Placement, 0, len(a))
	for _, p := range a {
		b = b.Add(t.applyPoint(g, p))
	}
	return b
}

func (t Transform) applyPoint(g grid.Grid, p grid.Point) grid.Point {
	q := make(grid.Point, g.Dimension)
	for i := range q {
		x := p[t.Perm[i]]
		if t.Flip&(1<<i) != 0 {
			x = g.Width - 1 - x
		}
		q[i] = x
	}
	return q
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	inverse := Transform{Perm: make([]int, len(t.Perm))}
	for i, j := range t.Perm {
		inverse.Perm[j] = i
		if t.Flip&(1<<i) != 0 {
			inverse.Flip |= 1 << j
		}
	}
	return inverse
}

// Transforms yields all 2^dimension * dimension! elements of the symmetry
// group of a dimension-dimensional grid.
func Transforms(dimension int) iter.Seq[Transform] {
	return func(yield func(Transform) bool) {
		perms := permutations(dimension)
		for flip := 0; flip < 1<<dimension; flip++ {
			for _, perm := range perms {
				if !yield(Transform{Flip: flip, Perm: perm}) {
					return
				}
			}
		}
	}
}

// permutations builds every bijection of [0, n).
func permutations(n int) [][]int {
	result := make([][]int, 0)
	buildPermutations(make([]int, 0, n), make([]bool, n), &result)
	return result
}

func buildPermutations(current []int, used []bool, result *[][]int) {
	if len(current) == cap(current) {
		permutation := make([]int, len(current))
		copy(permutation, current)
		*result = append(*result, permutation)
		return
	}

	for i := range used {
		if used[i] {
			continue
		}
		used[i] = true
		buildPermutations(append(current, i), used, result)
		used[i] = false
	}
}

// IsTransformOf reports whether some symmetry transform maps a exactly
// onto b, stopping at the first match.
func IsTransformOf(g grid.Grid, a, b Placement) bool {
	for t := range Transforms(g.Dimension) {
		if t.Apply(g, a).Equal(b) {
			return true
		}
	}
	return false
}

// ContainsTransform reports whether the solution set already holds a
// symmetry-equivalent of the candidate.
func ContainsTransform(g grid.Grid, solutions []Placement, candidate Placement) bool {
	return lo.SomeBy(solutions, func(s Placement) bool {
		return IsTransformOf(g, candidate, s)
	})
}
