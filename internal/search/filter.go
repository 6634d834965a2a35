package search

import "github.com/limaJavier/uniquedistancing/internal/grid"

// HasUniqueDistances reports whether every unordered pair of points in the
// placement is separated by a distinct squared distance. It returns false
// on the first repeated value.
func HasUniqueDistances(a Placement) bool {
	seen := make(map[int]struct{}, len(a)*(len(a)-1)/2)
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			d := grid.DistanceSquared(a[i], a[j])
			if _, duplicate := seen[d]; duplicate {
				return false
			}
			seen[d] = struct{}{}
		}
	}
	return true
}
