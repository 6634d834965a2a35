package search

import (
	"fmt"
	"math"
	"math/big"

	"github.com/samber/lo"

	"github.com/limaJavier/uniquedistancing/internal/grid"
)

// Config describes a single search.
type Config struct {
	Dimension int
	Width     int
	Counters  int

	// OnProgress, when set, is called every ProgressInterval candidates
	// with the number tried so far and the number of solutions found.
	OnProgress       func(tried uint64, found int)
	ProgressInterval uint64
}

func (c Config) Validate() error {
	if c.Dimension < 1 {
		return fmt.Errorf("dimension must be positive: %v", c.Dimension)
	} else if c.Width < 1 {
		return fmt.Errorf("width must be positive: %v", c.Width)
	} else if c.Counters < 1 {
		return fmt.Errorf("counters must be positive: %v", c.Counters)
	}

	points := new(big.Int).Exp(big.NewInt(int64(c.Width)), big.NewInt(int64(c.Dimension)), nil)
	if points.Cmp(new(big.Int).SetUint64(math.MaxUint64)) > 0 {
		return fmt.Errorf("a grid of width %v and dimension %v has too many points to enumerate", c.Width, c.Dimension)
	} else if big.NewInt(int64(c.Counters)).Cmp(points) > 0 {
		return fmt.Errorf("cannot place %v counters on %v grid points", c.Counters, points)
	}
	return nil
}

func (c Config) grid() grid.Grid {
	return grid.New(c.Dimension, c.Width)
}

func (c Config) reportProgress(tried uint64, found int) {
	if c.OnProgress != nil && c.ProgressInterval > 0 && tried%c.ProgressInterval == 0 {
		c.OnProgress(tried, found)
	}
}

// Result is the outcome of a finished search.
type Result struct {
	Grid     grid.Grid
	Counters int
	// Solutions is the canonical solution set, in acceptance order: no two
	// entries are symmetry-equivalent.
	Solutions []Placement
	// Total is the exact number of raw arrangements that were examined.
	Total *big.Int
}

// Solver runs the exhaustive unique-distance search.
type Solver interface {
	// Solve examines every arrangement of counters on the grid and returns
	// the canonical solution set: one representative per symmetry orbit of
	// the arrangements with pairwise-distinct squared distances.
	Solve(config Config) (*Result, error)

	// Verify re-checks a finished result: every solution must lie on the
	// grid, have unique distances, and no two solutions may be
	// symmetry-equivalent.
	Verify(result *Result) bool
}

func verify(result *Result) bool {
	for i, solution := range result.Solutions {
		if len(solution) != result.Counters ||
			!lo.EveryBy(solution, result.Grid.Contains) ||
			!HasUniqueDistances(solution) ||
			ContainsTransform(result.Grid, result.Solutions[:i], solution) {
			return false
		}
	}
	return true
}
