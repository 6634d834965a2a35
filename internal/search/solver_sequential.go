package search

// NewSequentialSolver returns the single-threaded solver: one loop over the
// enumerator, filtering and reducing each candidate in turn.
func NewSequentialSolver() Solver {
	return &sequentialSolver{}
}

type sequentialSolver struct{}

func (s *sequentialSolver) Solve(config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := config.grid()
	enumerator := NewEnumerator(g, config.Counters)
	result := &Result{Grid: g, Counters: config.Counters, Total: enumerator.Total()}

	tried := uint64(0)
	for candidate := range enumerator.Placements() {
		// A candidate is only compared against already-accepted solutions:
		// the first member of each orbit to pass the filter becomes its
		// representative, so later members always find it here.
		if HasUniqueDistances(candidate) && !ContainsTransform(g, result.Solutions, candidate) {
			result.Solutions = append(result.Solutions, candidate)
		}
		tried++
		config.reportProgress(tried, len(result.Solutions))
	}
	return result, nil
}

func (s *sequentialSolver) Verify(result *Result) bool {
	return verify(result)
}
