package search

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NewParallelSolver fans the uniqueness filter out over the given number of
// worker goroutines; workers < 1 means one per CPU. Symmetry reduction
// stays on a single goroutine that consumes filtered candidates in
// enumeration order, so both the check-then-append critical section and the
// chosen orbit representatives are identical to the sequential solver's.
func NewParallelSolver(workers int) Solver {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &parallelSolver{workers: workers}
}

type parallelSolver struct {
	workers int
}

type candidate struct {
	seq       uint64
	placement Placement
	unique    bool
}

func (s *parallelSolver) Solve(config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := config.grid()
	enumerator := NewEnumerator(g, config.Counters)
	result := &Result{Grid: g, Counters: config.Counters, Total: enumerator.Total()}

	jobs := make(chan candidate, 2*s.workers)
	outcomes := make(chan candidate, 2*s.workers)
	group := new(errgroup.Group)

	group.Go(func() error {
		defer close(jobs)
		seq := uint64(0)
		for placement := range enumerator.Placements() {
			jobs <- candidate{seq: seq, placement: placement}
			seq++
		}
		return nil
	})

	filters := new(errgroup.Group)
	for range s.workers {
		filters.Go(func() error {
			for job := range jobs {
				job.unique = HasUniqueDistances(job.placement)
				outcomes <- job
			}
			return nil
		})
	}
	group.Go(func() error {
		defer close(outcomes)
		return filters.Wait()
	})

	// Reduce on the calling goroutine. Workers finish out of order, so
	// outcomes are buffered until the next sequence number arrives.
	pending := make(map[uint64]candidate)
	next := uint64(0)
	tried := uint64(0)
	for outcome := range outcomes {
		pending[outcome.seq] = outcome
		for {
			current, ready := pending[next]
			if !ready {
				break
			}
			delete(pending, next)
			next++

			if current.unique && !ContainsTransform(g, result.Solutions, current.placement) {
				result.Solutions = append(result.Solutions, current.placement)
			}
			tried++
			config.reportProgress(tried, len(result.Solutions))
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *parallelSolver) Verify(result *Result) bool {
	return verify(result)
}
