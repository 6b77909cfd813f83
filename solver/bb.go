// Package solver — Branch-and-Bound DFS over sorted-ascending entries.
//
// A node is (start, sum, path). At each node:
//  1. sum == Target and len(path) ≥ MinCount → success.
//  2. len(path) ≥ MaxCount                    → dead end.
//  3. n−start < MinCount−len(path)           → dead end.
//  4. Otherwise try children i = start, start+1, … and stop the scan as soon as
//     sorted[i].Value > Target−sum, suffix[i] < Target−sum, or n−i < need.
//     Values ascend, so every later sibling fails the same test.
//
// Two drivers share the engine:
//   - first — stops at the first success (used by Solve for n > MITMThreshold).
//   - all   — records every success up to a cap and backtracks immediately after a
//     match: values are positive, so an exact path cannot be extended.
//
// Cancellation: Ctx is polled every 4096 visited nodes to keep the check off the
// hot path; once observed, the whole search unwinds with Cancelled.
//
// Complexity: exponential worst case; per node O(1) plus the child scan.
// Memory: O(MaxCount) for the path (plus results for all).
package solver

// bbEngine holds prepared data, bounds, and the mutable DFS state.
type bbEngine struct {
	data     *prepared
	cfg      Config
	steps    uint64
	canceled bool
	path     []int

	// all-mode collector
	results    []Combination
	maxResults int
}

// newBBEngine wires an engine for a normalized cfg.
func newBBEngine(data *prepared, cfg Config) *bbEngine {
	return &bbEngine{
		data: data,
		cfg:  cfg,
		path: make([]int, 0, min(cfg.MaxCount, len(data.sorted))),
	}
}

// visit counts a node and performs the sparse cancellation poll.
// It reports true once cancellation has been observed.
func (e *bbEngine) visit() bool {
	e.steps++
	if e.steps&dfsCheckMask == 0 && e.cfg.Ctx.Err() != nil {
		e.canceled = true
	}

	return e.canceled
}

// need returns how many more elements MinCount still requires.
func (e *bbEngine) need() int {
	return max(e.cfg.MinCount-len(e.path), 0)
}

// first searches from start with running sum; it returns Found with e.path holding
// the answer, NotFound, or Cancelled.
func (e *bbEngine) first(start int, sum uint64) Status {
	if e.visit() {
		return Cancelled
	}
	if sum == e.cfg.Target && len(e.path) >= e.cfg.MinCount {
		return Found
	}
	if len(e.path) >= e.cfg.MaxCount {
		return NotFound
	}

	var (
		n         = len(e.data.sorted)
		need      = e.need()
		remaining = e.cfg.Target - sum
		i         int
		v         uint64
	)
	if n-start < need {
		return NotFound
	}
	for i = start; i < n; i++ {
		v = e.data.sorted[i].Value
		if v > remaining || e.data.suffix[i] < remaining || n-i < need {
			break
		}
		e.path = append(e.path, i)
		switch e.first(i+1, sum+v) {
		case Found:
			return Found
		case Cancelled:
			return Cancelled
		}
		e.path = e.path[:len(e.path)-1]
	}

	return NotFound
}

// all records every admissible path below (start, sum) until maxResults is reached
// or cancellation is observed.
func (e *bbEngine) all(start int, sum uint64) {
	if e.visit() {
		return
	}
	if sum == e.cfg.Target && len(e.path) >= e.cfg.MinCount {
		e.results = append(e.results, e.data.materialize(e.path))

		return
	}
	if len(e.path) >= e.cfg.MaxCount || len(e.results) >= e.maxResults {
		return
	}

	var (
		n         = len(e.data.sorted)
		need      = e.need()
		remaining = e.cfg.Target - sum
		i         int
		v         uint64
	)
	if n-start < need {
		return
	}
	for i = start; i < n; i++ {
		v = e.data.sorted[i].Value
		if v > remaining || e.data.suffix[i] < remaining || n-i < need {
			break
		}
		if len(e.results) >= e.maxResults || e.canceled {
			return
		}
		e.path = append(e.path, i)
		e.all(i+1, sum+v)
		e.path = e.path[:len(e.path)-1]
	}
}

// branchAndBoundFirst runs the single-result DFS on a feasible instance.
func branchAndBoundFirst(data *prepared, cfg Config) (Combination, Status, uint64) {
	e := newBBEngine(data, cfg)
	st := e.first(0, 0)
	if st != Found {
		return nil, st, e.steps
	}

	return data.materialize(e.path), Found, e.steps
}
