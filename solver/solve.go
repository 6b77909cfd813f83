// Package solver — one-shot dispatcher and the non-resumable exhaustive search.
package solver

// Solve finds ONE combination of entries summing to cfg.Target with a size in
// [cfg.MinCount, cfg.MaxCount].
//
// Routing (after the shared feasibility pre-check):
//   - Auto: n ≤ MITMThreshold → meet-in-the-middle; otherwise branch-and-bound.
//   - MeetInTheMiddle: forced, but n > MITMThreshold still falls back to
//     branch-and-bound to keep memory bounded.
//   - BranchAndBound: forced DFS regardless of n.
//
// Degenerate inputs return NotFound with Strategy == Auto and Nodes == 0.
// Cancellation (cfg.Ctx) yields Cancelled, never NotFound.
func Solve(entries []Entry, cfg Config) Result {
	cfg = cfg.normalize()
	data := prepare(entries)
	if !data.feasible(cfg.Target, cfg.MinCount, cfg.MaxCount) {
		return Result{Status: NotFound}
	}

	var (
		combo Combination
		st    Status
		nodes uint64
		algo  = resolveStrategy(cfg.Strategy, len(data.sorted))
	)
	switch algo {
	case MeetInTheMiddle:
		combo, st, nodes = meetInTheMiddle(data, cfg)
	default:
		combo, st, nodes = branchAndBoundFirst(data, cfg)
	}

	return Result{Status: st, Combination: combo, Strategy: algo, Nodes: nodes}
}

// resolveStrategy maps the requested strategy onto the one that will run for n entries.
func resolveStrategy(s Strategy, n int) Strategy {
	switch s {
	case BranchAndBound:
		return BranchAndBound
	default:
		if n <= MITMThreshold {
			return MeetInTheMiddle
		}

		return BranchAndBound
	}
}

// SolveAll enumerates up to maxResults combinations with the recursive
// branch-and-bound search. cfg.Strategy is ignored.
//
// Status is Cancelled when cfg.Ctx fired (the returned slice holds what was found
// before that), Found when at least one combination exists, NotFound otherwise.
// maxResults ≤ 0 returns (nil, NotFound) without searching.
//
// Intended for bounded inputs and verification; use a Session for streaming.
func SolveAll(entries []Entry, cfg Config, maxResults int) ([]Combination, Status) {
	cfg = cfg.normalize()
	if maxResults <= 0 {
		return nil, NotFound
	}
	data := prepare(entries)
	if !data.feasible(cfg.Target, cfg.MinCount, cfg.MaxCount) {
		return nil, NotFound
	}

	e := newBBEngine(data, cfg)
	e.maxResults = maxResults
	e.all(0, 0)

	switch {
	case e.canceled:
		return e.results, Cancelled
	case len(e.results) > 0:
		return e.results, Found
	default:
		return nil, NotFound
	}
}
