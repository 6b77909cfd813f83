// Package solver finds subsets of positive integers that sum exactly to a target,
// subject to a minimum and maximum element count.
//
// Two modes are offered:
//
//   - Solve — one-shot search for a single admissible combination. The dispatcher
//     picks meet-in-the-middle for n ≤ MITMThreshold (exhaustive, O(2^(n/2)) time
//     and memory) and branch-and-bound DFS otherwise (stops at the first match).
//
//   - Session — a resumable, exhaustive enumeration. The recursive DFS is reified
//     as an explicit stack of frames, so Step(nodeBudget) visits at most nodeBudget
//     nodes and returns, keeping the exact search position for the next call.
//
// SolveAll is the recursive, non-resumable form of the exhaustive search and is
// meant for bounded inputs and verification.
//
// Input contract:
//   - Entries carry Value > 0 and Value ≤ Target; the caller filters raw input
//     (see runner.BuildEntries). The core does not re-validate this.
//   - Sums are uint64; suffix sums saturate at math.MaxUint64 instead of wrapping,
//     which only weakens pruning and never prunes a feasible branch.
//
// Outcomes:
//   - Degenerate inputs (empty, MaxCount < 1, MinCount > n, floor sum above target)
//     are ordinary NotFound results, not errors.
//   - Cancelled is distinct from NotFound and must never be read as a proof of
//     infeasibility. Cancellation is cooperative: Config.Ctx is polled every 4096
//     DFS nodes and every 65536 meet-in-the-middle masks.
//
// Every returned Combination satisfies sum == Target and MinCount ≤ len ≤ MaxCount,
// holds distinct original indices, and is ordered by Entry.Index.
//
// Concurrency: all functions are synchronous and single-threaded. A Session must be
// driven by one caller at a time; independent searches use independent Sessions.
package solver
