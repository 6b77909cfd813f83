// Package solver_test provides lightweight helpers shared across *_test.go files.
// The helpers stay minimal and avoid duplicating what the focused test files check.
package solver_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subsetsum/solver"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for generated instances.
	seedDet = int64(0)

	// budgetTiny forces many small steps through a Session.
	budgetTiny = 3

	// budgetHuge drives a Session to completion in one step for small inputs.
	budgetHuge = 1 << 40

	// resultsMany is a cap large enough not to bind on small instances.
	resultsMany = 1 << 20
)

// -----------------------------------------------------------------------------
// Builders
// -----------------------------------------------------------------------------

// makeEntries assigns Index = position to each value.
func makeEntries(nums ...uint64) []solver.Entry {
	out := make([]solver.Entry, len(nums))
	var i int
	for i = range nums {
		out[i] = solver.Entry{Value: nums[i], Index: i}
	}

	return out
}

// rangeEntries returns values 1..n.
func rangeEntries(n int) []solver.Entry {
	nums := make([]uint64, n)
	var i int
	for i = range nums {
		nums[i] = uint64(i + 1)
	}

	return makeEntries(nums...)
}

// cfg builds a Config with a background context.
func cfg(target uint64, minCount, maxCount int) solver.Config {
	return solver.Config{Target: target, MinCount: minCount, MaxCount: maxCount, Ctx: context.Background()}
}

// hardEntries returns n even values and an odd target: no solution exists, yet
// neither the suffix-sum nor the value test prunes early, so DFS must grind.
func hardEntries(n int) ([]solver.Entry, uint64) {
	nums := make([]uint64, n)
	var i int
	for i = range nums {
		nums[i] = uint64(2 * (i + 1))
	}

	return makeEntries(nums...), uint64(n*n/2 + 1)
}

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustAdmissible asserts every combination verifies against the input and bounds.
func mustAdmissible(t *testing.T, combos []solver.Combination, entries []solver.Entry, target uint64, minCount, maxCount int) {
	t.Helper()
	for _, c := range combos {
		require.NoError(t, solver.Verify(c, entries, target, minCount, maxCount), "combo %v", c.Indices())
		require.True(t, slices.IsSorted(c.Indices()), "combo must be ordered by original index: %v", c.Indices())
	}
}

// keySet renders combinations as a sorted set of index keys for equality checks.
func keySet(combos []solver.Combination) []string {
	keys := make([]string, 0, len(combos))
	for _, c := range combos {
		key := make([]byte, 0, 4*len(c))
		for _, e := range c {
			key = append(key, byte(e.Index>>8), byte(e.Index), ',')
		}
		keys = append(keys, string(key))
	}
	slices.Sort(keys)

	return keys
}

// drain steps s with budget until finished and returns every step's result.
func drain(t *testing.T, s *solver.Session, budget uint64) []solver.BatchResult {
	t.Helper()
	var out []solver.BatchResult
	for {
		res, err := s.Step(budget)
		require.NoError(t, err)
		out = append(out, res)
		if res.Finished {
			return out
		}
		require.Less(t, len(out), 1<<22, "session did not finish")
	}
}

// collect concatenates NewResults across steps.
func collect(steps []solver.BatchResult) []solver.Combination {
	var all []solver.Combination
	for _, r := range steps {
		all = append(all, r.NewResults...)
	}

	return all
}
