// Package solver — input preparation and the shared feasibility pre-check.
//
// prepare sorts entries ascending by value and builds the suffix-sum table
// suffix[i] = Σ sorted[i:].Value (saturating), suffix[n] = 0. With values sorted
// ascending, the three DFS pruning rules become O(1) tests at any index:
//
//	sorted[i].Value > remaining  → every later value is too large as well
//	suffix[i]       < remaining  → even taking everything left cannot reach target
//	n-i             < need       → not enough elements left for MinCount
//
// Complexity: O(n log n) time (sort), O(n) memory.
package solver

import (
	"cmp"
	"slices"
)

// prepared is immutable once built.
type prepared struct {
	sorted []Entry
	suffix []uint64
}

// prepare copies entries, sorts them by value, and builds saturating suffix sums.
func prepare(entries []Entry) *prepared {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int { return cmp.Compare(a.Value, b.Value) })

	var (
		n      = len(sorted)
		suffix = make([]uint64, n+1)
		i      int
	)
	for i = n - 1; i >= 0; i-- {
		suffix[i] = addSat(suffix[i+1], sorted[i].Value)
	}

	return &prepared{sorted: sorted, suffix: suffix}
}

// feasible runs the O(n) pre-check shared by every search mode. A false result
// means no combination can exist and the caller must not traverse.
func (p *prepared) feasible(target uint64, minCount, maxCount int) bool {
	n := len(p.sorted)
	switch {
	case n == 0, target == 0:
		return false
	case p.suffix[0] < target:
		return false
	case maxCount < 1, minCount > maxCount, minCount > n:
		return false
	}

	// Floor: the minCount smallest values are the cheapest admissible start.
	if minCount > 0 {
		var (
			floor uint64
			i     int
		)
		for i = 0; i < minCount; i++ {
			floor = addSat(floor, p.sorted[i].Value)
		}
		if floor > target {
			return false
		}
	}

	return true
}

// materialize converts a path of sorted positions into a Combination ordered by Index.
func (p *prepared) materialize(path []int) Combination {
	c := make(Combination, len(path))
	for k, i := range path {
		c[k] = p.sorted[i]
	}
	slices.SortFunc(c, func(a, b Entry) int { return cmp.Compare(a.Index, b.Index) })

	return c
}
