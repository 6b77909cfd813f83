package runner

import (
	"math"

	"github.com/katalvlaran/subsetsum/solver"
)

// BuildEntries converts raw values into solver entries. Each value is truncated to
// an integer; only 0 < v ≤ target survive. NaN, ±Inf, negatives, zeros, and values
// above target are dropped, and every survivor keeps its position in values as Index.
func BuildEntries(values []float64, target uint64) []solver.Entry {
	out := make([]solver.Entry, 0, len(values))
	for i, f := range values {
		if math.IsNaN(f) || f < 1 || f >= math.MaxUint64 {
			continue
		}
		v := uint64(f)
		if v == 0 || v > target {
			continue
		}
		out = append(out, solver.Entry{Value: v, Index: i})
	}

	return out
}

// TargetFromFloat truncates a host-side target. ok is false for NaN, negatives,
// and values that do not fit in uint64.
func TargetFromFloat(f float64) (target uint64, ok bool) {
	if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 {
		return 0, false
	}

	return uint64(f), true
}
