// Package solver — post-hoc combination verification.
//
// The search guarantees its invariants structurally; Verify exists for callers
// that receive combinations across a boundary (and for tests) and want to check
// them against the input they hold.
package solver

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Verify checks that c is an admissible answer for entries:
//   - sum(c) == target, computed with saturating addition,
//   - minCount ≤ len(c) ≤ maxCount,
//   - every Index is distinct within c,
//   - every entry of c exists in entries with the same Value.
//
// Errors are the sentinels ErrSumMismatch, ErrCountOutOfRange, ErrDuplicateIndex,
// and ErrUnknownEntry, wrapped with detail.
//
// Complexity: O(n + k) with n = len(entries), k = len(c).
func Verify(c Combination, entries []Entry, target uint64, minCount, maxCount int) error {
	if len(c) < minCount || len(c) > maxCount {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrCountOutOfRange, len(c), minCount, maxCount)
	}

	var (
		byIndex = make(map[int]uint64, len(entries))
		known   = roaring.New()
		seen    = roaring.New()
	)
	for _, e := range entries {
		if key, ok := bitmapKey(e.Index); ok {
			known.Add(key)
			byIndex[e.Index] = e.Value
		}
	}
	for _, e := range c {
		key, ok := bitmapKey(e.Index)
		if !ok || !known.Contains(key) || byIndex[e.Index] != e.Value {
			return fmt.Errorf("%w: index %d value %d", ErrUnknownEntry, e.Index, e.Value)
		}
		if !seen.CheckedAdd(key) {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, e.Index)
		}
	}
	if sum := c.Sum(); sum != target {
		return fmt.Errorf("%w: got %d want %d", ErrSumMismatch, sum, target)
	}

	return nil
}

// bitmapKey maps an original index onto the 32-bit roaring key space.
func bitmapKey(i int) (uint32, bool) {
	if i < 0 || uint64(i) > math.MaxUint32 {
		return 0, false
	}

	return uint32(i), true
}
