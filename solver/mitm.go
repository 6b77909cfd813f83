// Package solver — meet-in-the-middle enumerator for n ≤ MITMThreshold.
//
// The sorted entries are split at mid = n/2:
//  1. Every left subset (bitmask over ≤ 20 bits) is summed with an early exit as soon
//     as the running sum exceeds the target. Survivors with count ≤ MaxCount are
//     indexed sum → [(count, mask)].
//  2. Every right subset with rsum ≤ target probes the index for target−rsum; the
//     first left candidate whose combined count lies in [MinCount, MaxCount] wins.
//
// The search is exhaustive: NotFound is a proof of infeasibility. Any admissible
// pair may be returned; no ordering among solutions is promised.
//
// Complexity: O(2^(n/2)·n/2) time, O(2^(n/2)) memory.
package solver

// leftSubset is one indexed left-half subset.
type leftSubset struct {
	count int
	mask  uint64
}

// subsetSum sums the entries selected by mask, stopping once the target is exceeded.
// ok is false when the running sum went past target.
func subsetSum(half []Entry, mask uint64, target uint64) (sum uint64, count int, ok bool) {
	var bit int
	for bit = 0; bit < len(half); bit++ {
		if mask&(1<<uint(bit)) == 0 {
			continue
		}
		sum = addSat(sum, half[bit].Value)
		count++
		if sum > target {
			return sum, count, false
		}
	}

	return sum, count, true
}

// meetInTheMiddle searches data for one admissible combination. cfg must be normalized
// and the instance must have passed feasible().
func meetInTheMiddle(data *prepared, cfg Config) (Combination, Status, uint64) {
	var (
		n         = len(data.sorted)
		mid       = n / 2
		left      = data.sorted[:mid]
		right     = data.sorted[mid:]
		leftCount = uint64(1) << uint(len(left))
		nodes     uint64
		mask      uint64
	)

	index := make(map[uint64][]leftSubset, leftCount)
	for mask = 0; mask < leftCount; mask++ {
		if mask&mitmCheckMask == 0 && cfg.Ctx.Err() != nil {
			return nil, Cancelled, nodes
		}
		nodes++
		sum, count, ok := subsetSum(left, mask, cfg.Target)
		if !ok || count > cfg.MaxCount {
			continue
		}
		index[sum] = append(index[sum], leftSubset{count: count, mask: mask})
	}

	rightCount := uint64(1) << uint(len(right))
	for mask = 0; mask < rightCount; mask++ {
		if mask&mitmCheckMask == 0 && cfg.Ctx.Err() != nil {
			return nil, Cancelled, nodes
		}
		nodes++
		rsum, rcount, ok := subsetSum(right, mask, cfg.Target)
		if !ok {
			continue
		}
		for _, ls := range index[cfg.Target-rsum] {
			total := ls.count + rcount
			if total < cfg.MinCount || total > cfg.MaxCount {
				continue
			}

			return joinHalves(data, mid, ls.mask, mask, total), Found, nodes
		}
	}

	return nil, NotFound, nodes
}

// joinHalves reassembles a left/right mask pair into a Combination ordered by Index.
// Right-half bits are offset by mid to address data.sorted directly.
func joinHalves(data *prepared, mid int, lmask, rmask uint64, total int) Combination {
	var (
		path = make([]int, 0, total)
		n    = len(data.sorted)
		bit  int
	)
	for bit = 0; bit < mid; bit++ {
		if lmask&(1<<uint(bit)) != 0 {
			path = append(path, bit)
		}
	}
	for bit = 0; bit < n-mid; bit++ {
		if rmask&(1<<uint(bit)) != 0 {
			path = append(path, mid+bit)
		}
	}

	return data.materialize(path)
}
