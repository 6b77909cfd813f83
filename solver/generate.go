// Package solver — deterministic instance generation.
//
// GenerateInstance builds reproducible, always-solvable inputs for property tests,
// benchmarks, and demos.
//
// Goals:
//   - Determinism: same (n, k, maxValue, seed) ⇒ identical entries and target.
//   - Encapsulation: a single RNG factory; no time-based sources.
//   - Independence: values and the planted subset come from separate derived streams,
//     so changing k does not reshuffle the values.
//
// Concurrency: math/rand.Rand is not goroutine-safe; every call builds its own streams.
package solver

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

const (
	streamValues uint64 = 1
	streamPlant  uint64 = 2
)

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// permRange returns a Fisher–Yates permutation of 0..n-1 drawn from r.
func permRange(n int, r *rand.Rand) []int {
	p := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// GenerateInstance returns n entries with values in [1, maxValue] (Index = position)
// and the target formed by summing k distinct planted entries, so at least one
// combination of size k exists.
//
// Clamping: n < 0 ⇒ 0; k is clamped to [0, n]; maxValue == 0 ⇒ 1.
// With k == 0 the target is 0, which every search treats as infeasible.
//
// Complexity: O(n) time and memory.
func GenerateInstance(n, k int, maxValue uint64, seed int64) ([]Entry, uint64) {
	n = max(n, 0)
	k = min(max(k, 0), n)
	if maxValue == 0 {
		maxValue = 1
	}

	var (
		base    = rngFromSeed(seed)
		vals    = rand.New(rand.NewSource(deriveSeed(base.Int63(), streamValues)))
		plant   = rand.New(rand.NewSource(deriveSeed(base.Int63(), streamPlant)))
		entries = make([]Entry, n)
		target  uint64
		i       int
	)
	for i = 0; i < n; i++ {
		entries[i] = Entry{Value: 1 + vals.Uint64()%maxValue, Index: i}
	}
	for _, i = range permRange(n, plant)[:k] {
		target = addSat(target, entries[i].Value)
	}

	return entries, target
}
