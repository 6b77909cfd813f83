package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesOf(nums ...uint64) []Entry {
	out := make([]Entry, len(nums))
	for i, v := range nums {
		out[i] = Entry{Value: v, Index: i}
	}

	return out
}

// TestAddSat checks plain addition and saturation at the uint64 ceiling.
func TestAddSat(t *testing.T) {
	assert.Equal(t, uint64(5), addSat(2, 3))
	assert.Equal(t, uint64(math.MaxUint64), addSat(math.MaxUint64, 1))
	assert.Equal(t, uint64(math.MaxUint64), addSat(math.MaxUint64-1, math.MaxUint64-1))
}

// TestPrepare_SortedAndSuffix verifies ascending order, provenance, and suffix sums.
func TestPrepare_SortedAndSuffix(t *testing.T) {
	p := prepare(entriesOf(5, 1, 4, 2))

	require.Len(t, p.sorted, 4)
	require.Len(t, p.suffix, 5)
	assert.Equal(t, []uint64{1, 2, 4, 5}, Combination(p.sorted).Values())
	assert.Equal(t, []int{1, 3, 2, 0}, Combination(p.sorted).Indices())
	assert.Equal(t, []uint64{12, 11, 9, 5, 0}, p.suffix)
}

// TestPrepare_DoesNotAliasInput ensures the caller's slice is left untouched.
func TestPrepare_DoesNotAliasInput(t *testing.T) {
	in := entriesOf(3, 1, 2)
	_ = prepare(in)
	assert.Equal(t, []uint64{3, 1, 2}, Combination(in).Values())
}

// TestPrepare_SuffixSaturates checks the suffix table never wraps around.
func TestPrepare_SuffixSaturates(t *testing.T) {
	p := prepare(entriesOf(math.MaxUint64-10, math.MaxUint64-20, 7))

	assert.Equal(t, uint64(math.MaxUint64), p.suffix[0])
	assert.Equal(t, uint64(math.MaxUint64), p.suffix[1])
	assert.Equal(t, uint64(math.MaxUint64-10), p.suffix[2])
	assert.Equal(t, uint64(0), p.suffix[3])
	for i := 0; i < len(p.suffix)-1; i++ {
		assert.GreaterOrEqual(t, p.suffix[i], p.suffix[i+1], "suffix must be non-increasing")
	}
}

// TestFeasible covers every pre-check rule.
func TestFeasible(t *testing.T) {
	p := prepare(entriesOf(1, 2, 3, 4, 5))

	cases := []struct {
		name     string
		data     *prepared
		target   uint64
		min, max int
		want     bool
	}{
		{"ok", p, 5, 1, 5, true},
		{"empty", prepare(nil), 10, 1, 5, false},
		{"zero target", p, 0, 0, 5, false},
		{"total below target", p, 16, 1, 5, false},
		{"total equals target", p, 15, 1, 5, true},
		{"max below one", p, 5, 0, 0, false},
		{"min above max", p, 5, 3, 2, false},
		{"min above n", p, 5, 6, 9, false},
		{"floor above target", p, 5, 3, 5, false},
		{"floor equals target", p, 6, 3, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.data.feasible(tc.target, tc.min, tc.max))
		})
	}
}

// TestMaterialize_OrdersByIndex checks reassembled combinations are index-ordered.
func TestMaterialize_OrdersByIndex(t *testing.T) {
	p := prepare(entriesOf(9, 1, 5, 3))
	c := p.materialize([]int{3, 0, 2}) // values 9, 1, 5

	assert.Equal(t, []int{0, 1, 2}, c.Indices())
	assert.Equal(t, []uint64{9, 1, 5}, c.Values())
}

// TestResolveStrategy pins the dispatcher's routing table.
func TestResolveStrategy(t *testing.T) {
	assert.Equal(t, MeetInTheMiddle, resolveStrategy(Auto, MITMThreshold))
	assert.Equal(t, BranchAndBound, resolveStrategy(Auto, MITMThreshold+1))
	assert.Equal(t, MeetInTheMiddle, resolveStrategy(MeetInTheMiddle, 3))
	assert.Equal(t, BranchAndBound, resolveStrategy(MeetInTheMiddle, MITMThreshold+1))
	assert.Equal(t, BranchAndBound, resolveStrategy(BranchAndBound, 3))
}

// TestGenerateInstance_Deterministic checks reproducibility and the planted target.
func TestGenerateInstance_Deterministic(t *testing.T) {
	a, ta := GenerateInstance(30, 5, 1000, 0)
	b, tb := GenerateInstance(30, 5, 1000, defaultRNGSeed)
	require.Equal(t, a, b, "seed 0 must map to the default seed")
	require.Equal(t, ta, tb)

	c, tc := GenerateInstance(30, 5, 1000, 99)
	assert.NotEqual(t, Combination(a).Values(), Combination(c).Values())
	assert.NotZero(t, tc)

	for i, e := range a {
		assert.Equal(t, i, e.Index)
		assert.GreaterOrEqual(t, e.Value, uint64(1))
		assert.LessOrEqual(t, e.Value, uint64(1000))
	}
}

// TestGenerateInstance_Clamps checks degenerate parameters.
func TestGenerateInstance_Clamps(t *testing.T) {
	e, target := GenerateInstance(-3, 2, 10, 1)
	assert.Empty(t, e)
	assert.Zero(t, target)

	e, target = GenerateInstance(4, 10, 0, 1)
	assert.Len(t, e, 4)
	assert.Equal(t, uint64(4), target, "maxValue 0 means all ones; k clamps to n")
}

// TestPermRange checks the Fisher–Yates permutation is a permutation.
func TestPermRange(t *testing.T) {
	p := permRange(50, rngFromSeed(7))
	seen := make(map[int]bool, len(p))
	for _, v := range p {
		require.False(t, seen[v])
		seen[v] = true
	}
	assert.Len(t, seen, 50)
}
