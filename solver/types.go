// Package solver — shared types, sentinels, and tuning constants.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// MITMThreshold is the largest entry count routed to meet-in-the-middle by Auto.
// Beyond it the 2^(n/2) tables stop fitting comfortably in memory.
const MITMThreshold = 40

const (
	// dfsCheckMask sets the DFS cancellation poll interval (every 4096 nodes).
	dfsCheckMask = 4095

	// mitmCheckMask sets the meet-in-the-middle poll interval (every 65536 masks).
	mitmCheckMask = 0xFFFF
)

var (
	// ErrSessionClosed is returned by Step on a Session after Close.
	ErrSessionClosed = errors.New("solver: session closed")

	// ErrSumMismatch reports a combination whose values do not sum to the target.
	ErrSumMismatch = errors.New("solver: combination sum does not match target")

	// ErrCountOutOfRange reports a combination outside [MinCount, MaxCount].
	ErrCountOutOfRange = errors.New("solver: combination size out of range")

	// ErrDuplicateIndex reports an original index used twice in one combination.
	ErrDuplicateIndex = errors.New("solver: duplicate original index")

	// ErrUnknownEntry reports an entry that is not part of the input.
	ErrUnknownEntry = errors.New("solver: entry not present in input")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// Entry is a value together with its position in the caller's original input.
type Entry struct {
	Value uint64
	Index int
}

// Combination is an admissible subset, ordered ascending by Entry.Index.
type Combination []Entry

// Len returns the number of entries.
func (c Combination) Len() int { return len(c) }

// Sum returns the saturating sum of all values.
func (c Combination) Sum() uint64 {
	var s uint64
	for _, e := range c {
		s = addSat(s, e.Value)
	}

	return s
}

// Indices returns the original indices in combination order.
func (c Combination) Indices() []int {
	out := make([]int, len(c))
	for i, e := range c {
		out[i] = e.Index
	}

	return out
}

// Values returns the values in combination order.
func (c Combination) Values() []uint64 {
	out := make([]uint64, len(c))
	for i, e := range c {
		out[i] = e.Value
	}

	return out
}

// Strategy selects the one-shot algorithm.
type Strategy int

const (
	// Auto routes n ≤ MITMThreshold to MeetInTheMiddle, larger inputs to BranchAndBound.
	Auto Strategy = iota

	// MeetInTheMiddle forces the split-and-hash enumerator (falls back for n > MITMThreshold).
	MeetInTheMiddle

	// BranchAndBound forces the pruning DFS.
	BranchAndBound
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case MeetInTheMiddle:
		return "meet-in-the-middle"
	case BranchAndBound:
		return "branch-and-bound"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a config string onto a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "mitm", "meet-in-the-middle":
		return MeetInTheMiddle, nil
	case "bb", "branch-and-bound":
		return BranchAndBound, nil
	}

	return Auto, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Status is the terminal outcome of a search.
type Status int

const (
	// NotFound means the search space was exhausted (or pruned away) without a match.
	NotFound Status = iota

	// Found means at least one admissible combination was produced.
	Found

	// Cancelled means the search was abandoned; it proves nothing about feasibility.
	Cancelled
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case NotFound:
		return "not_found"
	case Found:
		return "found"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Config describes one search.
//
//   - Target   — exact sum to reach.
//   - MinCount — minimum combination size (negative is treated as 0).
//   - MaxCount — maximum combination size; < 1 makes every instance infeasible.
//   - Strategy — one-shot algorithm override (Auto by default).
//   - Ctx      — cooperative cancellation; nil means context.Background().
//     The search only reads Ctx.Err(), at bounded intervals.
type Config struct {
	Target   uint64
	MinCount int
	MaxCount int
	Strategy Strategy
	Ctx      context.Context
}

// Result is the outcome of Solve.
type Result struct {
	Status      Status
	Combination Combination

	// Strategy is the algorithm that actually ran (never Auto once a search started).
	Strategy Strategy

	// Nodes counts DFS nodes or meet-in-the-middle masks visited.
	Nodes uint64
}

// BatchResult is produced by one Session.Step.
type BatchResult struct {
	// NewResults holds only the combinations discovered during this step.
	NewResults []Combination

	// TotalFound is the cumulative number of combinations; never exceeds maxResults.
	TotalFound int

	// NodesExplored is the cumulative number of node visits.
	NodesExplored uint64

	// Finished is true once the search space is exhausted or the cap was reached.
	Finished bool

	// Progress is the fraction of root-level branches resolved: non-decreasing,
	// at most 0.999 while unfinished, exactly 1.0 once finished.
	Progress float64
}

// addSat returns a+b, saturating at math.MaxUint64.
func addSat(a, b uint64) uint64 {
	s := a + b
	if s < a {
		return math.MaxUint64
	}

	return s
}

// normalize returns a copy of cfg with a non-nil context and MinCount ≥ 0.
func (cfg Config) normalize() Config {
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}
	if cfg.MinCount < 0 {
		cfg.MinCount = 0
	}

	return cfg
}
