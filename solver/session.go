// Package solver — resumable batch enumeration (explicit-stack DFS).
//
// The exhaustive branch-and-bound is re-expressed as a stack of frames so that a
// single Step can stop after a node budget and resume later at the exact position.
// A frame stands in for one recursive call:
//
//	resumeIndex — next sibling to try at this depth ("try next")
//	currentSum  — sum of path[:pathLength]
//	pathLength  — depth; path is truncated back to it whenever the frame is on top
//
// One Step iteration (one node visit) looks at the top frame, scans forward from
// resumeIndex with the same three pruning tests as the recursive search, advances
// resumeIndex past the chosen child, and then either records a match (and keeps
// scanning siblings, since an exact path cannot be extended), pushes a child frame,
// or, when nothing admissible is left, pops the frame.
//
// Progress counts resolved root-level branches. Subtrees are uneven, so it is a
// monotone estimate rather than a wall-clock fraction.
package solver

import "slices"

// frame is one level of deferred DFS state.
type frame struct {
	resumeIndex int
	currentSum  uint64
	pathLength  int
}

// Session is a long-lived, resumable exhaustive search. It is not safe for
// concurrent use; independent searches need independent sessions.
type Session struct {
	data       *prepared
	target     uint64
	minCount   int
	maxCount   int
	maxResults int

	stack   []frame
	path    []int
	results []Combination
	nodes   uint64

	finished bool
	closed   bool

	topLevelTotal int
	topLevelDone  int
}

// NewSession prepares entries, runs the feasibility pre-check, and seeds the root
// frame. Infeasible instances (and maxResults ≤ 0) produce a session that is
// already finished; its first Step reports zero results and Progress 1.0.
func NewSession(entries []Entry, target uint64, minCount, maxCount, maxResults int) *Session {
	minCount = max(minCount, 0)
	data := prepare(entries)
	s := &Session{
		data:          data,
		target:        target,
		minCount:      minCount,
		maxCount:      maxCount,
		maxResults:    maxResults,
		topLevelTotal: len(data.sorted),
	}
	if maxResults <= 0 || !data.feasible(target, minCount, maxCount) {
		s.finished = true

		return s
	}
	s.stack = append(make([]frame, 0, min(maxCount, len(data.sorted))+1), frame{})
	s.path = make([]int, 0, min(maxCount, len(data.sorted)))

	return s
}

// Step advances the search by at most nodeBudget node visits and returns the
// combinations found during this call plus cumulative counters.
//
// Errors: ErrSessionClosed after Close.
func (s *Session) Step(nodeBudget uint64) (BatchResult, error) {
	if s.closed {
		return BatchResult{}, ErrSessionClosed
	}

	var (
		prev   = len(s.results)
		n      = len(s.data.sorted)
		budget = nodeBudget
	)
	for budget > 0 && len(s.stack) > 0 && len(s.results) < s.maxResults {
		budget--
		s.nodes++

		var (
			top       = len(s.stack) - 1
			f         = s.stack[top]
			remaining = s.target - f.currentSum
			need      = max(s.minCount-f.pathLength, 0)
			advanced  bool
			capped    bool
			i         int
			v         uint64
		)
		s.path = s.path[:f.pathLength]

		for i = f.resumeIndex; i < n; i++ {
			v = s.data.sorted[i].Value
			if v > remaining || s.data.suffix[i] < remaining || n-i < need {
				break
			}
			s.stack[top].resumeIndex = i + 1
			s.path = append(s.path[:f.pathLength], i)
			if f.pathLength == 0 {
				s.markRootChosen(i)
			}

			if v == remaining && f.pathLength+1 >= s.minCount {
				s.results = append(s.results, s.data.materialize(s.path))
				if f.pathLength == 0 {
					s.markRootResolved(i)
				}
				if len(s.results) >= s.maxResults {
					s.stack = s.stack[:0]
					capped = true

					break
				}

				continue
			}

			if f.pathLength+1 < s.maxCount {
				s.stack = append(s.stack, frame{
					resumeIndex: i + 1,
					currentSum:  f.currentSum + v,
					pathLength:  f.pathLength + 1,
				})
			} else if f.pathLength == 0 {
				// MaxCount == 1: a non-matching root child is a resolved leaf.
				s.markRootResolved(i)
			}
			advanced = true

			break
		}

		if capped || advanced {
			continue
		}

		// No admissible child left: backtrack one level.
		s.stack = s.stack[:top]
		switch f.pathLength {
		case 0:
			s.topLevelDone = s.topLevelTotal
		case 1:
			s.markRootResolved(s.path[0])
		}
	}

	if len(s.stack) == 0 || len(s.results) >= s.maxResults {
		s.finished = true
		s.stack = s.stack[:0]
	}

	return BatchResult{
		NewResults:    slices.Clone(s.results[prev:]),
		TotalFound:    len(s.results),
		NodesExplored: s.nodes,
		Finished:      s.finished,
		Progress:      s.progress(),
	}, nil
}

// markRootChosen records that root branch i was entered: every branch below i
// has been resolved (explored or pruned).
func (s *Session) markRootChosen(i int) {
	s.topLevelDone = max(s.topLevelDone, i)
}

// markRootResolved records that root branch i has been fully explored.
func (s *Session) markRootResolved(i int) {
	s.topLevelDone = max(s.topLevelDone, i+1)
}

// progress returns the root-level completion ratio with the finished/unfinished bounds.
func (s *Session) progress() float64 {
	if s.finished {
		return 1.0
	}
	if s.topLevelTotal == 0 {
		return 0
	}

	return min(float64(s.topLevelDone)/float64(s.topLevelTotal), 0.999)
}

// Results returns a copy of every combination found so far.
func (s *Session) Results() []Combination {
	return slices.Clone(s.results)
}

// Finished reports whether the search is complete (exhausted or capped).
func (s *Session) Finished() bool { return s.finished }

// NodesExplored returns the cumulative number of node visits.
func (s *Session) NodesExplored() uint64 { return s.nodes }

// Close releases the session's buffers. It is idempotent; Step fails afterwards.
func (s *Session) Close() {
	s.closed = true
	s.data = nil
	s.stack = nil
	s.path = nil
	s.results = nil
}
