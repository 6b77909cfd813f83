package runner

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/subsetsum/solver"
)

// ErrNoSession is returned by Slot.Step when no batch session has been begun
// (or after Destroy).
var ErrNoSession = errors.New("runner: no search initialized")

// Option configures a Slot.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer Observer
	strategy solver.Strategy
}

func defaultOptions() options {
	return options{
		logger:   slog.Default().With("component", "runner"),
		observer: NoopObserver{},
		strategy: solver.Auto,
	}
}

// WithLogger sets the slot logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver installs an Observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithStrategy overrides the one-shot strategy used by FindOne.
func WithStrategy(s solver.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// Slot is one logical search slot: a cancellable one-shot search and at most one
// batch session. Methods are safe for concurrent use; Cancel is meant to be
// called from a different goroutine than FindOne.
type Slot struct {
	opts options

	mu        sync.Mutex
	session   *solver.Session
	announced bool // finish already logged for the current session
	cancel    context.CancelFunc
	searchID  uint64
}

// NewSlot returns an empty slot.
func NewSlot(opts ...Option) *Slot {
	o := defaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &Slot{opts: o}
}

// FindOne filters values against target and runs a one-shot search. Any earlier
// Cancel has no effect on this call; a Cancel issued while it runs (or ctx being
// cancelled) yields solver.Cancelled.
func (s *Slot) FindOne(ctx context.Context, values []float64, target uint64, minCount, maxCount int) solver.Result {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.searchID++
	id := s.searchID
	s.cancel = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.searchID == id {
			s.cancel = nil
		}
		s.mu.Unlock()
	}()

	entries := BuildEntries(values, target)
	start := time.Now()
	res := solver.Solve(entries, solver.Config{
		Target:   target,
		MinCount: minCount,
		MaxCount: maxCount,
		Strategy: s.opts.strategy,
		Ctx:      ctx,
	})
	elapsed := time.Since(start)
	s.opts.observer.ObserveSolve(res, elapsed)
	s.opts.logger.Info("one-shot search completed",
		"status", res.Status.String(),
		"strategy", res.Strategy.String(),
		"entries", len(entries),
		"target", target,
		"nodes", res.Nodes,
		"elapsed", elapsed,
	)

	return res
}

// Cancel aborts the one-shot search currently running in this slot, if any.
func (s *Slot) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	s.opts.observer.ObserveSession(EventCancel)
	s.opts.logger.Info("one-shot search cancelled")
}

// Begin starts a batch session for values filtered against target. A session
// already held by the slot is closed and replaced.
func (s *Slot) Begin(values []float64, target uint64, minCount, maxCount, maxResults int) {
	entries := BuildEntries(values, target)
	sess := solver.NewSession(entries, target, minCount, maxCount, maxResults)

	s.mu.Lock()
	old := s.session
	s.session = sess
	s.announced = false
	s.mu.Unlock()

	if old != nil {
		old.Close()
		s.opts.observer.ObserveSession(EventReplaced)
	}
	s.opts.observer.ObserveSession(EventBegin)
	s.opts.logger.Info("batch session started",
		"entries", len(entries),
		"dropped", len(values)-len(entries),
		"target", target,
		"min_count", minCount,
		"max_count", maxCount,
		"max_results", maxResults,
	)
}

// Step advances the slot's session by at most nodeBudget nodes.
//
// Errors: ErrNoSession when no session is active.
func (s *Slot) Step(nodeBudget uint64) (solver.BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return solver.BatchResult{}, ErrNoSession
	}

	start := time.Now()
	res, err := s.session.Step(nodeBudget)
	if err != nil {
		return res, err
	}
	elapsed := time.Since(start)
	s.opts.observer.ObserveStep(res, elapsed)
	s.opts.logger.Debug("batch step",
		"new", len(res.NewResults),
		"total", res.TotalFound,
		"nodes", res.NodesExplored,
		"progress", res.Progress,
		"elapsed", elapsed,
	)
	if res.Finished && !s.announced {
		s.announced = true
		s.opts.observer.ObserveSession(EventFinish)
		s.opts.logger.Info("batch session finished",
			"total", res.TotalFound,
			"nodes", res.NodesExplored,
		)
	}

	return res, nil
}

// Results returns every combination found by the current session so far.
func (s *Slot) Results() ([]solver.Combination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, ErrNoSession
	}

	return s.session.Results(), nil
}

// Destroy closes and forgets the current session. It is a no-op on an empty slot.
func (s *Slot) Destroy() {
	s.mu.Lock()
	sess := s.session
	s.session = nil
	s.mu.Unlock()
	if sess == nil {
		return
	}
	sess.Close()
	s.opts.observer.ObserveSession(EventDestroy)
	s.opts.logger.Debug("batch session destroyed")
}
