package runner

import (
	"time"

	"github.com/katalvlaran/subsetsum/solver"
)

// Session lifecycle events passed to Observer.ObserveSession.
const (
	EventBegin    = "begin"
	EventFinish   = "finish"
	EventDestroy  = "destroy"
	EventCancel   = "cancel"
	EventReplaced = "replaced"
)

// Observer receives operational signals from a Slot or Drive.
// Implement it to integrate with monitoring systems (see metrics.Collector).
type Observer interface {
	// ObserveSolve is called after every one-shot search.
	ObserveSolve(res solver.Result, d time.Duration)

	// ObserveStep is called after every batch step.
	ObserveStep(res solver.BatchResult, d time.Duration)

	// ObserveSession is called on session lifecycle events (Event* constants).
	ObserveSession(event string)
}

// NoopObserver discards every signal.
type NoopObserver struct{}

func (NoopObserver) ObserveSolve(solver.Result, time.Duration)     {}
func (NoopObserver) ObserveStep(solver.BatchResult, time.Duration) {}
func (NoopObserver) ObserveSession(string)                         {}
