// Package runner_test holds helpers shared by the runner tests.
package runner_test

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/subsetsum/solver"
)

// quietLogger discards every record.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recorder is an Observer that remembers what it saw.
type recorder struct {
	mu     sync.Mutex
	solves []solver.Result
	steps  int
	events []string
}

func (r *recorder) ObserveSolve(res solver.Result, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solves = append(r.solves, res)
}

func (r *recorder) ObserveStep(_ solver.BatchResult, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps++
}

func (r *recorder) ObserveSession(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) snapshot() (solves []solver.Result, steps int, events []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]solver.Result(nil), r.solves...), r.steps, append([]string(nil), r.events...)
}

// hardValues returns n even values and an odd target: no solution, and the
// depth-first search has to grind through a very large tree.
func hardValues(n int) ([]float64, uint64) {
	values := make([]float64, n)
	var i int
	for i = range values {
		values[i] = float64(2 * (i + 1))
	}

	return values, uint64(n*n/2 + 1)
}

// oneToFive is the classic 1..5 instance.
var oneToFive = []float64{1, 2, 3, 4, 5}
