package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/subsetsum/solver"
)

// DefaultNodeBudget is the per-step node budget used when DriveOptions.NodeBudget is 0.
const DefaultNodeBudget = 100_000

// Stepper is anything that can advance a batch search: *solver.Session and *Slot.
type Stepper interface {
	Step(nodeBudget uint64) (solver.BatchResult, error)
}

// DriveOptions controls Drive.
//
//   - NodeBudget     — node visits per step (DefaultNodeBudget when 0).
//   - StepsPerSecond — when > 0, steps are paced by a token bucket so a driver
//     sharing a process with other work does not monopolize a core.
//   - OnBatch        — called after every step; a non-nil error stops the drive.
//   - Observer       — receives ObserveStep per step. Leave nil when driving a
//     Slot, which already reports its own steps.
//   - Logger         — Debug records per step; slog.Default() when nil.
type DriveOptions struct {
	NodeBudget     uint64
	StepsPerSecond float64
	OnBatch        func(solver.BatchResult) error
	Observer       Observer
	Logger         *slog.Logger
}

// Drive steps s until it finishes, ctx is done, or OnBatch fails. The returned
// BatchResult accumulates NewResults across every step and carries the counters
// of the last step.
//
// Errors: the wrapped ctx error on cancellation; the wrapped Step or OnBatch error.
// The partial accumulation is returned alongside any error.
//
// Complexity: the sum of the steps' work; pacing adds at most 1/StepsPerSecond per step.
func Drive(ctx context.Context, s Stepper, opts DriveOptions) (solver.BatchResult, error) {
	var (
		acc     solver.BatchResult
		budget  = opts.NodeBudget
		logger  = opts.Logger
		limiter *rate.Limiter
		steps   int
	)
	if budget == 0 {
		budget = DefaultNodeBudget
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.StepsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.StepsPerSecond), 1)
	}

	for {
		if err := ctx.Err(); err != nil {
			return acc, fmt.Errorf("runner: drive interrupted after %d steps: %w", steps, err)
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return acc, fmt.Errorf("runner: drive interrupted after %d steps: %w", steps, err)
			}
		}

		start := time.Now()
		res, err := s.Step(budget)
		if err != nil {
			return acc, fmt.Errorf("runner: step %d: %w", steps, err)
		}
		steps++
		if opts.Observer != nil {
			opts.Observer.ObserveStep(res, time.Since(start))
		}

		acc.NewResults = append(acc.NewResults, res.NewResults...)
		acc.TotalFound = res.TotalFound
		acc.NodesExplored = res.NodesExplored
		acc.Finished = res.Finished
		acc.Progress = res.Progress
		logger.Debug("drive step",
			"step", steps,
			"new", len(res.NewResults),
			"total", res.TotalFound,
			"progress", res.Progress,
		)

		if opts.OnBatch != nil {
			if err = opts.OnBatch(res); err != nil {
				return acc, fmt.Errorf("runner: batch callback: %w", err)
			}
		}
		if res.Finished {
			return acc, nil
		}
	}
}
