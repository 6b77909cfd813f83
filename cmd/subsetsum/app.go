package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/subsetsum/internal/config"
	"github.com/katalvlaran/subsetsum/runner"
	"github.com/katalvlaran/subsetsum/solver"
)

// app solves every target against one value column. Each target gets its own
// runner.Slot, so workers never share search state.
type app struct {
	search   config.SearchConfig
	strategy solver.Strategy
	observer runner.Observer
	logger   *slog.Logger
	out      *resultWriter
}

// run fans the targets out over at most search.Workers goroutines. Cancellation
// of ctx is reported per target as "cancelled" and is not an error.
func (a *app) run(ctx context.Context, values []float64, targets []uint64) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.search.Workers)

	for _, target := range targets {
		target := target
		g.Go(func() error {
			slot := runner.NewSlot(
				runner.WithLogger(a.logger.With("target", target)),
				runner.WithObserver(a.observer),
				runner.WithStrategy(a.strategy),
			)
			if a.search.Mode == config.ModeAll {
				return a.findAll(ctx, slot, values, target)
			}

			return a.findOne(ctx, slot, values, target)
		})
	}

	return g.Wait()
}

// findOne emits a single line: the combination found, or the terminal status.
func (a *app) findOne(ctx context.Context, slot *runner.Slot, values []float64, target uint64) error {
	res := slot.FindOne(ctx, values, target, a.search.MinCount, a.search.MaxCount)
	rec := record{Target: target, Status: res.Status.String()}
	if res.Status == solver.Found {
		if err := a.verify(res.Combination, runner.BuildEntries(values, target), target); err != nil {
			return err
		}
		rec.Indices = res.Combination.Indices()
		rec.Values = res.Combination.Values()
		rec.Count = res.Combination.Len()
	}

	return a.out.Write(rec)
}

// findAll streams every combination as it is found, then a summary line.
func (a *app) findAll(ctx context.Context, slot *runner.Slot, values []float64, target uint64) error {
	slot.Begin(values, target, a.search.MinCount, a.search.MaxCount, a.search.MaxResults)
	defer slot.Destroy()
	entries := runner.BuildEntries(values, target)

	last, err := runner.Drive(ctx, slot, runner.DriveOptions{
		NodeBudget:     a.search.NodeBudget,
		StepsPerSecond: a.search.StepsPerSecond,
		Logger:         a.logger.With("target", target),
		OnBatch: func(b solver.BatchResult) error {
			for _, c := range b.NewResults {
				if err := a.verify(c, entries, target); err != nil {
					return err
				}
				if err := a.out.Write(record{
					Target:  target,
					Status:  solver.Found.String(),
					Indices: c.Indices(),
					Values:  c.Values(),
					Count:   c.Len(),
				}); err != nil {
					return err
				}
			}

			return nil
		},
	})

	status := solver.NotFound
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = solver.Cancelled
	case err != nil:
		return fmt.Errorf("target %d: %w", target, err)
	case last.TotalFound > 0:
		status = solver.Found
	}

	return a.out.Write(record{
		Target:   target,
		Status:   status.String(),
		Count:    last.TotalFound,
		Summary:  true,
		Nodes:    last.NodesExplored,
		Progress: last.Progress,
	})
}

// verify re-checks a combination against the filtered input before it is emitted.
func (a *app) verify(c solver.Combination, entries []solver.Entry, target uint64) error {
	if err := solver.Verify(c, entries, target, a.search.MinCount, a.search.MaxCount); err != nil {
		return fmt.Errorf("target %d: rejected combination %v: %w", target, c.Indices(), err)
	}

	return nil
}
