// Package subsetsum is an exact subset-sum search engine with a count window:
// given non-negative integers, find subsets whose size lies in [min, max] and
// whose sum equals a target.
//
// What is inside?
//
//	solver/          — the algorithms: feasibility pre-check, meet-in-the-middle
//	                   (n ≤ 40), branch-and-bound DFS, and a resumable Session
//	                   that enumerates every match under a node budget per step.
//	runner/          — host layer: raw values → entries, a cancellable search Slot,
//	                   Drive (paced stepping), Observer hooks.
//	metrics/         — Prometheus Observer and scrape server.
//	internal/config/ — YAML + SS_* environment configuration.
//	internal/logger/ — slog setup.
//	cmd/subsetsum/   — CLI over a CSV column, JSON-lines output.
//	examples/        — runnable scenario.
//
// Quick start:
//
//	res := solver.Solve(entries, solver.Config{Target: 1250, MinCount: 1, MaxCount: 4})
//	if res.Status == solver.Found {
//		fmt.Println(res.Combination.Indices())
//	}
//
// Exhaustive enumeration is resumable:
//
//	s := solver.NewSession(entries, 1250, 1, 4, 100)
//	for {
//		b, _ := s.Step(100_000)
//		handle(b.NewResults)
//		if b.Finished {
//			break
//		}
//	}
package subsetsum
