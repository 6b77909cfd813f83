// Package solver_test — benchmarks for the one-shot strategies and the session.
//
// Policy:
//   - Deterministic planted instances (GenerateInstance, fixed seeds).
//   - Inputs are built outside the timer; only the search is measured.
package solver_test

import (
	"testing"

	"github.com/katalvlaran/subsetsum/solver"
)

func benchSolve(b *testing.B, n, k int, st solver.Strategy) {
	entries, target := solver.GenerateInstance(n, k, 1_000_000, seedDet)
	c := cfg(target, 1, n)
	c.Strategy = st
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := solver.Solve(entries, c); res.Status != solver.Found {
			b.Fatalf("unexpected status %s", res.Status)
		}
	}
}

// BenchmarkSolve_MITM_n30 measures the split-and-hash enumerator.
func BenchmarkSolve_MITM_n30(b *testing.B) { benchSolve(b, 30, 8, solver.MeetInTheMiddle) }

// BenchmarkSolve_BB_n30 measures the DFS on the same instance size.
func BenchmarkSolve_BB_n30(b *testing.B) { benchSolve(b, 30, 8, solver.BranchAndBound) }

// BenchmarkSolve_BB_n200 measures the DFS beyond the meet-in-the-middle threshold.
func BenchmarkSolve_BB_n200(b *testing.B) { benchSolve(b, 200, 10, solver.Auto) }

// BenchmarkSession_Step1024 measures enumeration throughput in 1024-node steps.
func BenchmarkSession_Step1024(b *testing.B) {
	entries, target := solver.GenerateInstance(24, 4, 100, seedDet)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sess := solver.NewSession(entries, target, 1, 6, 10_000)
		for {
			res, err := sess.Step(1024)
			if err != nil {
				b.Fatal(err)
			}
			if res.Finished {
				break
			}
		}
		sess.Close()
	}
}
