package metrics_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subsetsum/metrics"
	"github.com/katalvlaran/subsetsum/runner"
	"github.com/katalvlaran/subsetsum/solver"
)

func TestCollector_ObserveSolve(t *testing.T) {
	c := metrics.New(prometheus.NewRegistry())

	c.ObserveSolve(solver.Result{Status: solver.Found, Strategy: solver.MeetInTheMiddle, Nodes: 64}, time.Millisecond)
	c.ObserveSolve(solver.Result{Status: solver.Cancelled, Strategy: solver.BranchAndBound, Nodes: 4096}, time.Second)
	c.ObserveSolve(solver.Result{Status: solver.Found, Strategy: solver.MeetInTheMiddle, Nodes: 8}, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.SolvesTotal.WithLabelValues("meet-in-the-middle", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SolvesTotal.WithLabelValues("branch-and-bound", "cancelled")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.SolveDuration))
}

func TestCollector_ObserveStepAndSession(t *testing.T) {
	c := metrics.New(nil)

	c.ObserveSession(runner.EventBegin)
	c.ObserveStep(solver.BatchResult{NewResults: make([]solver.Combination, 3), Progress: 0.4}, time.Millisecond)
	c.ObserveStep(solver.BatchResult{NewResults: make([]solver.Combination, 1), Progress: 1}, time.Millisecond)
	c.ObserveSession(runner.EventFinish)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.StepsTotal))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.ResultsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SessionProgress))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SessionEvents.WithLabelValues(runner.EventBegin)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SessionEvents.WithLabelValues(runner.EventFinish)))
}

// TestCollector_WiredIntoSlot checks the collector as a live runner.Observer.
func TestCollector_WiredIntoSlot(t *testing.T) {
	c := metrics.New(nil)
	slot := runner.NewSlot(
		runner.WithObserver(c),
		runner.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	res := slot.FindOne(context.Background(), []float64{1, 2, 3, 4, 5}, 9, 2, 2)
	require.Equal(t, solver.Found, res.Status)

	slot.Begin([]float64{1, 2, 3, 4, 5}, 5, 1, 5, 100)
	_, err := runner.Drive(context.Background(), slot, runner.DriveOptions{NodeBudget: 2})
	require.NoError(t, err)
	slot.Destroy()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.SolvesTotal.WithLabelValues("meet-in-the-middle", "found")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.ResultsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SessionEvents.WithLabelValues(runner.EventDestroy)))
	assert.Greater(t, testutil.ToFloat64(c.StepsTotal), 1.0)
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.New(nil)
	c.ObserveSession(runner.EventBegin)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `subsetsum_session_events_total{event="begin"} 1`), body)
}

func TestStartServer_Shutdown(t *testing.T) {
	shutdown := metrics.StartServer("127.0.0.1:0", metrics.New(nil))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, shutdown(ctx))
}
