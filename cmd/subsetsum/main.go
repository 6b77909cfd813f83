// Command subsetsum finds combinations of numbers from a CSV column that add up
// to one or more targets.
//
// Usage:
//
//	subsetsum -input amounts.csv -column 2 -header -targets 1250,980
//	subsetsum -input - -targets 100 -mode all < amounts.csv
//	subsetsum -demo 60 -mode one
//
// Results are written as JSON lines to stdout (or output.path), optionally
// zstd-compressed. Logs go to stderr. SIGINT cancels outstanding searches.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/subsetsum/internal/config"
	"github.com/katalvlaran/subsetsum/internal/logger"
	"github.com/katalvlaran/subsetsum/metrics"
	"github.com/katalvlaran/subsetsum/runner"
	"github.com/katalvlaran/subsetsum/solver"
)

// Demo instance shape.
const (
	demoMaxValue = 1000
	demoSeed     = 1
)

var errNoTargets = errors.New("subsetsum: no targets")

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	input := flag.String("input", "-", "CSV input path, - for stdin")
	column := flag.Int("column", 0, "0-based CSV column holding the values")
	header := flag.Bool("header", false, "skip the first CSV row")
	targetList := flag.String("targets", "", "comma-separated targets")
	mode := flag.String("mode", "", "one|all (overrides search.mode)")
	demo := flag.Int("demo", 0, "generate N random values with a planted target instead of reading input")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Search.Mode = *mode
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.WithComponent("cli")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, *input, *column, *header, *targetList, *demo); err != nil {
		log.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, input string, column int, header bool, targetList string, demo int) error {
	log := logger.WithComponent("cli")

	values, targets, err := loadInstance(cfg, input, column, header, targetList, demo)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errNoTargets
	}
	strategy, err := solver.ParseStrategy(cfg.Search.Strategy)
	if err != nil {
		return err
	}

	var observer runner.Observer = runner.NoopObserver{}
	if cfg.Metrics.Enabled {
		collector := metrics.New(nil)
		observer = collector
		shutdown := metrics.StartServer(cfg.Metrics.Addr, collector)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if serr := shutdown(sctx); serr != nil {
				log.Warn("metrics server shutdown", "error", serr)
			}
		}()
	}

	var dst io.Writer = os.Stdout
	if cfg.Output.Path != "" {
		f, ferr := os.Create(cfg.Output.Path)
		if ferr != nil {
			return fmt.Errorf("creating output %s: %w", cfg.Output.Path, ferr)
		}
		defer f.Close()
		dst = f
	}
	out, err := newResultWriter(dst, cfg.Output.Compress)
	if err != nil {
		return err
	}

	log.Info("solving",
		"values", len(values),
		"targets", len(targets),
		"mode", cfg.Search.Mode,
		"strategy", strategy.String(),
		"workers", cfg.Search.Workers,
	)
	a := &app{
		search:   cfg.Search,
		strategy: strategy,
		observer: observer,
		logger:   logger.WithComponent("runner"),
		out:      out,
	}
	runErr := a.run(ctx, values, targets)
	if cerr := out.Close(); cerr != nil && runErr == nil {
		runErr = cerr
	}
	if ctx.Err() != nil {
		log.Warn("interrupted; unfinished targets reported as cancelled")
	}

	return runErr
}

// loadInstance reads the value column and targets, or generates a demo instance.
func loadInstance(cfg *config.Config, input string, column int, header bool, targetList string, demo int) ([]float64, []uint64, error) {
	targets, err := parseTargets(targetList)
	if err != nil {
		return nil, nil, err
	}

	if demo > 0 {
		k := min(max(demo/4, cfg.Search.MinCount, 1), cfg.Search.MaxCount)
		entries, planted := solver.GenerateInstance(demo, k, demoMaxValue, demoSeed)
		values := make([]float64, len(entries))
		for _, e := range entries {
			values[e.Index] = float64(e.Value)
		}
		if len(targets) == 0 {
			targets = []uint64{planted}
		}
		slog.Debug("demo instance generated", "values", demo, "planted_count", k, "planted_target", planted)

		return values, targets, nil
	}

	var r io.Reader = os.Stdin
	if input != "-" {
		f, ferr := os.Open(input)
		if ferr != nil {
			return nil, nil, fmt.Errorf("opening input %s: %w", input, ferr)
		}
		defer f.Close()
		r = f
	}
	values, err := readColumn(r, column, header)
	if err != nil {
		return nil, nil, err
	}

	return values, targets, nil
}
