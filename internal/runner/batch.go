package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/observability/log"
	"github.com/zeusync/planetattack/internal/core/world"
	"github.com/zeusync/planetattack/pkg/concurrent"
	"github.com/zeusync/planetattack/pkg/sequence"
)

// Simulate runs ticks from..from+ticks-1 on w as fast as possible and
// returns the number of ticks completed.
func Simulate(ctx context.Context, w *world.World, from, ticks int, inputs InputFunc) (int, error) {
	if inputs == nil {
		inputs = NoInput
	}
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		tick := from + i
		if err := w.Update(tick, inputs(tick)); err != nil {
			return i, fmt.Errorf("tick %d: %w", tick, err)
		}
	}
	return ticks, nil
}

// BatchOptions describes a set of independent runs. Run i uses seed
// Config.Seed + i.
type BatchOptions struct {
	Runs  int
	Ticks int
	// Parallel bounds concurrent runs; zero means one per run.
	Parallel int
	// Inputs picks the controls for a run; nil flies Autopilot.
	Inputs func(run int) InputFunc
}

func (o BatchOptions) Validate() error {
	if o.Runs <= 0 {
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidBatch, o.Runs)
	}
	if o.Ticks <= 0 {
		return fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalidBatch, o.Ticks)
	}
	if o.Parallel < 0 {
		return fmt.Errorf("%w: parallel must not be negative, got %d", ErrInvalidBatch, o.Parallel)
	}
	return nil
}

// Report summarises a finished run.
type Report struct {
	Run     int
	Seed    int64
	RunID   string
	Ticks   int
	Digest  uint64
	Wave    int
	Score   int
	Counts  map[string]int
	Dropped int
	Elapsed time.Duration
}

// RunBatch runs every seed on its own world in parallel. Reports come back
// in run order. The first failing run cancels the rest.
func RunBatch(ctx context.Context, cfg config.Config, opts BatchOptions, logger log.Log) ([]Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNop()
	}

	runs := make([]int, opts.Runs)
	for i := range runs {
		runs[i] = i
	}

	logger.Info("Batch started", log.Int("runs", opts.Runs), log.Int("ticks", opts.Ticks), log.Int("parallel", opts.Parallel))
	reports, err := concurrent.Map(ctx, sequence.From(runs), opts.Parallel, func(ctx context.Context, run int) (Report, error) {
		return runOne(ctx, cfg, opts, run, logger)
	})
	if err != nil {
		logger.Error("Batch failed", log.Error(err))
		return nil, err
	}
	logger.Info("Batch finished", log.Int("runs", len(reports)))
	return reports, nil
}

func runOne(ctx context.Context, cfg config.Config, opts BatchOptions, run int, logger log.Log) (Report, error) {
	cfg.Seed += int64(run)
	w, err := world.New(cfg, world.WithLogger(logger.With(log.Int("run", run))))
	if err != nil {
		return Report{}, fmt.Errorf("run %d: %w", run, err)
	}
	w.Randomize()

	inputs := InputFunc(Autopilot)
	if opts.Inputs != nil {
		inputs = opts.Inputs(run)
	}

	started := time.Now()
	ticks, err := Simulate(ctx, w, 0, opts.Ticks, inputs)
	if err != nil {
		return Report{}, fmt.Errorf("run %d: %w", run, err)
	}
	return report(w, run, ticks, time.Since(started)), nil
}

func report(w *world.World, run, ticks int, elapsed time.Duration) Report {
	alive := w.Objects().Filter(models.Object.Exists)
	counts := sequence.CountBy(alive, func(o models.Object) string { return o.Kind().String() })

	score := 0
	for _, p := range w.Players() {
		score += p.Score()
	}
	return Report{
		Run:     run,
		Seed:    w.Config().Seed,
		RunID:   w.RunID().String(),
		Ticks:   ticks,
		Digest:  w.Digest(),
		Wave:    w.Wave(),
		Score:   score,
		Counts:  counts,
		Dropped: w.Stats().Dropped,
		Elapsed: elapsed,
	}
}
