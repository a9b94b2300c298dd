package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/zeusync/planetattack/internal/core/events/bus"
	"github.com/zeusync/planetattack/internal/core/observability/log"
	"github.com/zeusync/planetattack/internal/core/world"
	"github.com/zeusync/planetattack/internal/injector"
	"github.com/zeusync/planetattack/internal/runner"
)

type options struct {
	config   string
	seed     int64
	seedSet  bool
	ticks    int
	runs     int
	parallel int
	realtime bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "YAML configuration file, defaults when empty")
	flag.Int64Var(&opts.seed, "seed", 0, "base seed, overrides the configuration")
	flag.IntVar(&opts.ticks, "ticks", 3000, "ticks per run")
	flag.IntVar(&opts.runs, "runs", 1, "independent runs, seeded seed, seed+1, ...")
	flag.IntVar(&opts.parallel, "parallel", 0, "concurrent runs, 0 for one per run")
	flag.BoolVar(&opts.realtime, "realtime", false, "drive one run at the configured tick rate")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "planetattack:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	app, err := injector.InitializeApp(injector.ConfigPath(opts.config))
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	cfg := *app.Config
	if opts.seedSet {
		cfg.Seed = opts.seed
	}

	if opts.realtime {
		w := app.World
		if opts.seedSet {
			if w, err = world.New(cfg, world.WithLogger(app.Logger), world.WithBus(app.Bus)); err != nil {
				return err
			}
		}
		return realtime(ctx, w, opts.ticks, out)
	}

	reports, err := runner.RunBatch(ctx, cfg, runner.BatchOptions{
		Runs:     opts.runs,
		Ticks:    opts.ticks,
		Parallel: opts.parallel,
	}, app.Logger)
	if err != nil {
		return err
	}
	return printReports(out, reports)
}

func realtime(ctx context.Context, w *world.World, ticks int, out io.Writer) error {
	sub, err := w.Bus().Subscribe(bus.TypeWaveSpawned, func(e bus.Event) error {
		if wave, ok := e.Data().(bus.WaveSpawned); ok {
			_, err := fmt.Fprintf(out, "tick %d: wave %d, %d enemies\n", e.Tick(), wave.Wave, wave.Enemies)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Bus().Unsubscribe(sub) }()

	w.Randomize()
	loop := runner.NewLoop(w,
		runner.WithInputs(runner.Autopilot),
		runner.WithMaxTicks(ticks),
		runner.WithTickHook(func(tick int, w *world.World) {
			if tick%500 == 0 {
				stats := w.Stats()
				w.Logger().Info("Progress", log.Int("tick", tick), log.Int("objects", stats.Objects), log.Int("wave", stats.Wave))
			}
		}),
	)
	if err := loop.Start(ctx); err != nil {
		return err
	}
	if err := loop.Wait(); err != nil {
		return err
	}

	score := 0
	for _, p := range w.Players() {
		score += p.Score()
	}
	_, err = fmt.Fprintf(out, "ticks %d, wave %d, score %d, digest %016x\n", loop.Ticks(), w.Wave(), score, w.Digest())
	return err
}

func printReports(out io.Writer, reports []runner.Report) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSEED\tTICKS\tWAVE\tSCORE\tPLAYERS\tENEMIES\tASTEROIDS\tBULLETS\tPOWER-UPS\tDROPPED\tDIGEST\tELAPSED")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%016x\t%s\n",
			r.Run, r.Seed, r.Ticks, r.Wave, r.Score,
			r.Counts["player"], r.Counts["enemy"], r.Counts["asteroid"], r.Counts["bullet"], r.Counts["power_up"],
			r.Dropped, r.Digest, r.Elapsed.Round(time.Millisecond),
		)
	}
	return tw.Flush()
}
