// Package runner drives worlds: a fixed-rate loop for interactive use and
// a headless batch mode running independent seeds in parallel.
package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeusync/planetattack/internal/core/observability/log"
	"github.com/zeusync/planetattack/internal/core/world"
)

// TickHook observes the world after each tick, on the loop goroutine.
type TickHook func(tick int, w *world.World)

// Loop advances one world at a fixed tick rate. The world must not be
// touched from other goroutines while the loop runs; use a TickHook.
type Loop struct {
	world    *world.World
	interval time.Duration
	inputs   InputFunc
	hook     TickHook
	maxTicks int
	logger   log.Log

	tick    atomic.Int64
	running int32 // atomic bool

	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}
	err      error
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

func WithInputs(f InputFunc) LoopOption {
	return func(l *Loop) { l.inputs = f }
}

func WithTickHook(h TickHook) LoopOption {
	return func(l *Loop) { l.hook = h }
}

// WithMaxTicks ends the loop after n ticks; zero runs until stopped.
func WithMaxTicks(n int) LoopOption {
	return func(l *Loop) { l.maxTicks = n }
}

// WithInterval overrides the configured tick time.
func WithInterval(d time.Duration) LoopOption {
	return func(l *Loop) { l.interval = d }
}

func WithLoopLogger(logger log.Log) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

func NewLoop(w *world.World, opts ...LoopOption) *Loop {
	l := &Loop{
		world:    w,
		interval: w.Config().Timing.TickTime,
		inputs:   NoInput,
		logger:   w.Logger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(log.String("component", "loop"))
	return l
}

// Start runs the loop in the background until Stop, ctx cancellation,
// the tick limit or a world error.
func (l *Loop) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&l.running, 0, 1) {
		return ErrAlreadyRunning
	}

	l.mu.Lock()
	l.stopChan = make(chan struct{})
	l.done = make(chan struct{})
	l.err = nil
	stop, done := l.stopChan, l.done
	l.mu.Unlock()

	l.logger.Info("Loop started", log.Duration("interval", l.interval))
	go func() {
		err := l.run(ctx, stop)
		l.mu.Lock()
		l.err = err
		l.mu.Unlock()
		atomic.StoreInt32(&l.running, 0)
		close(done)
	}()
	return nil
}

// Stop asks the loop to finish and waits for it, or for ctx.
func (l *Loop) Stop(ctx context.Context) error {
	l.mu.Lock()
	stop, done := l.stopChan, l.done
	l.mu.Unlock()

	if atomic.LoadInt32(&l.running) == 0 || stop == nil {
		return ErrNotRunning
	}

	l.mu.Lock()
	select {
	case <-stop:
	default:
		close(stop)
	}
	l.mu.Unlock()

	select {
	case <-done:
		l.logger.Info("Loop stopped", log.Int64("tick", l.tick.Load()))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until a started loop ends and returns its error.
func (l *Loop) Wait() error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done == nil {
		return ErrNotRunning
	}
	<-done

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Run drives the loop on the calling goroutine. Cancellation is a normal
// way to end it and is not reported as an error.
func (l *Loop) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&l.running, 0, 1) {
		return ErrAlreadyRunning
	}
	defer atomic.StoreInt32(&l.running, 0)
	return l.run(ctx, nil)
}

func (l *Loop) run(ctx context.Context, stop <-chan struct{}) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-stop:
			return nil
		case <-ticker.C:
			if ended(ctx, stop) {
				return nil
			}
			tick := int(l.tick.Load())
			if l.maxTicks > 0 && tick >= l.maxTicks {
				return nil
			}
			if err := l.step(tick); err != nil {
				l.logger.Error("Tick failed", log.Int("tick", tick), log.Error(err))
				return err
			}
		}
	}
}

// ended reports a stop request that raced with a tick.
func ended(ctx context.Context, stop <-chan struct{}) bool {
	if ctx.Err() != nil {
		return true
	}
	select {
	case <-stop:
		return true
	default:
		return false
	}
}

func (l *Loop) step(tick int) error {
	if err := l.world.Update(tick, l.inputs(tick)); err != nil {
		return err
	}
	if l.hook != nil {
		l.hook(tick, l.world)
	}
	l.tick.Add(1)
	return nil
}

// Ticks is the number of completed ticks.
func (l *Loop) Ticks() int { return int(l.tick.Load()) }

func (l *Loop) Running() bool { return atomic.LoadInt32(&l.running) == 1 }
