package runner

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/world"
)

func newWorld(t *testing.T) *world.World {
	t.Helper()
	cfg := config.Default()
	cfg.World.StartPaused = false
	w, err := world.New(cfg)
	require.NoError(t, err)
	w.Randomize()
	return w
}

func TestLoopRunsToMaxTicks(t *testing.T) {
	var hooked atomic.Int32
	l := NewLoop(newWorld(t),
		WithInterval(time.Millisecond),
		WithMaxTicks(5),
		WithInputs(Autopilot),
		WithTickHook(func(int, *world.World) { hooked.Add(1) }),
	)

	require.NoError(t, l.Start(context.Background()))
	require.NoError(t, l.Wait())
	assert.Equal(t, 5, l.Ticks())
	assert.Equal(t, int32(5), hooked.Load())
	assert.False(t, l.Running())
}

func TestLoopLifecycle(t *testing.T) {
	l := NewLoop(newWorld(t), WithInterval(time.Millisecond))
	assert.ErrorIs(t, l.Stop(context.Background()), ErrNotRunning)
	assert.ErrorIs(t, l.Wait(), ErrNotRunning)

	require.NoError(t, l.Start(context.Background()))
	assert.ErrorIs(t, l.Start(context.Background()), ErrAlreadyRunning)
	assert.ErrorIs(t, l.Run(context.Background()), ErrAlreadyRunning)

	require.NoError(t, l.Stop(context.Background()))
	assert.False(t, l.Running())
	assert.ErrorIs(t, l.Stop(context.Background()), ErrNotRunning)

	// a stopped loop can be started again and keeps counting
	before := l.Ticks()
	require.NoError(t, l.Start(context.Background()))
	require.NoError(t, l.Stop(context.Background()))
	assert.GreaterOrEqual(t, l.Ticks(), before)
}

func TestLoopRunEndsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewLoop(newWorld(t),
		WithInterval(time.Millisecond),
		WithTickHook(func(tick int, _ *world.World) {
			if tick == 2 {
				cancel()
			}
		}),
	)
	require.NoError(t, l.Run(ctx))
	assert.Equal(t, 3, l.Ticks())
}

func TestSimulate(t *testing.T) {
	w := newWorld(t)
	n, err := Simulate(context.Background(), w, 0, 20, Autopilot)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	assert.Equal(t, 19, w.Tick())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err = Simulate(ctx, w, 20, 5, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestBatchOptionsValidate(t *testing.T) {
	cases := []struct {
		name string
		opts BatchOptions
		ok   bool
	}{
		{"valid", BatchOptions{Runs: 2, Ticks: 10}, true},
		{"no runs", BatchOptions{Ticks: 10}, false},
		{"no ticks", BatchOptions{Runs: 1}, false},
		{"negative parallel", BatchOptions{Runs: 1, Ticks: 1, Parallel: -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidBatch)
		})
	}
}

func TestRunBatchIsDeterministic(t *testing.T) {
	cfg := config.Default()
	opts := BatchOptions{Runs: 3, Ticks: 100, Parallel: 2}

	first, err := RunBatch(context.Background(), cfg, opts, nil)
	require.NoError(t, err)
	second, err := RunBatch(context.Background(), cfg, opts, nil)
	require.NoError(t, err)

	require.Len(t, first, 3)
	for i, r := range first {
		assert.Equal(t, i, r.Run)
		assert.Equal(t, cfg.Seed+int64(i), r.Seed)
		assert.Equal(t, 100, r.Ticks)
		assert.Equal(t, 1, r.Counts["player"])
		assert.Equal(t, second[i].Digest, r.Digest)
		assert.Equal(t, second[i].Counts, r.Counts)
		assert.NotEqual(t, second[i].RunID, r.RunID)
	}
	assert.NotEqual(t, first[0].Digest, first[1].Digest)
}

func TestRunBatchRejectsBadInput(t *testing.T) {
	_, err := RunBatch(context.Background(), config.Default(), BatchOptions{}, nil)
	assert.ErrorIs(t, err, ErrInvalidBatch)

	cfg := config.Default()
	cfg.World.Width = 1000
	_, err = RunBatch(context.Background(), cfg, BatchOptions{Runs: 1, Ticks: 1}, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunBatchHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunBatch(ctx, config.Default(), BatchOptions{Runs: 2, Ticks: 10}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
