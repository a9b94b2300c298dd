package concurrent

import (
	"context"

	"github.com/zeusync/planetattack/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every element with at most limit goroutines in
// flight; limit <= 0 means unbounded. The first error cancels ctx for the
// remaining actions and is returned. A cancelled parent ctx stops new
// actions from starting and its error is returned.
func ForEach[T any](ctx context.Context, i *sequence.Iterator[T], limit int, action func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for value := range i.Seq() {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return action(gctx, value)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Map applies mapFn to every element in parallel and returns the results in
// input order. On error the partial results are discarded.
func Map[T any, R any](ctx context.Context, i *sequence.Iterator[T], limit int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	in := i.Collect()
	out := make([]R, len(in))

	err := ForEach(ctx, sequence.From(indices(len(in))), limit, func(ctx context.Context, idx int) error {
		r, err := mapFn(ctx, in[idx])
		if err != nil {
			return err
		}
		out[idx] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
