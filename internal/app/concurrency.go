package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// loadBoth runs two loaders side by side. The first failure cancels the
// other and is returned unwrapped.
func loadBoth[A, B any](
	ctx context.Context,
	loadA func(context.Context) (A, error),
	loadB func(context.Context) (B, error),
) (A, B, error) {
	var (
		a A
		b B
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a, err = loadA(gctx)
		return err
	})
	g.Go(func() (err error) {
		b, err = loadB(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zeroA A
			zeroB B
		)

		return zeroA, zeroB, err
	}

	return a, b, nil
}

// attempt is the outcome of one call made by repeat.
type attempt[T any] struct {
	value T
	err   error
}

// repeat calls fn n times with at most limit calls in flight. Failures are
// collected, not propagated, so one bad call never cancels the rest.
func repeat[T any](ctx context.Context, n, limit int, fn func(context.Context) (T, error)) []attempt[T] {
	if limit < 1 {
		limit = 1
	}

	out := make([]attempt[T], n)

	var g errgroup.Group
	g.SetLimit(limit)

	for i := range out {
		g.Go(func() error {
			value, err := fn(ctx)
			out[i] = attempt[T]{value: value, err: err}

			return nil
		})
	}

	_ = g.Wait()

	return out
}
