// Package workpool runs a function over a slice with a fixed number of
// workers that claim indexes from a shared cursor
package workpool

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the pool size used when none is given
const DefaultWorkers = 10

// Map calls fn for every item using at most workers goroutines and returns
// the results in input order.
//
// Each worker claims the next unclaimed index until the cursor passes the end.
// The first error cancels ctx for the remaining workers and is returned once
// every worker has stopped. There are no retries and no partial results.
func Map[T, R any](ctx context.Context, items []T, workers int, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return []R{}, nil
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(items) {
		workers = len(items)
	}

	results := make([]R, len(items))
	var cursor atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				if err := gctx.Err(); err != nil {
					return err
				}

				i := int(cursor.Add(1) - 1)
				if i >= len(items) {
					return nil
				}

				r, err := fn(gctx, items[i])
				if err != nil {
					return err
				}
				results[i] = r
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
