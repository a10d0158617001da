// Package fanout runs one call per input across a bounded set of goroutines.
// The category screen uses it to fetch the items of every list at once.
package fanout

import (
	"context"
	"sync"
)

// DefaultWorkers bounds concurrent requests when callers have no preference.
const DefaultWorkers = 4

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent calls.
// Results are returned in input order. A maxWorkers below 1 is treated as 1.
//
// Items still waiting for a slot when ctx is done record ctx.Err() without
// calling fn. Calls already running finish normally.
//
// Run blocks until every item has a result. Empty input yields an empty
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Partition splits results into successful values and failures, each in
// input order.
func Partition[R any](results []Result[R]) ([]R, []error) {
	vals := make([]R, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		vals = append(vals, r.Value)
	}
	return vals, errs
}
