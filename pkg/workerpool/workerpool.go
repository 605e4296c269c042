// Package workerpool runs a bounded set of goroutines over a slice of work items.
package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Process fans items out to workerCount goroutines, invoking process for each.
// The first process error cancels the remaining work and is returned; onCancel,
// when set, runs once before cancellation.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		next     atomic.Int64
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel()
			}
			cancel()
		})
	}

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				idx := next.Add(1) - 1
				if idx >= int64(len(items)) {
					return
				}
				if err := process(ctx, items[idx]); err != nil {
					fail(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
