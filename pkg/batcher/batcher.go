// Package batcher accumulates items and writes them out in rate-limited batches.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Flush is the callback invoked with each drained batch.
type Flush[T any] func(context.Context, []T) error

// Batcher collects items from Add and flushes them when the batch is full or
// the interval elapses.
type Batcher[T any] struct {
	flush    Flush[T]
	queue    chan T
	size     int
	interval time.Duration
	limiter  ratelimit.Limiter
	logger   *zap.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// New constructs a Batcher flushing batches of up to size items, at most rps
// batches per second.
func New[T any](logger *zap.Logger, flush Flush[T], size int, interval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		flush:    flush,
		queue:    make(chan T, size*2),
		size:     size,
		interval: interval,
		limiter:  ratelimit.New(rps),
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start launches the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.run(ctx)
	}()
}

// Stop terminates the flush loop after draining the pending batch.
func (b *Batcher[T]) Stop() {
	close(b.done)
	b.wg.Wait()
}

// Add enqueues an item, blocking until there is room or ctx is done. Returns
// context.Canceled after Stop.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.done:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.queue <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	pending := make([]T, 0, b.size)
	for {
		select {
		case <-ctx.Done():
			b.drain(ctx, pending)
			return

		case <-b.done:
			b.drain(ctx, pending)
			return

		case item := <-b.queue:
			pending = append(pending, item)
			if len(pending) >= b.size {
				pending = b.drain(ctx, pending)
			}

		case <-ticker.C:
			pending = b.drain(ctx, pending)
		}
	}
}

// drain flushes pending and returns the reusable empty slice. Flush failures
// are logged, not retried; the batch is dropped.
func (b *Batcher[T]) drain(ctx context.Context, pending []T) []T {
	if len(pending) == 0 {
		return pending
	}

	b.limiter.Take()
	if err := b.flush(ctx, pending); err != nil {
		b.logger.Error("batch not flushed", zap.Int("size", len(pending)), zap.Error(err))
	} else {
		b.logger.Debug("batch flushed", zap.Int("size", len(pending)))
	}
	return pending[:0]
}
