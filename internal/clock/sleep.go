// Package clock provides cancellable time helpers for poll loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d, returning early with the context error if
// ctx is canceled first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
