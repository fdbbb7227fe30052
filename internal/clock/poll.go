// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"fmt"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Poll calls probe until it succeeds, sleeping interval between attempts.
// onRetry, when set, sees every failed attempt. The returned error wraps the
// last probe failure together with the context error.
func Poll(ctx context.Context, interval time.Duration, probe func(context.Context) error, onRetry func(attempt int, err error)) error {
	for attempt := 1; ; attempt++ {
		err := probe(ctx)
		if err == nil {
			return nil
		}
		if onRetry != nil {
			onRetry(attempt, err)
		}
		if sleepErr := SleepWithContext(ctx, interval); sleepErr != nil {
			return fmt.Errorf("poll gave up after %d attempts: %w (last error: %v)", attempt, sleepErr, err)
		}
	}
}
