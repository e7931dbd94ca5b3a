package repeatable

import (
	"context"
	"fmt"
	"time"
)

// DoWithTries вызывает fn до maxAttempts раз с паузой delay между попытками.
func DoWithTries(ctx context.Context, fn func(ctx context.Context) error, maxAttempts int, delay time.Duration) (err error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	for i := 0; i < maxAttempts; i++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if i == maxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("interrupted after %d attempts: %w", i+1, ctx.Err())
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", maxAttempts, err)
}
