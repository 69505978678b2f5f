// internal/device/ready.go
package device

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/keyer-test/internal/device/arduino"
)

// WaitReady pings the rig until it answers, one ping per interval.
// Only a silent rig is retried; any other answer ends the wait immediately.
func WaitReady(ctx context.Context, p Pinger, attempts int, interval time.Duration) error {
	if attempts <= 0 {
		attempts = 1
	}
	if interval <= 0 {
		interval = time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last error
	for i := 0; i < attempts; i++ {
		last = p.Ping()
		if last == nil {
			return nil
		}
		if !errors.Is(last, arduino.ErrTimeout) {
			return fmt.Errorf("%w: %w", ErrNotReady, last)
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrNotReady, attempts, last)
}
