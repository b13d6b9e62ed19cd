package fetch

import (
	"context"
	"math/rand"
	"time"
)

const backoffBase = 500 * time.Millisecond

// Backoff is the sleep before retry number `attempt` (the first attempt is 0 and never sleeps):
// min(0.5s * 2^(attempt-1) + jitter, max).
func Backoff(attempt int, jitter, max time.Duration) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// past this shift the base alone dwarfs any sane max
	shift := attempt - 1
	if shift > 20 {
		shift = 20
	}
	delay := backoffBase<<shift + jitter
	if max > 0 && delay > max {
		return max
	}
	return delay
}

func uniformJitter(min, max time.Duration) func() time.Duration {
	return func() time.Duration {
		if max <= min {
			return min
		}
		return min + time.Duration(rand.Int63n(int64(max-min)))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
