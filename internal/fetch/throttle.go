package fetch

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Throttle caps the amount of fetches that may be in flight at once.
type Throttle struct {
	sem      *semaphore.Weighted
	capacity int
	inFlight atomic.Int64
}

func NewThrottle(capacity int) *Throttle {
	if capacity <= 0 {
		capacity = 1
	}
	return &Throttle{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: capacity,
	}
}

// Acquire blocks until a permit is free or ctx is done.
func (t *Throttle) Acquire(ctx context.Context) error {
	err := t.sem.Acquire(ctx, 1)
	if err != nil {
		return err
	}
	t.inFlight.Add(1)
	return nil
}

func (t *Throttle) Release() {
	t.inFlight.Add(-1)
	t.sem.Release(1)
}

// Do runs fn while holding a permit, the permit is released however fn returns.
func (t *Throttle) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := t.Acquire(ctx)
	if err != nil {
		return err
	}
	defer t.Release()
	return fn(ctx)
}

func (t *Throttle) Capacity() int {
	return t.capacity
}

// InFlight is the amount of permits currently held.
func (t *Throttle) InFlight() int {
	return int(t.inFlight.Load())
}
