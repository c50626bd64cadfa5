package insight

import (
	"context"
	"time"
)

// DefaultDelay mirrors the latency a remote analysis call would add.
const DefaultDelay = 1500 * time.Millisecond

// Delayer is the latency strategy applied before each generation run.
type Delayer interface {
	Delay(ctx context.Context) error
}

type sleepDelayer struct {
	d time.Duration
}

// NewSleepDelayer returns a Delayer that waits for the given duration,
// aborting early if the context is cancelled.
func NewSleepDelayer(d time.Duration) Delayer {
	return sleepDelayer{d: d}
}

func (s sleepDelayer) Delay(ctx context.Context) error {
	timer := time.NewTimer(s.d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type noopDelayer struct{}

// NoDelay returns a Delayer that never waits. Used in tests and
// anywhere simulated latency is unwanted.
func NoDelay() Delayer {
	return noopDelayer{}
}

func (noopDelayer) Delay(ctx context.Context) error {
	return ctx.Err()
}
