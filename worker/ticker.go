package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Ticker is a source of "advance one step" signals. *rate.Limiter satisfies
// it.
type Ticker interface {
	Wait(ctx context.Context) error
}

// NewTicker returns a tick source firing ticksPerSecond times a second. burst
// ticks may fire back to back, the first tick fires immediately.
func NewTicker(ticksPerSecond rate.Limit, burst int) *rate.Limiter {
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(ticksPerSecond, burst)
}

// Immediate is a Ticker that never waits.
type Immediate struct{}

// Wait returns at once, with ctx's error if it is already done.
func (Immediate) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
