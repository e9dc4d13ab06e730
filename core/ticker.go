package core

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// DefaultTickRate is the tick interval used when none is configured.
const DefaultTickRate = 250 * time.Millisecond

const minTickRate = time.Millisecond

// TickSource publishes a Tick event every interval. The interval is read at
// the start of each cycle, so SetInterval takes effect from the next cycle
// and never shortens one already sleeping.
type TickSource struct {
	interval atomic.Int64
	out      Publisher
}

func NewTickSource(interval time.Duration, out Publisher) *TickSource {
	t := &TickSource{out: out}
	t.SetInterval(interval)
	return t
}

func (t *TickSource) SetInterval(d time.Duration) {
	if d < minTickRate {
		d = minTickRate
	}
	t.interval.Store(int64(d))
}

func (t *TickSource) Interval() time.Duration {
	return time.Duration(t.interval.Load())
}

// Run sleeps and publishes until the context ends or the channel is closed.
// Both are normal shutdown and return nil.
func (t *TickSource) Run(ctx context.Context) error {
	slept := t.Interval()
	timer := time.NewTimer(slept)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		if err := t.out.Publish(ctx, Tick(slept)); err != nil {
			if errors.Is(err, ErrChannelClosed) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		slept = t.Interval()
		timer.Reset(slept)
	}
}
