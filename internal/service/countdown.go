package service

import (
	"context"
	"sync"
	"time"
)

// CountdownState tracks where a countdown is in its lifecycle.
type CountdownState int

const (
	CountdownIdle CountdownState = iota
	CountdownRunning
	CountdownExpired
)

// Countdown is a cancellable repeating timer counting down to a target time.
// At most one run is active: Start replaces any previous run. Once the target
// passes, the countdown expires exactly once and stays quiet until the next
// Start.
type Countdown struct {
	mu       sync.Mutex
	cancel   context.CancelFunc
	state    CountdownState
	interval time.Duration
	clock    func() time.Time
}

func NewCountdown() *Countdown {
	return &Countdown{
		interval: time.Second,
		clock:    time.Now,
	}
}

// WithTick overrides the tick interval, used by tests.
func (c *Countdown) WithTick(interval time.Duration) *Countdown {
	c.interval = interval
	return c
}

// WithClock overrides the time source, used by tests.
func (c *Countdown) WithClock(clock func() time.Time) *Countdown {
	c.clock = clock
	return c
}

// Start begins counting down to target, cancelling any previous run. onTick
// fires once per tick with the remaining duration while remaining >= 0;
// onExpire fires once on the first tick past the target, then ticking stops.
// Callbacks run under the countdown's internal lock and must not call back
// into the Countdown.
func (c *Countdown) Start(target time.Time, onTick func(remaining time.Duration), onExpire func()) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.state = CountdownRunning
	c.mu.Unlock()

	go c.run(ctx, target, onTick, onExpire)
}

// Stop cancels the active run, if any, returning the countdown to idle.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = CountdownIdle
}

// State reports the current lifecycle state.
func (c *Countdown) State() CountdownState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Countdown) run(ctx context.Context, target time.Time, onTick func(time.Duration), onExpire func()) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		remaining := target.Sub(c.clock())
		if remaining < 0 {
			c.expire(ctx, onExpire)
			return
		}
		if !c.dispatch(ctx, onTick, remaining) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// dispatch invokes onTick under the mutex iff this run is still live, so a
// replacement Start cannot interleave a stale tick. Callbacks therefore must
// not call back into the Countdown.
func (c *Countdown) dispatch(ctx context.Context, onTick func(time.Duration), remaining time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	if onTick != nil {
		onTick(remaining)
	}
	return true
}

// expire fires onExpire under the mutex. A replacement Start cancels under
// the same mutex, so only the live run can expire and a superseded run can
// never emit a stale mealtime update over the new countdown.
func (c *Countdown) expire(ctx context.Context, onExpire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	c.state = CountdownExpired
	if onExpire != nil {
		onExpire()
	}
}
