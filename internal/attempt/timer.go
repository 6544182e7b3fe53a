package attempt

import (
	"sync"
	"time"
)

// tickInterval is the timeout scheduler's polling period.
const tickInterval = time.Second

// TimeoutScheduler watches the wall clock for a timed attempt and fires
// an expiry callback exactly once when the limit elapses. Remaining time
// is always recomputed from the start timestamp rather than decremented,
// so slow or coalesced ticks cannot drift the deadline.
//
// The tick loop never touches the network: expiry only hands off to the
// session's (separately asynchronous) submission path.
type TimeoutScheduler struct {
	startedAt time.Time
	limit     time.Duration
	interval  time.Duration
	now       func() time.Time
	expire    func()

	stopOnce sync.Once
	fireOnce sync.Once
	done     chan struct{}
}

// newTimeoutScheduler creates a scheduler. The tick loop only runs once
// start is called, so callers can finish wiring first.
func newTimeoutScheduler(startedAt time.Time, limit time.Duration, interval time.Duration, now func() time.Time, expire func()) *TimeoutScheduler {
	if interval <= 0 {
		interval = tickInterval
	}
	if now == nil {
		now = time.Now
	}
	t := &TimeoutScheduler{
		startedAt: startedAt,
		limit:     limit,
		interval:  interval,
		now:       now,
		expire:    expire,
		done:      make(chan struct{}),
	}
	return t
}

// start launches the tick loop.
func (t *TimeoutScheduler) start() {
	go t.run()
}

// Remaining returns the time left before expiry, computed purely from
// wall-clock elapsed time. It may be negative after the deadline.
func (t *TimeoutScheduler) Remaining() time.Duration {
	return t.limit - t.now().Sub(t.startedAt)
}

// Stop cancels the scheduler. No further ticks fire after Stop returns.
// Safe to call more than once and from the expiry path itself.
func (t *TimeoutScheduler) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

func (t *TimeoutScheduler) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			if t.Remaining() > 0 {
				continue
			}
			t.fireOnce.Do(t.expire)
			t.Stop()
			return
		}
	}
}
