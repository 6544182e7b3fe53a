package attempt

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for scheduler tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestScheduler_RemainingIsWallClockDerived(t *testing.T) {
	clock := newFakeClock()
	sched := newTimeoutScheduler(clock.Now(), time.Minute, time.Hour, clock.Now, func() {})

	if got := sched.Remaining(); got != time.Minute {
		t.Errorf("Remaining = %s, want 1m", got)
	}

	// Remaining shrinks with the clock even though no tick has run: it is
	// a pure function of elapsed wall time, not a decremented counter.
	clock.Advance(45 * time.Second)
	if got := sched.Remaining(); got != 15*time.Second {
		t.Errorf("Remaining after 45s = %s, want 15s", got)
	}

	clock.Advance(30 * time.Second)
	if got := sched.Remaining(); got >= 0 {
		t.Errorf("Remaining past deadline = %s, want negative", got)
	}
}

func TestScheduler_FiresExactlyOnceOnExpiry(t *testing.T) {
	clock := newFakeClock()
	var fired atomic.Int32

	sched := newTimeoutScheduler(clock.Now(), time.Minute, time.Millisecond, clock.Now, func() {
		fired.Add(1)
	})
	sched.start()
	defer sched.Stop()

	// Before expiry: ticks run but nothing fires.
	time.Sleep(20 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("fired %d times before expiry", fired.Load())
	}

	clock.Advance(61 * time.Second)
	deadline := time.Now().Add(2 * time.Second)
	for fired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}

	if fired.Load() != 1 {
		t.Errorf("fired %d times, want exactly 1", fired.Load())
	}
}

func TestScheduler_StopPreventsFiring(t *testing.T) {
	clock := newFakeClock()
	var fired atomic.Int32

	sched := newTimeoutScheduler(clock.Now(), time.Minute, time.Millisecond, clock.Now, func() {
		fired.Add(1)
	})
	sched.start()
	sched.Stop()

	clock.Advance(2 * time.Minute)
	time.Sleep(20 * time.Millisecond)

	if fired.Load() != 0 {
		t.Errorf("fired %d times after Stop, want 0", fired.Load())
	}
}

// A one-minute quiz with no answers recorded times
// out, the empty ledger is submitted, and the attempt scores zero.
func TestTimeout_SubmitsEmptyLedger(t *testing.T) {
	store := newFakeStore()
	store.score = ScoreResult{Score: 0, Passed: false}
	clock := newFakeClock()

	m := testManager(store)
	m.now = clock.Now
	m.tick = time.Millisecond

	quiz := testQuiz()
	quiz.TimeLimitMinutes = 1

	s, err := m.Start(context.Background(), quiz, "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	clock.Advance(60 * time.Second)
	waitFor(t, func() bool { return s.Status() == StatusTimedOut }, "session timed out")
	waitFor(t, func() bool { return store.completedCalls() == 1 }, "timed-out submission")

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.lastAnswers) != 0 {
		t.Errorf("submitted %d answers, want empty ledger", len(store.lastAnswers))
	}
	if !store.lastTimedOut {
		t.Error("submission not flagged as timed out")
	}

	result, ok := s.Result()
	if !ok {
		t.Fatal("no result recorded after timed-out submission")
	}
	if result.Score != 0 || result.Passed {
		t.Errorf("result = %+v, want score 0 not passed", result)
	}
}

// Leaving the quiz cancels the scheduler: no timeout fires afterwards.
func TestAbandon_CancelsScheduler(t *testing.T) {
	store := newFakeStore()
	clock := newFakeClock()

	m := testManager(store)
	m.now = clock.Now
	m.tick = time.Millisecond

	quiz := testQuiz()
	quiz.TimeLimitMinutes = 1

	s, err := m.Start(context.Background(), quiz, "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}

	clock.Advance(2 * time.Minute)
	time.Sleep(20 * time.Millisecond)

	if s.Status() != StatusAbandoned {
		t.Errorf("status = %s, want abandoned (timeout must not fire)", s.Status())
	}
	if store.completedCalls() != 0 {
		t.Errorf("completeCalls = %d, want 0", store.completedCalls())
	}
}
