package terrain

import (
	"testing"
	"time"
)

// fakeTimer is a pending callback registered with fakeClock.
type fakeTimer struct {
	when    time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// fakeClock drives timers manually so debounce behaviour is deterministic.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{when: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// advance moves time forward, firing every due, unstopped timer in order.
func (c *fakeClock) advance(d time.Duration) {
	c.now += d
	for _, t := range c.timers {
		if !t.stopped && t.when <= c.now {
			t.stopped = true
			t.fn()
		}
	}
}

func TestInvalidator_FiresAfterQuietPeriod(t *testing.T) {
	clock := &fakeClock{}
	fired := 0
	iv := NewInvalidator(clock, time.Second, func() { fired++ })
	iv.Schedule()
	clock.advance(999 * time.Millisecond)
	if fired != 0 {
		t.Fatal("fired before the delay elapsed")
	}
	clock.advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
}

func TestInvalidator_BurstCollapsesToOne(t *testing.T) {
	// 10 schedules 100ms apart, then a full quiet period: exactly one fire,
	// a full delay after the last schedule.
	clock := &fakeClock{}
	fired := 0
	iv := NewInvalidator(clock, time.Second, func() { fired++ })
	for i := 0; i < 10; i++ {
		iv.Schedule()
		clock.advance(100 * time.Millisecond)
	}
	if fired != 0 {
		t.Fatalf("fired %d times during the burst", fired)
	}
	clock.advance(time.Second)
	if fired != 1 {
		t.Fatalf("fired %d times after the burst, want exactly 1", fired)
	}
	clock.advance(10 * time.Second)
	if fired != 1 {
		t.Fatal("fired again with nothing scheduled")
	}
}

func TestInvalidator_DelayRunsFromLastCall(t *testing.T) {
	clock := &fakeClock{}
	fired := 0
	iv := NewInvalidator(clock, time.Second, func() { fired++ })
	iv.Schedule()
	clock.advance(900 * time.Millisecond)
	iv.Schedule() // re-arm just before expiry
	clock.advance(900 * time.Millisecond)
	if fired != 0 {
		t.Fatal("fired before the re-armed delay elapsed")
	}
	clock.advance(100 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
}

func TestInvalidator_CancelScheduled(t *testing.T) {
	clock := &fakeClock{}
	fired := 0
	iv := NewInvalidator(clock, time.Second, func() { fired++ })
	iv.CancelScheduled() // nothing pending: must be safe
	iv.Schedule()
	iv.CancelScheduled()
	clock.advance(10 * time.Second)
	if fired != 0 {
		t.Fatalf("cancelled timer fired %d times", fired)
	}
}

func TestInvalidator_ImmediateCancelsPending(t *testing.T) {
	clock := &fakeClock{}
	fired := 0
	iv := NewInvalidator(clock, time.Second, func() { fired++ })
	iv.Schedule()
	iv.InvalidateNow()
	if fired != 1 {
		t.Fatalf("immediate invalidation fired %d times, want 1", fired)
	}
	clock.advance(10 * time.Second)
	if fired != 1 {
		t.Fatal("pending timer fired after an immediate invalidation")
	}
}

func TestInvalidator_Destroy(t *testing.T) {
	clock := &fakeClock{}
	fired := 0
	iv := NewInvalidator(clock, time.Second, func() { fired++ })
	iv.Schedule()
	iv.Destroy()
	clock.advance(10 * time.Second)
	if fired != 0 {
		t.Fatal("destroyed scheduler fired")
	}
	iv.Schedule()
	iv.InvalidateNow()
	clock.advance(10 * time.Second)
	if fired != 0 {
		t.Fatal("destroyed scheduler accepted new work")
	}
}

func TestInvalidator_DefaultsWhenUnconfigured(t *testing.T) {
	iv := NewInvalidator(nil, 0, nil)
	if iv.delay != DefaultInvalidateDelay {
		t.Fatalf("delay = %v, want default %v", iv.delay, DefaultInvalidateDelay)
	}
	iv.Schedule()
	iv.InvalidateNow() // nil callback must not panic
	iv.Destroy()
}
