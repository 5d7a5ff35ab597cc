package terrain

import (
	"sync"
	"time"
)

// DefaultInvalidateDelay is the quiet period before a scheduled invalidation
// fires.
const DefaultInvalidateDelay = time.Second

// Timer is a cancelable pending callback.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks. Injecting it keeps the debounce logic
// deterministic under test via a fake clock.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// realClock delegates to the runtime timer.
type realClock struct{}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// RealClock returns a Clock backed by runtime timers.
func RealClock() Clock { return realClock{} }

// Invalidator collapses bursts of terrain edits into a single downstream
// cache rebuild: each Schedule re-arms the timer, so the callback fires once,
// a full delay after the last call in the burst.
//
// The terrain core is single-threaded, but a real clock delivers its callback
// on a timer goroutine, so the scheduler's own state is mutex-guarded.
type Invalidator struct {
	mu        sync.Mutex
	clock     Clock
	delay     time.Duration
	fn        func()
	pending   Timer
	gen       uint64 // identifies the live timer; stale callbacks see a newer gen
	destroyed bool
}

// NewInvalidator creates a scheduler that calls fn after the quiet period.
// A nil clock uses runtime timers; a non-positive delay uses the default.
func NewInvalidator(clock Clock, delay time.Duration, fn func()) *Invalidator {
	if clock == nil {
		clock = realClock{}
	}
	if delay <= 0 {
		delay = DefaultInvalidateDelay
	}
	return &Invalidator{clock: clock, delay: delay, fn: fn}
}

// Schedule arms the invalidation timer, cancelling any previous one. A burst
// of N calls inside the window produces exactly one fire.
func (iv *Invalidator) Schedule() {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	if iv.destroyed {
		return
	}
	if iv.pending != nil {
		iv.pending.Stop()
	}
	iv.gen++
	gen := iv.gen
	iv.pending = iv.clock.AfterFunc(iv.delay, func() { iv.fire(gen) })
}

// fire runs the callback if this timer is still the live one.
func (iv *Invalidator) fire(gen uint64) {
	iv.mu.Lock()
	if iv.destroyed || gen != iv.gen {
		iv.mu.Unlock()
		return
	}
	iv.pending = nil
	fn := iv.fn
	iv.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// CancelScheduled clears any pending timer. Safe when none is armed.
func (iv *Invalidator) CancelScheduled() {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	iv.cancelLocked()
}

func (iv *Invalidator) cancelLocked() {
	if iv.pending != nil {
		iv.pending.Stop()
		iv.pending = nil
	}
	iv.gen++ // orphan any callback already in flight
}

// InvalidateNow fires the callback immediately and cancels any pending
// timer so the burst does not fire a second time later.
func (iv *Invalidator) InvalidateNow() {
	iv.mu.Lock()
	if iv.destroyed {
		iv.mu.Unlock()
		return
	}
	iv.cancelLocked()
	fn := iv.fn
	iv.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Destroy cancels any pending timer and permanently disables the scheduler.
func (iv *Invalidator) Destroy() {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	iv.cancelLocked()
	iv.destroyed = true
}
