package function

import (
	"sync"
	"time"
)

type throttleOptions struct {
	leading  bool
	trailing bool
	now      func() time.Time
	schedule afterFunc
}

type ThrottleOption func(*throttleOptions)

// WithLeading controls the call on the leading edge of the window. Default
// true.
func WithLeading(leading bool) ThrottleOption {
	return func(o *throttleOptions) { o.leading = leading }
}

// WithTrailing controls the call on the trailing edge of the window. Default
// true.
func WithTrailing(trailing bool) ThrottleOption {
	return func(o *throttleOptions) { o.trailing = trailing }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ThrottleOption {
	return func(o *throttleOptions) { o.now = now }
}

type throttler[T any] struct {
	mu       sync.Mutex
	f        func(T)
	wait     time.Duration
	opts     throttleOptions
	previous time.Time
	timer    stopper
	gen      uint64
	pending  T
	hasArg   bool
}

// Throttle returns a function that calls f at most once per wait. With both
// edges enabled, the trailing call only happens if the throttled function was
// called more than once during the window, and it receives the latest
// argument.
func Throttle[T any](f func(T), wait time.Duration, opts ...ThrottleOption) func(T) {
	return newThrottler(f, wait, opts...).call
}

func newThrottler[T any](f func(T), wait time.Duration, opts ...ThrottleOption) *throttler[T] {
	o := throttleOptions{leading: true, trailing: true, now: time.Now, schedule: realAfterFunc}
	for _, opt := range opts {
		opt(&o)
	}
	return &throttler[T]{f: f, wait: wait, opts: o}
}

func (t *throttler[T]) call(arg T) {
	now := t.opts.now()

	t.mu.Lock()
	if t.previous.IsZero() && !t.opts.leading {
		t.previous = now
	}
	remaining := t.wait - now.Sub(t.previous)

	runNow := false
	if remaining <= 0 || remaining > t.wait {
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
		}
		// a callback that already fired must not run after this call
		t.gen++
		t.previous = now
		t.hasArg = false
		runNow = true
	} else {
		t.pending, t.hasArg = arg, true
		if t.timer == nil && t.opts.trailing {
			t.gen++
			gen := t.gen
			t.timer = t.opts.schedule(remaining, func() { t.later(gen) })
		}
	}
	t.mu.Unlock()

	if runNow {
		t.f(arg)
	}
}

func (t *throttler[T]) later(gen uint64) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	if t.opts.leading {
		t.previous = t.opts.now()
	} else {
		t.previous = time.Time{}
	}
	t.timer = nil
	arg, ok := t.pending, t.hasArg
	t.hasArg = false
	t.mu.Unlock()

	if ok {
		t.f(arg)
	}
}
