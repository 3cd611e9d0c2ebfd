package function

import (
	"sync"
	"time"
)

type debouncer[T any] struct {
	mu        sync.Mutex
	f         func(T)
	wait      time.Duration
	immediate bool
	schedule  afterFunc
	timer     stopper
	gen       uint64
}

// Debounce delays f until wait has elapsed since the last call. With
// immediate set, f runs on the leading edge instead and later calls are
// ignored until the quiet period ends. cancel drops a pending call.
func Debounce[T any](f func(T), wait time.Duration, immediate bool) (call func(T), cancel func()) {
	d := newDebouncer(f, wait, immediate, realAfterFunc)
	return d.call, d.cancel
}

func newDebouncer[T any](f func(T), wait time.Duration, immediate bool, schedule afterFunc) *debouncer[T] {
	return &debouncer[T]{f: f, wait: wait, immediate: immediate, schedule: schedule}
}

func (d *debouncer[T]) call(arg T) {
	d.mu.Lock()
	callNow := d.immediate && d.timer == nil
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.schedule(d.wait, func() { d.fire(gen, arg) })
	d.mu.Unlock()

	if callNow {
		d.f(arg)
	}
}

func (d *debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen {
		// superseded by a later call
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	if !d.immediate {
		d.f(arg)
	}
}

func (d *debouncer[T]) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
