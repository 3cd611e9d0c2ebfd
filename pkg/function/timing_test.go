package function

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock only moves when told to.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_000_000, 0).UTC()}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) StepBy(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

// scheduler hands out timers that only fire when the test says so.
type scheduler struct {
	timers []*fakeTimer
}

func (s *scheduler) AfterFunc(d time.Duration, f func()) stopper {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// live returns the timers that are neither stopped nor fired.
func (s *scheduler) live() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// FireAll runs every live timer once.
func (s *scheduler) FireAll() {
	for _, t := range s.live() {
		t.fired = true
		t.f()
	}
}

func withScheduler(s *scheduler) ThrottleOption {
	return func(o *throttleOptions) { o.schedule = s.AfterFunc }
}

type recorder struct {
	mu    sync.Mutex
	calls []int
}

func (r *recorder) record(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.calls...)
}

func TestDebounce_Trailing(t *testing.T) {
	t.Parallel()

	sched := &scheduler{}
	rec := &recorder{}
	d := newDebouncer(rec.record, 30*time.Millisecond, false, sched.AfterFunc)

	d.call(1)
	d.call(2)
	d.call(3)

	assert.Empty(t, rec.snapshot(), "nothing runs before the quiet period")
	require.Len(t, sched.live(), 1, "each call replaces the pending timer")
	assert.Equal(t, 30*time.Millisecond, sched.live()[0].d)

	sched.FireAll()
	assert.Equal(t, []int{3}, rec.snapshot())

	sched.FireAll()
	assert.Equal(t, []int{3}, rec.snapshot())
}

func TestDebounce_StaleTimerIsIgnored(t *testing.T) {
	t.Parallel()

	sched := &scheduler{}
	rec := &recorder{}
	d := newDebouncer(rec.record, time.Second, false, sched.AfterFunc)

	d.call(1)
	d.call(2)

	// the first timer was stopped but its callback can still be in flight
	require.Len(t, sched.timers, 2)
	sched.timers[0].f()
	assert.Empty(t, rec.snapshot())

	sched.FireAll()
	assert.Equal(t, []int{2}, rec.snapshot())
}

func TestDebounce_Immediate(t *testing.T) {
	t.Parallel()

	sched := &scheduler{}
	rec := &recorder{}
	d := newDebouncer(rec.record, 30*time.Millisecond, true, sched.AfterFunc)

	d.call(1)
	d.call(2)
	assert.Equal(t, []int{1}, rec.snapshot())

	sched.FireAll()
	assert.Equal(t, []int{1}, rec.snapshot(), "leading edge only")

	d.call(3)
	assert.Equal(t, []int{1, 3}, rec.snapshot())
}

func TestDebounce_Cancel(t *testing.T) {
	t.Parallel()

	sched := &scheduler{}
	var count atomic.Int32
	d := newDebouncer(func(int) { count.Add(1) }, 20*time.Millisecond, false, sched.AfterFunc)

	d.call(1)
	d.cancel()

	assert.Empty(t, sched.live())
	// a callback that raced the cancel
	sched.timers[0].f()
	assert.Zero(t, count.Load())
}

func TestDebounce_RealTimer(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	call, _ := Debounce(rec.record, 10*time.Millisecond, false)

	call(1)
	call(2)

	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, 5*time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{2}, rec.snapshot())
}

func TestThrottle_LeadingOnly(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sched := &scheduler{}
	rec := &recorder{}
	call := Throttle(rec.record, time.Second, WithTrailing(false), WithClock(clock.Now), withScheduler(sched))

	call(1)
	clock.StepBy(500 * time.Millisecond)
	call(2)
	clock.StepBy(500 * time.Millisecond)
	call(3)
	call(4)

	assert.Equal(t, []int{1, 3}, rec.snapshot())
	assert.Empty(t, sched.timers)
}

func TestThrottle_ClockGoingBackwards(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	rec := &recorder{}
	call := Throttle(rec.record, time.Second, WithTrailing(false), WithClock(clock.Now), withScheduler(&scheduler{}))

	call(1)
	clock.StepBy(-5 * time.Second)
	call(2)

	assert.Equal(t, []int{1, 2}, rec.snapshot())
}

func TestThrottle_Trailing(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sched := &scheduler{}
	rec := &recorder{}
	call := Throttle(rec.record, 40*time.Millisecond, WithClock(clock.Now), withScheduler(sched))

	call(1)
	clock.StepBy(10 * time.Millisecond)
	call(2)
	call(3)
	assert.Equal(t, []int{1}, rec.snapshot())
	require.Len(t, sched.live(), 1)
	assert.Equal(t, 30*time.Millisecond, sched.live()[0].d, "timer covers the rest of the window")

	clock.StepBy(30 * time.Millisecond)
	sched.FireAll()
	assert.Equal(t, []int{1, 3}, rec.snapshot(), "trailing call gets the latest argument")
}

func TestThrottle_NoLeading(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sched := &scheduler{}
	rec := &recorder{}
	call := Throttle(rec.record, 30*time.Millisecond, WithLeading(false), WithClock(clock.Now), withScheduler(sched))

	call(1)
	call(2)
	assert.Empty(t, rec.snapshot())

	clock.StepBy(30 * time.Millisecond)
	sched.FireAll()
	assert.Equal(t, []int{2}, rec.snapshot())
}

func TestThrottle_SingleCallHasNoTrailing(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sched := &scheduler{}
	rec := &recorder{}
	call := Throttle(rec.record, 20*time.Millisecond, WithClock(clock.Now), withScheduler(sched))

	call(1)
	clock.StepBy(time.Second)
	sched.FireAll()

	assert.Equal(t, []int{1}, rec.snapshot())
	assert.Empty(t, sched.timers)
}

func TestThrottle_StaleTrailingCallbackIsIgnored(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sched := &scheduler{}
	rec := &recorder{}
	th := newThrottler(rec.record, time.Hour, WithClock(clock.Now), withScheduler(sched))

	th.call(1)
	clock.StepBy(30 * time.Minute)
	th.call(2)
	require.Len(t, sched.timers, 1)
	stale := sched.timers[0]

	// window is over before the timer got to run
	clock.StepBy(30*time.Minute + time.Millisecond)
	th.call(3)
	assert.True(t, stale.stopped)

	clock.StepBy(time.Millisecond)
	th.call(4)
	require.Len(t, sched.live(), 1)
	assert.Equal(t, []int{1, 3}, rec.snapshot())

	// the stopped timer's callback was already on its way
	stale.f()
	assert.Equal(t, []int{1, 3}, rec.snapshot())
	require.Len(t, sched.live(), 1, "live trailing timer is still armed")

	clock.StepBy(time.Hour)
	sched.FireAll()
	assert.Equal(t, []int{1, 3, 4}, rec.snapshot())
}

func TestThrottle_RealTimer(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	call := Throttle(rec.record, 10*time.Millisecond)

	call(1)
	call(2)
	assert.Equal(t, []int{1}, rec.snapshot())

	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, 5*time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{1, 2}, rec.snapshot())
}
