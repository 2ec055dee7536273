package marquee

import (
	"sort"
	"time"

	"github.com/VividCortex/ewma"
)

// Cancel revokes a scheduled callback. It is safe to call more than once and
// after the callback has already run.
type Cancel func()

// Scheduler is what a Label needs from its host: a clock, a per-frame
// callback tied to display refresh, and deferred callbacks. All callbacks are
// expected to run on the same goroutine that mutates the Label.
type Scheduler interface {
	Now() time.Time
	OnFrame(fn func(now time.Time)) Cancel
	AfterFunc(d time.Duration, fn func()) Cancel
}

// Animation is a declarative transition of a single value. Step receives
// every presented value, Done is called once: with true when the value
// reached To, with false when the animation was cancelled first.
type Animation struct {
	From, To float64
	Duration time.Duration
	Delay    time.Duration
	Curve    Curve
	Step     func(v float64)
	Done     func(finished bool)
}

// Animator runs declarative animations on behalf of a Label.
type Animator interface {
	Animate(a Animation) Cancel
}

type frameHandler struct {
	fn        func(time.Time)
	cancelled bool
}

type timer struct {
	at        time.Time
	seq       uint64
	fn        func()
	cancelled bool
}

// Loop is a cooperative Scheduler and Animator for hosts that own a render
// loop. The host calls Advance once per display refresh; nothing happens
// between calls. Loop is not safe for concurrent use.
type Loop struct {
	now      time.Time
	clock    func() time.Time
	passing  bool
	advanced bool
	seq      uint64
	frames   []*frameHandler
	timers   []*timer
	interval ewma.MovingAverage
}

// NewLoop returns a Loop whose clock starts at now.
func NewLoop(now time.Time) *Loop {
	return &Loop{
		now:      now,
		interval: ewma.NewMovingAverage(),
	}
}

// SetClock makes Now read fn between advances, so work started between two
// frames is stamped with the time it started. Inside Advance, Now is always
// the timestamp of the running pass.
func (l *Loop) SetClock(fn func() time.Time) {
	l.clock = fn
}

// Now returns the timestamp of the running or latest Advance, or the clock
// set with SetClock when that is later.
func (l *Loop) Now() time.Time {
	if l.clock != nil && !l.passing {
		if t := l.clock(); t.After(l.now) {
			return t
		}
	}
	return l.now
}

// OnFrame registers fn to run on every Advance until cancelled.
func (l *Loop) OnFrame(fn func(now time.Time)) Cancel {
	h := &frameHandler{fn: fn}
	l.frames = append(l.frames, h)
	return func() { h.cancelled = true }
}

// AfterFunc runs fn on the first Advance at or after now+d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Cancel {
	l.seq++
	t := &timer{at: l.Now().Add(d), seq: l.seq, fn: fn}
	l.timers = append(l.timers, t)
	return func() { t.cancelled = true }
}

// Animate interpolates a.From to a.To over a.Duration after a.Delay, eased by
// a.Curve, sampling on every frame.
func (l *Loop) Animate(a Animation) Cancel {
	var (
		stopDelay Cancel
		stopFrame Cancel
		done      bool
	)
	step := func(v float64) {
		if a.Step != nil {
			a.Step(v)
		}
	}
	finish := func(finished bool) {
		if done {
			return
		}
		done = true
		if a.Done != nil {
			a.Done(finished)
		}
	}

	stopDelay = l.AfterFunc(a.Delay, func() {
		start := l.now
		step(a.From)
		stopFrame = l.OnFrame(func(now time.Time) {
			elapsed := now.Sub(start)
			if elapsed >= a.Duration {
				step(a.To)
				stopFrame()
				finish(true)
				return
			}
			p := Ease(float64(elapsed)/float64(a.Duration), a.Curve)
			step(a.From + p*(a.To-a.From))
		})
	})

	return func() {
		stopDelay()
		if stopFrame != nil {
			stopFrame()
		}
		finish(false)
	}
}

// Advance moves the clock to now, fires every timer that is due in deadline
// order and then every frame handler. Timers scheduled by a firing timer and
// frame handlers registered by a running frame handler wait for the next
// Advance. A now earlier than the current clock is treated as the current
// clock.
func (l *Loop) Advance(now time.Time) {
	if now.Before(l.now) {
		now = l.now
	}
	if l.advanced {
		l.interval.Add(now.Sub(l.now).Seconds())
	}
	l.advanced = true
	l.now = now
	l.passing = true
	defer func() { l.passing = false }()

	var due, rest []*timer
	for _, t := range l.timers {
		switch {
		case t.cancelled:
		case t.at.After(now):
			rest = append(rest, t)
		default:
			due = append(due, t)
		}
	}
	l.timers = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.cancelled = true
		t.fn()
	}

	frames := append([]*frameHandler(nil), l.frames...)
	for _, h := range frames {
		if !h.cancelled {
			h.fn(now)
		}
	}

	live := l.frames[:0]
	for _, h := range l.frames {
		if !h.cancelled {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(l.frames); i++ {
		l.frames[i] = nil
	}
	l.frames = live
}

// Pending reports whether any frame handler or timer is still registered.
// A host may tick slower while nothing is pending.
func (l *Loop) Pending() bool {
	for _, h := range l.frames {
		if !h.cancelled {
			return true
		}
	}
	for _, t := range l.timers {
		if !t.cancelled {
			return true
		}
	}
	return false
}

// FPS is the smoothed rate at which Advance has been called.
func (l *Loop) FPS() float64 {
	v := l.interval.Value()
	if v <= 0 {
		return 0
	}
	return 1 / v
}
