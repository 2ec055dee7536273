package marquee

import (
	"fmt"
	"strings"
	"time"
)

// Strategy selects the scroll driver of a Label.
type Strategy int

const (
	// Continuous samples the clock on every frame and eases the offset itself.
	Continuous Strategy = iota
	// Declarative hands each cycle to the host's Animator.
	Declarative
)

func (s Strategy) String() string {
	switch s {
	case Continuous:
		return "continuous"
	case Declarative:
		return "declarative"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts "continuous" or "declarative" in any case.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "continuous", "tick":
		return Continuous, nil
	case "declarative", "animate":
		return Declarative, nil
	}
	return Continuous, fmt.Errorf("unknown scroll strategy %q", s)
}

// driver moves the viewport of a Label through scroll cycles. start is
// called with the epoch the cycle belongs to; every callback the driver
// schedules must compare it with the label's current epoch before acting.
type driver interface {
	start(epoch uint64)
	stop()
}

func newDriver(l *Label, s Strategy) driver {
	if s == Declarative {
		if a, ok := l.sched.(Animator); ok {
			return &animateDriver{l: l, anim: a}
		}
	}
	return &tickDriver{l: l}
}

// tickDriver is the continuous strategy: it accumulates elapsed time on
// every frame, tolerating uneven frame intervals.
type tickDriver struct {
	l *Label

	startOffset float64
	destination float64
	elapsed     time.Duration
	total       time.Duration
	lastSample  time.Time

	stopFrame   Cancel
	stopRestart Cancel
}

func (d *tickDriver) start(epoch uint64) {
	d.startOffset = 0
	d.destination = d.l.distance()
	d.total = d.l.cfg.Duration
	d.elapsed = 0
	d.lastSample = d.l.sched.Now()
	d.l.applyProgress(d.startOffset)

	d.stopFrame = d.l.sched.OnFrame(func(now time.Time) {
		if d.l.epoch != epoch {
			return
		}
		d.sample(now, epoch)
	})
}

func (d *tickDriver) sample(now time.Time, epoch uint64) {
	if dt := now.Sub(d.lastSample); dt > 0 {
		d.elapsed += dt
		d.lastSample = now
	}

	if d.elapsed >= d.total {
		d.elapsed = d.total
		d.cancelFrame()
		d.stopRestart = d.l.sched.AfterFunc(d.l.cfg.Pause, func() {
			if d.l.epoch != epoch {
				return
			}
			d.l.restart()
		})
	}
	d.l.applyProgress(d.current())
}

// current is the eased distance travelled. It snaps to the destination once
// the cycle is over so rounding never overshoots.
func (d *tickDriver) current() float64 {
	if d.elapsed >= d.total {
		return d.destination
	}
	p := Ease(float64(d.elapsed)/float64(d.total), d.l.cfg.Curve)
	return d.startOffset + p*(d.destination-d.startOffset)
}

func (d *tickDriver) cancelFrame() {
	if d.stopFrame != nil {
		d.stopFrame()
		d.stopFrame = nil
	}
}

func (d *tickDriver) stop() {
	d.cancelFrame()
	if d.stopRestart != nil {
		d.stopRestart()
		d.stopRestart = nil
	}
	d.startOffset = 0
	d.destination = 0
	d.elapsed = 0
	d.total = 0
	d.lastSample = time.Time{}
}
