package marquee

import "time"

// animateDriver is the declarative strategy: one Animation per cycle, re-armed
// from its completion after the configured pause. Only the first cycle waits
// for the lead-in on top of the pause.
type animateDriver struct {
	l    *Label
	anim Animator

	stopAnim  Cancel
	stopRearm Cancel
}

func (d *animateDriver) start(epoch uint64) {
	d.cycle(epoch, d.l.cfg.Pause+d.l.cfg.LeadIn)
}

func (d *animateDriver) cycle(epoch uint64, delay time.Duration) {
	d.cancel()
	d.l.applyProgress(0)

	d.stopAnim = d.anim.Animate(Animation{
		From:     0,
		To:       d.l.distance(),
		Duration: d.l.cfg.Duration,
		Delay:    delay,
		Curve:    d.l.cfg.Curve,
		Step: func(v float64) {
			if d.l.epoch == epoch {
				d.l.applyProgress(v)
			}
		},
		Done: func(finished bool) {
			if !finished || d.l.epoch != epoch {
				return
			}
			d.stopRearm = d.l.sched.AfterFunc(d.l.cfg.Pause, func() {
				if d.l.epoch != epoch {
					return
				}
				d.cycle(epoch, 0)
			})
		},
	})
}

func (d *animateDriver) cancel() {
	if d.stopRearm != nil {
		d.stopRearm()
		d.stopRearm = nil
	}
	if d.stopAnim != nil {
		stop := d.stopAnim
		d.stopAnim = nil
		stop()
	}
}

func (d *animateDriver) stop() {
	d.cancel()
}
