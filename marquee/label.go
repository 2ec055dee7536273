package marquee

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Direction is the way text travels across the viewport.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Right {
		return Left
	}
	return Right
}

// ParseDirection accepts "left" or "right" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown scroll direction %q", s)
}

// State is the observable scroll state of a Label.
type State int

const (
	// Idle means nothing is scheduled: the label was stopped or reconfigured
	// and has not been asked to scroll yet.
	Idle State = iota
	// Static means the text fits and is shown without animation.
	Static
	// Scrolling means a driver is running, including the pause between cycles.
	Scrolling
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Static:
		return "static"
	case Scrolling:
		return "scrolling"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	DefaultDuration = 6 * time.Second
	DefaultSpacing  = 40
	DefaultPause    = time.Second
	DefaultLeadIn   = 500 * time.Millisecond

	// MinDuration is the shortest accepted scroll cycle.
	MinDuration = time.Millisecond
)

// Config is the host settable part of a Label.
type Config struct {
	Text      string
	Font      Font
	TextColor string
	Direction Direction
	Curve     Curve
	// Duration of one scroll cycle.
	Duration time.Duration
	// Spacing between the primary and the echo instance.
	Spacing float64
	// Pause between two cycles.
	Pause time.Duration
	// LeadIn is added to Pause before the first declarative cycle.
	LeadIn    time.Duration
	AutoStart bool
}

// DefaultConfig returns the configuration a new Label starts from.
func DefaultConfig() Config {
	return Config{
		Font:      DefaultFont,
		Direction: Left,
		Curve:     EaseInOut,
		Duration:  DefaultDuration,
		Spacing:   DefaultSpacing,
		Pause:     DefaultPause,
		LeadIn:    DefaultLeadIn,
		AutoStart: true,
	}
}

// clamped replaces values outside their domain with the nearest valid one.
func (c Config) clamped() Config {
	if c.Duration < MinDuration {
		c.Duration = MinDuration
	}
	if c.Spacing < 0 || math.IsNaN(c.Spacing) {
		c.Spacing = 0
	}
	if c.Pause < 0 {
		c.Pause = 0
	}
	if c.LeadIn < 0 {
		c.LeadIn = 0
	}
	if !c.Curve.Valid() {
		c.Curve = EaseInOut
	}
	if c.Direction != Left && c.Direction != Right {
		c.Direction = Left
	}
	return c
}

// relayoutNeeded reports whether moving from old to c changes layout or the
// scroll trajectory. Colour, timing and auto start are picked up without a
// relayout.
func relayoutNeeded(old, c Config) bool {
	return old.Text != c.Text ||
		old.Font != c.Font ||
		old.Direction != c.Direction ||
		old.Spacing != c.Spacing ||
		old.Curve != c.Curve
}

// Label is a marquee: a single line of text that scrolls when it does not fit
// its container. A Label is driven entirely by its Scheduler and must only be
// used from the goroutine that advances it.
type Label struct {
	sched    Scheduler
	measurer Measurer
	strategy Strategy
	driver   driver

	cfg    Config
	bounds Rect

	insts   [2]Instance
	content float64
	offset  float64
	state   State

	// epoch invalidates every deferred callback issued before the last
	// stop, start or reconfiguration.
	epoch     uint64
	reconfigs int
}

// New builds a Label on top of s and lays it out. With AutoStart (the
// default) it starts scrolling right away if the text overflows.
func New(s Scheduler, opts ...Option) *Label {
	l := &Label{
		sched:    s,
		measurer: Monospace{Advance: 0.6},
		cfg:      DefaultConfig(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	l.cfg = l.cfg.clamped()
	l.driver = newDriver(l, l.strategy)
	l.configure()
	return l
}

// Apply replaces the whole configuration. Unchanged configurations are
// ignored; otherwise the label is relaid out at most once.
func (l *Label) Apply(c Config) {
	l.ApplyBounds(c, l.bounds)
}

// ApplyBounds replaces the configuration and the container box together,
// relaying out at most once for both.
func (l *Label) ApplyBounds(c Config, r Rect) {
	c = c.clamped()
	old := l.cfg
	if c == old && r == l.bounds {
		return
	}
	l.cfg = c
	if relayoutNeeded(old, c) || r != l.bounds {
		l.bounds = r
		l.configure()
		return
	}
	if c.TextColor != old.TextColor {
		l.paint()
	}
}

func (l *Label) SetText(text string) {
	c := l.cfg
	c.Text = text
	l.Apply(c)
}

func (l *Label) SetTextColor(color string) {
	c := l.cfg
	c.TextColor = color
	l.Apply(c)
}

func (l *Label) SetFont(f Font) {
	c := l.cfg
	c.Font = f
	l.Apply(c)
}

func (l *Label) SetDirection(d Direction) {
	c := l.cfg
	c.Direction = d
	l.Apply(c)
}

func (l *Label) SetCurve(curve Curve) {
	c := l.cfg
	c.Curve = curve
	l.Apply(c)
}

// SetDuration takes effect from the next scroll cycle.
func (l *Label) SetDuration(d time.Duration) {
	c := l.cfg
	c.Duration = d
	l.Apply(c)
}

func (l *Label) SetSpacing(spacing float64) {
	c := l.cfg
	c.Spacing = spacing
	l.Apply(c)
}

// SetPause takes effect from the next scroll cycle.
func (l *Label) SetPause(d time.Duration) {
	c := l.cfg
	c.Pause = d
	l.Apply(c)
}

func (l *Label) SetAutoStart(on bool) {
	c := l.cfg
	c.AutoStart = on
	l.Apply(c)
}

// SetBounds updates the measured container box.
func (l *Label) SetBounds(r Rect) {
	l.ApplyBounds(l.cfg, r)
}

// ScrollIfNeeded starts scrolling when the text overflows the container and
// pins it statically otherwise. Calling it while already scrolling does
// nothing.
func (l *Label) ScrollIfNeeded() {
	if needsScroll(l.insts[0].Width, l.bounds.Width) {
		if l.state == Scrolling {
			return
		}
		l.insts[0].Hidden = false
		l.insts[1].Hidden = false
		l.start()
		return
	}

	l.epoch++
	l.driver.stop()
	pinStatic(&l.insts, l.bounds)
	l.content = l.bounds.Width
	l.offset = 0
	l.state = Static
}

// Stop halts any scroll, drops every pending callback and returns the
// viewport to the rest position.
func (l *Label) Stop() {
	pinned := l.state == Static
	l.epoch++
	l.driver.stop()
	if pinned {
		// a pinned primary only lines up with offset 0
		l.layout()
	}
	l.insts[1].Hidden = true
	l.offset = l.rest()
	l.state = Idle
}

func (l *Label) IsScrolling() bool { return l.state == Scrolling }

func (l *Label) State() State { return l.state }

// Offset is the horizontal scroll position of the viewport in content
// coordinates.
func (l *Label) Offset() float64 { return l.offset }

// ContentWidth is the scrollable extent of the laid out content.
func (l *Label) ContentWidth() float64 { return l.content }

func (l *Label) Bounds() Rect { return l.bounds }

func (l *Label) Config() Config { return l.cfg }

// Instances returns a copy of the primary and echo instances.
func (l *Label) Instances() [2]Instance { return l.insts }

// Reconfigurations counts full relayouts since construction.
func (l *Label) Reconfigurations() int { return l.reconfigs }

// configure stops, relays out and, with AutoStart, scrolls if needed.
func (l *Label) configure() {
	l.relayout()
	if l.cfg.AutoStart {
		l.ScrollIfNeeded()
	}
}

func (l *Label) relayout() {
	l.reconfigs++
	l.Stop()
	l.layout()
	l.offset = l.rest()
}

func (l *Label) layout() {
	layoutInstances(&l.insts, l.cfg.Text, l.cfg.Font, l.measurer, l.cfg.Direction, l.cfg.Spacing, l.bounds)
	l.paint()
	l.content = contentExtent(l.insts[0], l.bounds, l.cfg.Spacing)
}

// restart begins the next cycle from a fresh layout, reading whatever
// configuration is current by now.
func (l *Label) restart() {
	l.relayout()
	l.ScrollIfNeeded()
}

func (l *Label) start() {
	l.epoch++
	l.driver.stop()
	l.state = Scrolling
	l.driver.start(l.epoch)
}

func (l *Label) paint() {
	for i := range l.insts {
		l.insts[i].Color = l.cfg.TextColor
	}
}

// distance is how far the content travels in one cycle.
func (l *Label) distance() float64 {
	return l.insts[0].Width + l.cfg.Spacing
}

// rest is the offset the viewport returns to when not animating. Right moving
// content rests pre-scrolled and travels toward zero.
func (l *Label) rest() float64 {
	if l.cfg.Direction == Right {
		return l.distance()
	}
	return 0
}

// applyProgress maps the distance travelled so far onto the viewport offset.
func (l *Label) applyProgress(v float64) {
	if l.cfg.Direction == Right {
		l.offset = l.distance() - v
		return
	}
	l.offset = v
}
