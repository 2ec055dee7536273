package marquee

import "time"

// Option configures a Label at construction.
type Option func(*Label)

// WithConfig replaces the whole starting configuration.
func WithConfig(c Config) Option {
	return func(l *Label) {
		l.cfg = c
	}
}

func WithText(text string) Option {
	return func(l *Label) {
		l.cfg.Text = text
	}
}

func WithFont(f Font) Option {
	return func(l *Label) {
		l.cfg.Font = f
	}
}

func WithTextColor(color string) Option {
	return func(l *Label) {
		l.cfg.TextColor = color
	}
}

func WithDirection(d Direction) Option {
	return func(l *Label) {
		l.cfg.Direction = d
	}
}

func WithCurve(c Curve) Option {
	return func(l *Label) {
		l.cfg.Curve = c
	}
}

// WithDuration sets the length of one scroll cycle. Values below
// MinDuration are raised to it.
func WithDuration(d time.Duration) Option {
	return func(l *Label) {
		l.cfg.Duration = d
	}
}

func WithSpacing(spacing float64) Option {
	return func(l *Label) {
		l.cfg.Spacing = spacing
	}
}

func WithPause(d time.Duration) Option {
	return func(l *Label) {
		l.cfg.Pause = d
	}
}

// WithLeadIn sets the extra delay before the first declarative cycle.
func WithLeadIn(d time.Duration) Option {
	return func(l *Label) {
		l.cfg.LeadIn = d
	}
}

func WithAutoStart(on bool) Option {
	return func(l *Label) {
		l.cfg.AutoStart = on
	}
}

// WithBounds sets the initial container box.
func WithBounds(r Rect) Option {
	return func(l *Label) {
		l.bounds = r
	}
}

// WithMeasurer replaces the default Monospace{Advance: 0.6} measurer.
func WithMeasurer(m Measurer) Option {
	return func(l *Label) {
		if m != nil {
			l.measurer = m
		}
	}
}

// WithStrategy selects how scrolling is driven. Declarative needs a
// Scheduler that is also an Animator and falls back to Continuous otherwise.
func WithStrategy(s Strategy) Option {
	return func(l *Label) {
		l.strategy = s
	}
}
