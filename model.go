package main

import (
	"time"

	"github.com/charmbracelet/bubbletea"

	"github.com/justinmdickey/scrolllabel/marquee"
)

// model is the Bubble Tea model for the TUI application
type model struct {
	loop   *marquee.Loop
	labels []*marquee.Label
	lines  []string

	// Lines given on the command line are not replaced by config reloads
	fixedLines bool
	strategy   marquee.Strategy

	width  int
	height int

	// UI state
	showHelp bool
}

// Display refresh tick
type frameMsg time.Time

// Tick rate while no label has anything scheduled
const idleFrame = 250 * time.Millisecond

// Schedule next display refresh
func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// frameInterval is the configured refresh rate, or the idle rate when every
// label is static or stopped
func (m model) frameInterval(cfg Config) time.Duration {
	d := time.Duration(cfg.Timing.FrameMs) * time.Millisecond
	if !m.loop.Pending() && d < idleFrame {
		return idleFrame
	}
	return d
}

func newModel(cfg Config, lines []string, clock func() time.Time) model {
	loop := marquee.NewLoop(clock())
	loop.SetClock(clock)
	m := model{
		loop:       loop,
		fixedLines: len(lines) > 0,
	}
	if !m.fixedLines {
		lines = cfg.Labels.Lines
	}
	m.strategy, _ = marquee.ParseStrategy(cfg.Scroll.Strategy)
	m.setLines(cfg, lines)
	return m
}

// setLines rebuilds every label; the terminal size is kept
func (m *model) setLines(cfg Config, lines []string) {
	for _, l := range m.labels {
		l.Stop()
	}
	m.lines = append([]string(nil), lines...)
	m.labels = make([]*marquee.Label, 0, len(lines))
	bounds := m.bounds(cfg)
	for _, text := range lines {
		m.labels = append(m.labels, marquee.New(m.loop,
			marquee.WithConfig(labelConfig(cfg, text)),
			marquee.WithMeasurer(marquee.Monospace{}),
			marquee.WithStrategy(m.strategy),
			marquee.WithBounds(bounds),
		))
	}
}

func (m model) bounds(cfg Config) marquee.Rect {
	return marquee.Rect{Width: float64(labelWidth(cfg.UI.MaxWidth, m.width)), Height: 1}
}

func sameLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// applyConfig pushes a reloaded config into the running labels. Labels are
// only rebuilt when the lines or the scroll strategy changed.
func (m *model) applyConfig(cfg Config) {
	strategy, _ := marquee.ParseStrategy(cfg.Scroll.Strategy)
	lines := m.lines
	if !m.fixedLines {
		lines = cfg.Labels.Lines
	}
	if strategy != m.strategy || !sameLines(lines, m.lines) {
		m.strategy = strategy
		m.setLines(cfg, lines)
		return
	}
	bounds := m.bounds(cfg)
	for i, l := range m.labels {
		l.ApplyBounds(labelConfig(cfg, m.lines[i]), bounds)
	}
}

func (m model) anyScrolling() bool {
	for _, l := range m.labels {
		if l.IsScrolling() {
			return true
		}
	}
	return false
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.frameInterval(config.Get())),
		watchConfigCmd(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "d":
			for _, l := range m.labels {
				l.SetDirection(l.Config().Direction.Opposite())
			}
		case "c":
			for _, l := range m.labels {
				l.SetCurve(l.Config().Curve.Next())
			}
		case "s":
			// Toggle between stopped and scrolling
			scrolling := m.anyScrolling()
			for _, l := range m.labels {
				if scrolling {
					l.Stop()
				} else {
					l.ScrollIfNeeded()
				}
			}
		case "+", "=":
			for _, l := range m.labels {
				l.SetDuration(l.Config().Duration + time.Second)
			}
		case "-":
			for _, l := range m.labels {
				if d := l.Config().Duration - time.Second; d >= time.Second {
					l.SetDuration(d)
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bounds := m.bounds(config.Get())
		for _, l := range m.labels {
			l.SetBounds(bounds)
		}
		return m, nil

	case configReloadMsg:
		m.applyConfig(config.Get())
		// Continue watching for more config changes
		return m, watchConfigCmd()

	case frameMsg:
		m.loop.Advance(time.Time(msg))
		// Schedule next frame immediately for consistent timing
		return m, frameCmd(m.frameInterval(config.Get()))
	}

	return m, nil
}
