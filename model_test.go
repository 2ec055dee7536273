package main

import (
	"strings"
	"testing"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/charmbracelet/bubbletea"

	"github.com/justinmdickey/scrolllabel/marquee"
)

const longLine = "Welcome to Metro. This is a Belgrave Limited Express Service, stopping all stations except East Richmond."

func testModel(t *testing.T, lines ...string) model {
	t.Helper()
	cfg := validConfig()
	cfg.Scroll.Curve = "linear"
	withConfig(t, cfg)
	return newModel(cfg, lines, func() time.Time { return t0 })
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestNewModelUsesConfigLines falls back to the configured lines
func TestNewModelUsesConfigLines(t *testing.T) {
	m := testModel(t)
	assertEqual(t, len(m.labels), 1, "labels")
	assertEqual(t, m.fixedLines, false, "fixed lines")
	assertEqual(t, m.labels[0].Config().Text, longLine, "text")
	assertEqual(t, m.labels[0].IsScrolling(), true, "long default line scrolls")
}

// TestNewModelArgsWin keeps command line labels
func TestNewModelArgsWin(t *testing.T) {
	m := testModel(t, "short", longLine)
	assertEqual(t, len(m.labels), 2, "labels")
	assertEqual(t, m.fixedLines, true, "fixed lines")
	assertEqual(t, m.labels[0].State(), marquee.Static, "short line")
	assertEqual(t, m.labels[1].IsScrolling(), true, "long line")
}

// TestFrameAdvancesLabels drives the loop from frame messages
func TestFrameAdvancesLabels(t *testing.T) {
	m := testModel(t, longLine)
	m = update(t, m, frameMsg(t0.Add(time.Second)))
	if m.labels[0].Offset() <= 0 {
		t.Errorf("offset after one second = %v; want > 0", m.labels[0].Offset())
	}
	_, cmd := m.Update(frameMsg(t0.Add(2 * time.Second)))
	if cmd == nil {
		t.Error("frame did not schedule the next frame")
	}
}

// TestWindowSizeResizesLabels re-evaluates overflow on resize
func TestWindowSizeResizesLabels(t *testing.T) {
	m := testModel(t, "twenty characters!!!")
	assertEqual(t, m.labels[0].State(), marquee.Static, "fits in 40 columns")

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assertEqual(t, m.labels[0].Bounds().Width, 14.0, "label width")
	assertEqual(t, m.labels[0].IsScrolling(), true, "overflows a narrow terminal")
}

// TestKeys tests the keyboard controls
func TestKeys(t *testing.T) {
	m := testModel(t, longLine)

	m = update(t, m, key("d"))
	assertEqual(t, m.labels[0].Config().Direction, marquee.Right, "direction")

	m = update(t, m, key("c"))
	assertEqual(t, m.labels[0].Config().Curve, marquee.Linear.Next(), "curve")

	m = update(t, m, key("+"))
	assertEqual(t, m.labels[0].Config().Duration, 7*time.Second, "slower")
	m = update(t, m, key("-"))
	m = update(t, m, key("-"))
	assertEqual(t, m.labels[0].Config().Duration, 5*time.Second, "faster")

	m = update(t, m, key("s"))
	assertEqual(t, m.labels[0].IsScrolling(), false, "stopped")
	m = update(t, m, key("s"))
	assertEqual(t, m.labels[0].IsScrolling(), true, "started")

	m = update(t, m, key("?"))
	assertEqual(t, m.showHelp, true, "help")

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

// TestDurationFloor keeps at least one second per cycle
func TestDurationFloor(t *testing.T) {
	m := testModel(t, longLine)
	for i := 0; i < 10; i++ {
		m = update(t, m, key("-"))
	}
	assertEqual(t, m.labels[0].Config().Duration, time.Second, "duration floor")
}

// TestConfigReloadAppliesChanges updates running labels in place
func TestConfigReloadAppliesChanges(t *testing.T) {
	m := testModel(t, longLine)
	label := m.labels[0]
	before := label.Reconfigurations()

	cfg := config.Get()
	cfg.UI.Color = "5"
	config.Set(cfg)
	m = update(t, m, configReloadMsg{})
	assertEqual(t, m.labels[0], label, "label kept")
	assertEqual(t, label.Reconfigurations(), before, "color only")
	assertEqual(t, label.Instances()[0].Color, "5", "color")

	cfg.Scroll.Direction = "right"
	config.Set(cfg)
	m = update(t, m, configReloadMsg{})
	assertEqual(t, label.Config().Direction, marquee.Right, "direction")
	assertEqual(t, label.Reconfigurations(), before+1, "direction relayout")
}

// TestConfigReloadWidthAndLayoutRelayoutOnce applies width and layout together
func TestConfigReloadWidthAndLayoutRelayoutOnce(t *testing.T) {
	m := testModel(t, longLine)
	label := m.labels[0]
	before := label.Reconfigurations()

	cfg := config.Get()
	cfg.UI.MaxWidth = 30
	cfg.Scroll.Direction = "right"
	config.Set(cfg)
	m = update(t, m, configReloadMsg{})

	assertEqual(t, label.Bounds().Width, 30.0, "label width")
	assertEqual(t, label.Config().Direction, marquee.Right, "direction")
	assertEqual(t, label.Reconfigurations(), before+1, "one relayout")
}

// TestFrameIntervalIdles slows the refresh when nothing scrolls
func TestFrameIntervalIdles(t *testing.T) {
	cfg := validConfig()

	m := testModel(t, "short")
	assertEqual(t, m.frameInterval(cfg), idleFrame, "static labels")

	m = testModel(t, longLine)
	assertEqual(t, m.frameInterval(cfg), 16*time.Millisecond, "scrolling label")

	m = update(t, m, key("s"))
	assertEqual(t, m.frameInterval(cfg), idleFrame, "stopped labels")
}

// TestConfigReloadRebuildsOnStrategyChange swaps the scroll driver
func TestConfigReloadRebuildsOnStrategyChange(t *testing.T) {
	m := testModel(t)
	label := m.labels[0]

	cfg := config.Get()
	cfg.Scroll.Strategy = "declarative"
	cfg.Labels.Lines = []string{"a", "b", "c"}
	config.Set(cfg)
	m = update(t, m, configReloadMsg{})

	assertEqual(t, m.strategy, marquee.Declarative, "strategy")
	assertEqual(t, len(m.labels), 3, "labels")
	assertEqual(t, label.IsScrolling(), false, "old label stopped")
}

// TestViewShowsLabels renders static labels verbatim
func TestViewShowsLabels(t *testing.T) {
	m := testModel(t, "Hello", "World")
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	out := stripansi.Strip(m.View())
	for _, want := range []string{"Hello", "World", "Press ? for help", "static"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() does not contain %q:\n%s", want, out)
		}
	}

	m = update(t, m, key("?"))
	out = stripansi.Strip(m.View())
	if !strings.Contains(out, "Quit:") {
		t.Errorf("help not shown:\n%s", out)
	}
}

// TestStatusLine summarizes the first label
func TestStatusLine(t *testing.T) {
	m := testModel(t, longLine)
	status := m.status()
	for _, want := range []string{"scrolling", "left", "linear", "6.0s", "continuous", "fps"} {
		if !strings.Contains(status, want) {
			t.Errorf("status() = %q; missing %q", status, want)
		}
	}
}
