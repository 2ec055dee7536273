package marquee

import (
	"math"
	"testing"
	"time"
)

const metroText = "Welcome to Metro. This is a Belgrave Limited Express Service, stopping all stations except East Richmond."

// t0 is the synthetic clock origin used by every test loop
var t0 = time.Date(2017, time.March, 1, 9, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return t0.Add(d)
}

// fixedWidth measures every text as w wide
func fixedWidth(w float64) Measurer {
	return MeasurerFunc(func(string, Font) float64 { return w })
}

// newTestLabel builds a label in a 320x60 container on a fresh loop
func newTestLabel(opts ...Option) (*Label, *Loop) {
	loop := NewLoop(t0)
	base := []Option{WithBounds(Rect{Width: 320, Height: 60})}
	return New(loop, append(base, opts...)...), loop
}

// assertEqual is a generic test helper for comparing values
func assertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// assertFloat compares floats with a small tolerance
func assertFloat(t *testing.T, got, want float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}
