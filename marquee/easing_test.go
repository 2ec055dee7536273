package marquee

import (
	"testing"
)

var allCurves = []Curve{Linear, EaseIn, EaseOut, EaseInOut}

// TestEaseBoundaries checks that every curve starts at 0 and ends at 1
func TestEaseBoundaries(t *testing.T) {
	for _, c := range allCurves {
		t.Run(c.String(), func(t *testing.T) {
			assertFloat(t, Ease(0, c), 0, "ease(0)")
			assertFloat(t, Ease(1, c), 1, "ease(1)")
			assertFloat(t, Ease(-0.5, c), 0, "ease(-0.5)")
			assertFloat(t, Ease(1.5, c), 1, "ease(1.5)")
		})
	}
}

// TestEaseValues pins the curve formulas at a few sample points
func TestEaseValues(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		t     float64
		want  float64
	}{
		{"linear quarter", Linear, 0.25, 0.25},
		{"ease in half", EaseIn, 0.5, 0.125},
		{"ease out half", EaseOut, 0.5, 0.875},
		{"ease in out quarter", EaseInOut, 0.25, 0.0625},
		{"ease in out half", EaseInOut, 0.5, 0.5},
		{"ease in out three quarters", EaseInOut, 0.75, 0.9375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ease(tt.t, tt.curve)
			assertFloat(t, got, tt.want, tt.name)
		})
	}
}

// TestEaseMonotonic verifies no curve ever moves backwards
func TestEaseMonotonic(t *testing.T) {
	for _, c := range allCurves {
		prev := Ease(0, c)
		for i := 1; i <= 1000; i++ {
			v := Ease(float64(i)/1000, c)
			if v < prev {
				t.Fatalf("%s: ease(%v) = %v < previous %v", c, float64(i)/1000, v, prev)
			}
			if v < 0 || v > 1 {
				t.Fatalf("%s: ease(%v) = %v out of range", c, float64(i)/1000, v)
			}
			prev = v
		}
	}
}

// TestParseCurve tests curve names, including the spellings config files use
func TestParseCurve(t *testing.T) {
	tests := []struct {
		in      string
		want    Curve
		wantErr bool
	}{
		{"linear", Linear, false},
		{"ease-in", EaseIn, false},
		{"EaseOut", EaseOut, false},
		{"ease_in_out", EaseInOut, false},
		{"Ease In Out", EaseInOut, false},
		{"bounce", EaseInOut, true},
		{"", EaseInOut, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCurve(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCurve(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			}
			assertEqual(t, got, tt.want, "curve")
		})
	}
}

// TestCurveNext cycles through every curve and back
func TestCurveNext(t *testing.T) {
	c := EaseInOut
	seen := map[Curve]bool{}
	for i := 0; i < len(allCurves); i++ {
		seen[c] = true
		c = c.Next()
	}
	assertEqual(t, c, EaseInOut, "wrapped curve")
	assertEqual(t, len(seen), len(allCurves), "distinct curves")
	assertEqual(t, Curve(99).Next(), EaseInOut, "invalid curve next")
	assertEqual(t, Curve(99).Valid(), false, "invalid curve")
}

func BenchmarkEase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Ease(float64(i%1000)/1000, EaseInOut)
	}
}
