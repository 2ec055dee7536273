package marquee

import (
	"fmt"
	"math"
	"strings"
)

// Curve selects the easing function applied to scroll progress.
type Curve int

const (
	EaseInOut Curve = iota
	Linear
	EaseIn
	EaseOut
)

// easingRate is the exponent shared by every non-linear curve.
const easingRate = 3

var curveNames = [...]string{
	EaseInOut: "ease-in-out",
	Linear:    "linear",
	EaseIn:    "ease-in",
	EaseOut:   "ease-out",
}

func (c Curve) String() string {
	if c < 0 || int(c) >= len(curveNames) {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveNames[c]
}

// Valid reports whether c is one of the defined curves.
func (c Curve) Valid() bool {
	return c >= 0 && int(c) < len(curveNames)
}

// Next returns the curve following c, wrapping around.
func (c Curve) Next() Curve {
	if !c.Valid() {
		return EaseInOut
	}
	return (c + 1) % Curve(len(curveNames))
}

// ParseCurve accepts the names returned by Curve.String. Case, spaces and
// underscores are ignored, so "EaseInOut" and "ease_in_out" both parse.
func ParseCurve(s string) (Curve, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for i, name := range curveNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return Curve(i), nil
		}
	}
	return EaseInOut, fmt.Errorf("unknown easing curve %q", s)
}

// Ease maps normalized progress t to eased progress for curve c.
// t is clamped to [0,1]. Values outside the defined set of curves are
// treated as EaseInOut, the default.
func Ease(t float64, c Curve) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}

	switch c {
	case Linear:
		return t
	case EaseIn:
		return math.Pow(t, easingRate)
	case EaseOut:
		return 1 - math.Pow(1-t, easingRate)
	default:
		return easeInOut(t)
	}
}

func easeInOut(t float64) float64 {
	sign := 1.0
	if easingRate%2 == 0 {
		sign = -1
	}
	t *= 2
	if t < 1 {
		return 0.5 * math.Pow(t, easingRate)
	}
	return sign * 0.5 * (math.Pow(t-2, easingRate) + sign*2)
}
