package marquee

import (
	"math"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
)

// Weight is the stroke weight of a Font.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// Font describes how label text is set.
type Font struct {
	Family string
	Size   float64
	Weight Weight
}

// DefaultFont is the font a Label starts with.
var DefaultFont = Font{Family: "system", Size: 16, Weight: Regular}

// Rect is an axis aligned box in container coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Align is the horizontal alignment of an instance inside its frame.
type Align int

const (
	AlignNatural Align = iota
	AlignLeft
)

// Measurer reports the natural, unconstrained width of text set in a font.
type Measurer interface {
	Measure(text string, f Font) float64
}

// MeasurerFunc adapts a plain function to the Measurer interface.
type MeasurerFunc func(text string, f Font) float64

func (fn MeasurerFunc) Measure(text string, f Font) float64 {
	return fn(text, f)
}

// Monospace measures text as a row of equally wide cells. Each cell is
// Advance × font size wide; a zero Advance measures in terminal cells, which
// is what a terminal host wants. East Asian wide runes take two cells and
// ANSI escape sequences take none.
type Monospace struct {
	Advance float64
}

func (m Monospace) Measure(text string, f Font) float64 {
	cells := float64(runewidth.StringWidth(stripansi.Strip(text)))
	if m.Advance == 0 {
		return cells
	}
	return cells * m.Advance * f.Size
}

// Instance is one rendered copy of the label text. A Label owns exactly two:
// the primary and the trailing echo.
type Instance struct {
	Text    string
	Font    Font
	Color   string
	Width   float64 // natural width from the Measurer
	Frame   Rect    // position in content coordinates
	Offset  float64 // horizontal offset relative to the primary instance
	CenterY float64
	Align   Align
	Hidden  bool
}

// layoutInstances sizes both instances to their natural width and places
// the echo one label width plus spacing behind the primary, in the direction
// the text travels. Right moving content is pinned one cycle distance in, so
// the primary sits at the rest position and the echo trails to its left.
func layoutInstances(insts *[2]Instance, text string, font Font, m Measurer, dir Direction, spacing float64, bounds Rect) {
	width := m.Measure(text, font)

	var origin, offset float64
	if dir == Right {
		origin = width + spacing
	}
	for i := range insts {
		in := &insts[i]
		in.Text = text
		in.Font = font
		in.Width = width
		in.Offset = offset
		in.Frame = Rect{X: origin + offset, Y: 0, Width: width, Height: bounds.Height}
		in.CenterY = math.Round((bounds.Y + bounds.Height/2) - bounds.Y)
		in.Align = AlignNatural
		in.Hidden = i > 0

		step := math.Round(width) + spacing
		if dir == Right {
			offset -= step
		} else {
			offset += step
		}
	}
}

// contentExtent over-allocates by one container width so the echo fully
// clears the viewport before the cycle restarts.
func contentExtent(primary Instance, bounds Rect, spacing float64) float64 {
	return primary.Width + bounds.Width + spacing
}

func needsScroll(width, container float64) bool {
	return width > container
}

// pinStatic shows only the primary, filling the container, left aligned.
func pinStatic(insts *[2]Instance, bounds Rect) {
	insts[0].Hidden = false
	insts[0].Offset = 0
	insts[0].Frame = Rect{Width: bounds.Width, Height: bounds.Height}
	insts[0].Align = AlignLeft
	insts[1].Hidden = true
}
