package marquee

import (
	"math"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Viewport returns the visible part of l as plain text exactly as wide as
// its container, one terminal cell per unit of width. It assumes the label
// is measured in cells, e.g. with Monospace{}.
func Viewport(l *Label) string {
	width := int(math.Round(l.bounds.Width))
	if width <= 0 {
		return ""
	}

	row := make([]rune, width)
	covered := make([]bool, width) // trailing cells of a wide rune
	for i := range row {
		row[i] = ' '
	}

	for _, in := range l.insts {
		if in.Hidden {
			continue
		}
		x := int(math.Round(in.Frame.X - l.offset))
		for _, r := range stripansi.Strip(in.Text) {
			if x >= width {
				break
			}
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x >= 0 && x+w <= width {
				row[x] = r
				for k := 1; k < w; k++ {
					covered[x+k] = true
				}
			}
			x += w
		}
	}

	var b strings.Builder
	for i, r := range row {
		if !covered[i] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Render draws the viewport of l with style, adding the label's text colour
// and a bold weight when its font asks for one.
func Render(l *Label, style lipgloss.Style) string {
	primary := l.insts[0]
	if primary.Color != "" {
		style = style.Foreground(lipgloss.Color(primary.Color))
	}
	if primary.Font.Weight == Bold {
		style = style.Bold(true)
	}
	return style.Render(Viewport(l))
}
