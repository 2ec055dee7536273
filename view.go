package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justinmdickey/scrolllabel/marquee"
)

func (m model) View() string {
	// Get config snapshot for rendering
	cfg := config.Get()

	color := lipgloss.Color(normalizeColor(cfg.UI.Color))
	highlight := lipgloss.NewStyle().Foreground(color)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle := lipgloss.NewStyle()

	width := labelWidth(cfg.UI.MaxWidth, m.width)
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 2)

	var rows []string
	rows = append(rows, highlight.Bold(true).Render("󰓃 Marquee"))
	if len(m.labels) == 0 {
		rows = append(rows, mutedStyle.Render("Nothing to scroll"))
	}
	for _, l := range m.labels {
		rows = append(rows, borderStyle.Render(marquee.Render(l, labelStyle)))
	}

	rows = append(rows, mutedStyle.Render(m.status()))

	// Build help text - either full help or hint to press ?
	var helpText string
	if m.showHelp {
		helpText = lipgloss.NewStyle().
			Width(width + 6).
			Align(lipgloss.Center).
			Render(lipgloss.JoinHorizontal(
				lipgloss.Center,
				"Direction: "+highlight.Render("d"),
				"  Curve: "+highlight.Render("c"),
				"  Stop/Start: "+highlight.Render("s"),
				"  Slower/Faster: "+highlight.Render("+/-"),
				"  Quit: "+highlight.Render("q"),
				"  Hide: "+highlight.Render("?"),
			))
	} else {
		helpText = mutedStyle.Render("Press ? for help")
	}
	rows = append(rows, "\n"+helpText)

	fullUI := lipgloss.JoinVertical(lipgloss.Center, rows...)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		fullUI,
	)
}

// status summarizes the settings of the first label and the frame rate
func (m model) status() string {
	if len(m.labels) == 0 {
		return fmt.Sprintf("%.0f fps", m.loop.FPS())
	}
	c := m.labels[0].Config()
	state := m.labels[0].State().String()
	if m.anyScrolling() {
		state = marquee.Scrolling.String()
	}
	parts := []string{
		state,
		c.Direction.String(),
		c.Curve.String(),
		formatDuration(c.Duration),
		m.strategy.String(),
		fmt.Sprintf("%.0f fps", m.loop.FPS()),
	}
	return strings.Join(parts, " · ")
}
