package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#4A90E2") // Sky blue
	colorAccent  = lipgloss.Color("#FFD93D") // Sun yellow
	colorDanger  = lipgloss.Color("#FF6B6B") // Alerts
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2")

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Pane styles
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			MarginRight(1)

	selectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorAccent).
				Padding(1, 2).
				MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	tempStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	alertStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginTop(1)

	// Unit menu styles
	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary)

	menuActiveStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)

// iconGlyphs maps icon identifiers to terminal glyphs.
var iconGlyphs = map[string]string{
	"clear":         "☀",
	"partly-cloudy": "⛅",
	"overcast":      "☁",
	"fog":           "🌫",
	"drizzle":       "🌦",
	"rain":          "🌧",
	"snow":          "❄",
	"storm":         "⛈",
}

// glyphFor returns the terminal glyph for an icon identifier.
func glyphFor(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return iconGlyphs["clear"]
}
