package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/suvwetoba/weather-app/internal/forecast"
)

// renderDailyGrid renders the 7-card daily strip. Always exactly seven
// cards, whatever day is selected.
func renderDailyGrid(cards []forecast.DailyCard, selected int) string {
	rendered := make([]string, 0, len(cards))
	for i, card := range cards {
		body := lipgloss.JoinVertical(lipgloss.Center,
			labelStyle.Render(card.Day),
			glyphFor(card.Icon),
			fmt.Sprintf("%d° %s", card.Max, mutedStyle.Render(fmt.Sprintf("%d°", card.Min))),
		)

		style := cardStyle
		if i == selected {
			style = selectedCardStyle
		}
		rendered = append(rendered, style.Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
