package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/suvwetoba/weather-app/internal/forecast"
)

// renderMainCard renders the headline card plus the highlight stats.
func (m Model) renderMainCard(rm forecast.RenderModel) string {
	if m.store.Payload() == nil {
		return cardStyle.Render(mutedStyle.Render("No forecast data available"))
	}

	card := rm.MainCard

	var content strings.Builder
	content.WriteString(mutedStyle.Render(card.Date))
	content.WriteString("\n\n")
	content.WriteString(tempStyle.Render(fmt.Sprintf("%s  %d°", glyphFor(card.Icon), card.Temperature)))

	headline := cardStyle.Width(28).Render(content.String())

	highlights := m.renderHighlights(card)

	return lipgloss.JoinHorizontal(lipgloss.Top, headline, highlights)
}

// renderHighlights renders the feels-like/humidity/wind/precipitation
// stats next to the headline.
func (m Model) renderHighlights(card forecast.MainCard) string {
	rows := []string{
		fmt.Sprintf("%s %s", labelStyle.Render("Feels Like:"), valueStyle.Render(fmt.Sprintf("%d°", card.FeelsLike))),
		fmt.Sprintf("%s %s", labelStyle.Render("Humidity:"), valueStyle.Render(card.Humidity+"%")),
		fmt.Sprintf("%s %s", labelStyle.Render("Wind:"), valueStyle.Render(fmt.Sprintf("%d %s", card.WindSpeed, card.WindUnit))),
		fmt.Sprintf("%s %s", labelStyle.Render("Precipitation:"), valueStyle.Render(fmt.Sprintf("%.1f %s", card.Precipitation, card.PrecipUnit))),
	}

	return cardStyle.Render(strings.Join(rows, "\n"))
}
