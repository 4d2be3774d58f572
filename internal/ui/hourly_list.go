package ui

import (
	"fmt"
	"strings"

	"github.com/suvwetoba/weather-app/internal/forecast"
)

// renderHourlyList renders the hourly rows for the selected day.
func renderHourlyList(items []forecast.HourlyItem) string {
	if len(items) == 0 {
		return mutedStyle.Render("No hourly data for this day")
	}

	var lines []string
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			labelStyle.Render(fmt.Sprintf("%5s", item.Label)),
			glyphFor(item.Icon),
			valueStyle.Render(fmt.Sprintf("%d°", item.Temperature)),
		))
	}

	return strings.Join(lines, "\n")
}
