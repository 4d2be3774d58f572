package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/suvwetoba/weather-app/internal/forecast"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateError:
		return m.viewError()
	case StateDashboard:
		return m.viewDashboard()
	}

	return ""
}

// viewLoading renders the cold-start screen
func (m Model) viewLoading() string {
	title := titleStyle.Render("☀ Weather Dashboard")
	status := mutedStyle.Render("Finding your location...")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		title,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := alertStyle.Render("✗ Error")

	errorMsg := "An unknown error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	help := helpStyle.Render("Press any key to search for a city • Ctrl+C: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}

// viewDashboard renders the main dashboard
func (m Model) viewDashboard() string {
	if m.focus == FocusFavorites {
		return m.viewFavorites()
	}

	rm := forecast.Build(m.store.Payload(), m.units, m.store.SelectedDay(), m.now())

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.focus == FocusSearch {
		sections = append(sections, m.renderSearch())
	}

	if m.focus == FocusUnits {
		sections = append(sections, m.renderUnitMenu())
	}

	sections = append(sections,
		m.renderMainCard(rm),
		sectionHeaderStyle.Render("7-DAY FORECAST"),
		renderDailyGrid(rm.DailyCards, m.store.SelectedDay()),
		sectionHeaderStyle.Render(fmt.Sprintf("HOURLY — %s", dayOptionLabel(rm, m.store.SelectedDay()))),
		renderHourlyList(rm.Hourly),
	)

	sections = append(sections, m.renderFooter(rm))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with the resolved location.
func (m Model) renderHeader() string {
	title := titleStyle.Render("☀ Weather Dashboard")

	location := "No location"
	if m.location != nil {
		location = m.location.DisplayName()
	}
	loc := mutedStyle.Render("📍 " + location)

	if m.loading {
		loc += " " + m.spinner.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", loc)
}

// renderSearch renders the search box and the autosuggest overlay.
func (m Model) renderSearch() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(46).
		Render(m.searchInput.View())

	if !m.showSuggest {
		return box
	}
	return lipgloss.JoinVertical(lipgloss.Left, box, m.suggestList.View())
}

// renderUnitMenu renders the unit toggle overlay.
func (m Model) renderUnitMenu() string {
	var lines []string
	lines = append(lines, labelStyle.Render("Units"))

	active := map[string]string{
		"temperature":   m.units.Temperature,
		"wind":          m.units.Wind,
		"precipitation": m.units.Precipitation,
	}

	prevField := ""
	for i, opt := range unitOptions {
		if opt.field != prevField && prevField != "" {
			lines = append(lines, "")
		}
		prevField = opt.field

		marker := "  "
		line := opt.label
		if active[opt.field] == opt.value {
			marker = "✓ "
			line = menuActiveStyle.Render(line)
		}
		line = marker + line
		if i == m.unitCursor {
			line = menuSelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", helpStyle.Render("↑/↓: Move • Enter: Select • Esc: Close"))
	return menuStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// viewFavorites renders the saved locations overlay.
func (m Model) viewFavorites() string {
	help := helpStyle.Render("↑/↓: Navigate • Enter: Load • X: Delete • Esc: Back")
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("☀ Saved Locations"),
		"",
		m.favList.View(),
		help,
	)
}

// dayOptionLabel returns the selector label of the selected day.
func dayOptionLabel(rm forecast.RenderModel, selected int) string {
	if selected < 0 || selected >= len(rm.DayOptions) {
		return "Today"
	}
	return rm.DayOptions[selected]
}

// renderFooter renders the day selector, alert line and key help.
func (m Model) renderFooter(rm forecast.RenderModel) string {
	var sections []string

	sections = append(sections, renderDaySelector(rm.DayOptions, m.store.SelectedDay()))

	if m.alert != "" {
		sections = append(sections, alertStyle.Render("✗ "+m.alert))
	}

	sections = append(sections, helpStyle.Render(
		"/: Search • L: Locate me • U: Units • ←/→: Day • F: Favorites • Shift+S: Save • R: Refresh • Q: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDaySelector renders the 7-entry day strip with the selection
// highlighted.
func renderDaySelector(options []string, selected int) string {
	if len(options) == 0 {
		return ""
	}
	var parts []string
	for i, opt := range options {
		if i == selected {
			parts = append(parts, menuSelectedStyle.Render(" "+opt+" "))
		} else {
			parts = append(parts, mutedStyle.Render(" "+opt+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
