package ui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/suvwetoba/weather-app/internal/models"
)

// suggestionItem wraps a geocoding candidate for use in a list
type suggestionItem struct {
	location models.Location
}

// FilterValue implements list.Item
func (s suggestionItem) FilterValue() string {
	return s.location.DisplayName()
}

// Title implements list.DefaultItem
func (s suggestionItem) Title() string {
	return s.location.Name
}

// Description implements list.DefaultItem
func (s suggestionItem) Description() string {
	desc := s.location.Country
	if s.location.Admin1 != "" {
		desc = s.location.Admin1 + ", " + desc
	}
	return desc
}

// createSuggestList creates a list.Model from geocoding candidates
func createSuggestList(candidates []models.Location, width, height int) list.Model {
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = suggestionItem{location: c}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Matching places"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return l
}
