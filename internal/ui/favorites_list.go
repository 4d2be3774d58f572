package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/suvwetoba/weather-app/internal/favorites"
)

// favoriteItem wraps a saved location for use in a list
type favoriteItem struct {
	saved favorites.SavedLocation
}

// FilterValue implements list.Item
func (f favoriteItem) FilterValue() string {
	return f.saved.Location.DisplayName()
}

// Title implements list.DefaultItem
func (f favoriteItem) Title() string {
	return f.saved.Location.DisplayName()
}

// Description implements list.DefaultItem
func (f favoriteItem) Description() string {
	return fmt.Sprintf("%s • saved %s",
		f.saved.Location.Coordinates, f.saved.CreatedAt.Format("Jan 2, 2006"))
}

// createFavoritesList creates a list.Model from saved locations
func createFavoritesList(saved []favorites.SavedLocation, width, height int) list.Model {
	items := make([]list.Item, len(saved))
	for i, s := range saved {
		items[i] = favoriteItem{saved: s}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Saved Locations"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}
