package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/suvwetoba/weather-app/internal/favorites"
	"github.com/suvwetoba/weather-app/internal/locations"
	"github.com/suvwetoba/weather-app/internal/models"
	"github.com/suvwetoba/weather-app/internal/openmeteo"
)

// Message types for async operations. Every network call runs inside a
// tea.Cmd and reports back through one of these.

// locationResolvedMsg is sent when a location resolution completes.
// resetDay marks resolutions that change the location (fresh searches,
// locate-me, favorites) as opposed to startup retries.
type locationResolvedMsg struct {
	location *models.Location
	resetDay bool
	err      error
}

// suggestDebounceMsg fires after the autosuggest debounce delay. The
// sequence number identifies the keystroke that scheduled it; a stale
// sequence means another keystroke arrived in the meantime.
type suggestDebounceMsg struct {
	seq int
}

// suggestionsMsg delivers autosuggest candidates. Carries the sequence
// of the query that issued the request so stale responses are discarded.
type suggestionsMsg struct {
	seq     int
	results []models.Location
	err     error
}

// forecastMsg delivers a fetched forecast. seq is the monotonic request
// id; a response that is not the newest request is dropped.
type forecastMsg struct {
	seq      int
	forecast *models.Forecast
	err      error
}

// favoritesLoadedMsg delivers the saved locations list.
type favoritesLoadedMsg struct {
	items []favorites.SavedLocation
	err   error
}

// locationSavedMsg reports the outcome of saving the current location.
type locationSavedMsg struct {
	saved *favorites.SavedLocation
	err   error
}

// debounceDelay is how long autosuggest waits after the last keystroke.
const debounceDelay = 300 * time.Millisecond

// resolveQuery geocodes a free-text city query in the background.
func resolveQuery(resolver *locations.Resolver, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		loc, err := resolver.ResolveQuery(ctx, query)
		return locationResolvedMsg{location: loc, resetDay: true, err: err}
	}
}

// resolveDevice determines the device position in the background.
func resolveDevice(resolver *locations.Resolver) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		loc, err := resolver.ResolveDevice(ctx)
		return locationResolvedMsg{location: loc, resetDay: true, err: err}
	}
}

// resolveStartup performs the cold-start resolution: device position
// first, then the configured default city.
func resolveStartup(resolver *locations.Resolver) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		loc, err := resolver.ResolveStartup(ctx)
		return locationResolvedMsg{location: loc, resetDay: true, err: err}
	}
}

// debounceSuggest schedules the autosuggest debounce tick for a
// keystroke sequence.
func debounceSuggest(seq int) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return suggestDebounceMsg{seq: seq}
	})
}

// fetchSuggestions requests autosuggest candidates for a query.
func fetchSuggestions(resolver *locations.Resolver, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		results, err := resolver.Suggest(ctx, query)
		return suggestionsMsg{seq: seq, results: results, err: err}
	}
}

// fetchForecast fetches the forecast for coordinates in the current
// units, tagged with the request sequence.
func fetchForecast(client openmeteo.ForecastClient, coords models.Coordinates, units models.UnitSettings, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		forecast, err := client.GetForecast(ctx, coords, units)
		return forecastMsg{seq: seq, forecast: forecast, err: err}
	}
}

// loadFavorites reads the saved locations from the repository.
func loadFavorites(repo *favorites.Repository) tea.Cmd {
	return func() tea.Msg {
		items, err := repo.List()
		return favoritesLoadedMsg{items: items, err: err}
	}
}

// saveFavorite stores the current location.
func saveFavorite(repo *favorites.Repository, loc models.Location) tea.Cmd {
	return func() tea.Msg {
		saved, err := repo.Save(loc)
		return locationSavedMsg{saved: saved, err: err}
	}
}

// deleteFavorite removes a saved location and reloads the list.
func deleteFavorite(repo *favorites.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Delete(id); err != nil {
			return favoritesLoadedMsg{err: err}
		}
		items, err := repo.List()
		return favoritesLoadedMsg{items: items, err: err}
	}
}
