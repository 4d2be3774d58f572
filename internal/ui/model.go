package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/suvwetoba/weather-app/internal/config"
	"github.com/suvwetoba/weather-app/internal/favorites"
	"github.com/suvwetoba/weather-app/internal/forecast"
	"github.com/suvwetoba/weather-app/internal/geolocate"
	"github.com/suvwetoba/weather-app/internal/locations"
	"github.com/suvwetoba/weather-app/internal/models"
	"github.com/suvwetoba/weather-app/internal/openmeteo"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading   AppState = iota // Cold-start resolution and first fetch
	StateDashboard                 // Main dashboard display
	StateError                     // Startup failed with no data to show
)

// Focus represents which interactive element owns keyboard input
type Focus int

const (
	FocusNone      Focus = iota // Dashboard browsing keys
	FocusSearch                 // Search input + autosuggest overlay
	FocusUnits                  // Unit toggle menu
	FocusFavorites              // Saved locations list
)

// Unit menu rows, in display order. Pairs share a settings field.
var unitOptions = []struct {
	label string
	field string // "temperature", "wind", "precipitation"
	value string
}{
	{"Celsius (°C)", "temperature", models.TempCelsius},
	{"Fahrenheit (°F)", "temperature", models.TempFahrenheit},
	{"km/h", "wind", models.WindKmh},
	{"mph", "wind", models.WindMph},
	{"Millimeters (mm)", "precipitation", models.PrecipMm},
	{"Inches (in)", "precipitation", models.PrecipInch},
}

// Model represents the application's state
type Model struct {
	state  AppState
	focus  Focus
	width  int
	height int
	err    error
	alert  string // User-facing alert line (city not found, location denied)

	// Search and autosuggest
	searchInput textinput.Model
	suggestList list.Model
	suggestions []models.Location
	suggestSeq  int // Bumped on every keystroke; stale debounces/responses are dropped
	showSuggest bool

	// Unit menu
	unitCursor int

	// Favorites overlay
	favList list.Model

	// Collaborators
	resolver       *locations.Resolver
	forecastClient openmeteo.ForecastClient
	favRepo        *favorites.Repository
	logger         *zap.Logger

	// Application data
	location *models.Location
	units    models.UnitSettings
	store    *forecast.Store
	fetchSeq int // Monotonic forecast request id
	loading  bool

	startCity string // --city flag; skips device location at startup

	spinner spinner.Model
	now     func() time.Time
}

// NewModel creates the application model. startCity, when non-empty,
// bypasses device location at startup.
func NewModel(cfg *config.Config, startCity string, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a place..."
	ti.CharLimit = 100
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	geocoder := openmeteo.NewGeocoder(cfg.API.GeocodingBaseURL, logger)
	locator := geolocate.NewIPLocator(cfg.API.GeolocateURL, logger)

	return Model{
		state:          StateLoading,
		focus:          FocusNone,
		searchInput:    ti,
		resolver:       locations.NewResolver(geocoder, locator, cfg.General.DefaultCity, logger),
		forecastClient: openmeteo.NewForecastClient(cfg.API.ForecastBaseURL, logger),
		favRepo:        favorites.NewRepository(cfg.Storage.Path),
		logger:         logger,
		units:          cfg.UnitSettings(),
		store:          forecast.NewStore(),
		startCity:      startCity,
		spinner:        s,
		now:            time.Now,
	}
}

// Init starts the cold-start resolution.
func (m Model) Init() tea.Cmd {
	if m.startCity != "" {
		return tea.Batch(m.spinner.Tick, resolveQuery(m.resolver, m.startCity))
	}
	return tea.Batch(m.spinner.Tick, resolveStartup(m.resolver))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.focus == FocusFavorites {
			m.favList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case locationResolvedMsg:
		return m.handleLocationResolved(msg)

	case forecastMsg:
		return m.handleForecast(msg)

	case suggestDebounceMsg:
		// Only the newest keystroke's tick may fire a request.
		if m.focus == FocusSearch && msg.seq == m.suggestSeq {
			query := m.searchInput.Value()
			if len(locations.CleanQuery(query)) >= locations.MinQueryLength {
				return m, fetchSuggestions(m.resolver, query, msg.seq)
			}
		}
		return m, nil

	case suggestionsMsg:
		if msg.seq != m.suggestSeq || m.focus != FocusSearch {
			return m, nil // Stale response; a newer keystroke superseded it
		}
		if msg.err != nil {
			m.logger.Warn("autosuggest failed", zap.Error(msg.err))
			return m, nil
		}
		m.suggestions = msg.results
		m.showSuggest = len(msg.results) > 0
		if m.showSuggest {
			m.suggestList = createSuggestList(msg.results, 44, 14)
		}
		return m, nil

	case favoritesLoadedMsg:
		if msg.err != nil {
			m.alert = "Could not load saved locations"
			m.logger.Error("loading favorites", zap.Error(msg.err))
			m.focus = FocusNone
			return m, nil
		}
		m.favList = createFavoritesList(msg.items, m.width-4, m.height-10)
		m.focus = FocusFavorites
		return m, nil

	case locationSavedMsg:
		if msg.err != nil {
			m.alert = "Could not save location"
			m.logger.Error("saving favorite", zap.Error(msg.err))
		} else {
			m.alert = "Location saved"
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case FocusSearch:
			return m.handleSearchKeys(keyMsg)
		case FocusUnits:
			return m.handleUnitMenuKeys(keyMsg)
		case FocusFavorites:
			return m.handleFavoritesKeys(keyMsg)
		default:
			return m.handleBrowseKeys(keyMsg)
		}
	}

	if m.loading || m.state == StateLoading {
		m.spinner, cmd = m.spinner.Update(msg)
	}
	return m, cmd
}

// handleLocationResolved applies a completed location resolution.
func (m Model) handleLocationResolved(msg locationResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, locations.ErrNotFound):
			m.alert = "City not found"
		case errors.Is(msg.err, locations.ErrLocationUnavailable):
			m.alert = "Device location unavailable"
		default:
			m.alert = "Location lookup failed"
			m.logger.Error("location resolution", zap.Error(msg.err))
		}
		// No data at all means the cold start failed outright.
		if m.state == StateLoading && m.store.Payload() == nil {
			m.err = msg.err
			m.state = StateError
		}
		return m, nil
	}

	m.alert = ""
	m.location = msg.location
	if msg.resetDay {
		m.store.ResetDay()
	}
	m.fetchSeq++
	m.loading = true
	return m, tea.Batch(m.spinner.Tick,
		fetchForecast(m.forecastClient, msg.location.Coordinates, m.units, m.fetchSeq))
}

// handleForecast applies a fetched forecast, dropping stale responses.
func (m Model) handleForecast(msg forecastMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.fetchSeq {
		return m, nil // Superseded by a newer request
	}
	m.loading = false

	if msg.err != nil {
		// Logged only; the stored payload stays as-is.
		m.logger.Error("forecast fetch failed", zap.Error(msg.err))
		if m.state == StateLoading && m.store.Payload() == nil {
			m.err = msg.err
			m.state = StateError
		}
		return m, nil
	}

	m.store.SetPayload(msg.forecast)
	m.state = StateDashboard
	return m, nil
}

// handleBrowseKeys handles keys while the dashboard itself is focused.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == StateError {
		// Any key opens search so the user can try a city by hand.
		m.state = StateDashboard
		m.err = nil
		return m.openSearch()
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		return m.openSearch()

	case "u":
		m.focus = FocusUnits
		m.unitCursor = 0
		return m, nil

	case "f":
		return m, loadFavorites(m.favRepo)

	case "S":
		if m.location != nil {
			return m, saveFavorite(m.favRepo, *m.location)
		}
		return m, nil

	case "l":
		m.alert = ""
		return m, resolveDevice(m.resolver)

	case "r":
		if m.location != nil {
			m.fetchSeq++
			m.loading = true
			return m, tea.Batch(m.spinner.Tick,
				fetchForecast(m.forecastClient, m.location.Coordinates, m.units, m.fetchSeq))
		}
		return m, nil

	case "left":
		m.store.SelectDay(m.store.SelectedDay() - 1)
		return m, nil

	case "right":
		m.store.SelectDay(m.store.SelectedDay() + 1)
		return m, nil

	case "t":
		m.store.ResetDay()
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7":
		m.store.SelectDay(int(msg.String()[0]-'0') - 1)
		return m, nil
	}

	return m, nil
}

// openSearch focuses the search input.
func (m Model) openSearch() (tea.Model, tea.Cmd) {
	m.focus = FocusSearch
	m.alert = ""
	m.searchInput.SetValue("")
	m.searchInput.Focus()
	m.suggestions = nil
	m.showSuggest = false
	return m, textinput.Blink
}

// closeSearch blurs the search input and discards suggestions.
func (m *Model) closeSearch() {
	m.focus = FocusNone
	m.searchInput.Blur()
	m.suggestions = nil
	m.showSuggest = false
	m.suggestSeq++ // Invalidate any pending debounce or in-flight request
}

// handleSearchKeys handles keyboard input while searching.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeSearch()
		return m, nil

	case tea.KeyEnter:
		// A highlighted suggestion wins over the raw query.
		if m.showSuggest {
			if item, ok := m.suggestList.SelectedItem().(suggestionItem); ok {
				loc := item.location
				m.closeSearch()
				m.alert = ""
				m.location = &loc
				m.store.ResetDay()
				m.fetchSeq++
				m.loading = true
				return m, tea.Batch(m.spinner.Tick,
					fetchForecast(m.forecastClient, loc.Coordinates, m.units, m.fetchSeq))
			}
		}
		query := m.searchInput.Value()
		if query == "" {
			return m, nil
		}
		m.closeSearch()
		return m, resolveQuery(m.resolver, query)

	case tea.KeyUp, tea.KeyDown:
		if m.showSuggest {
			var cmd tea.Cmd
			m.suggestList, cmd = m.suggestList.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		// Each keystroke restarts the debounce window.
		m.suggestSeq++
		if len(locations.CleanQuery(m.searchInput.Value())) >= locations.MinQueryLength {
			return m, tea.Batch(cmd, debounceSuggest(m.suggestSeq))
		}
		m.suggestions = nil
		m.showSuggest = false
	}
	return m, cmd
}

// handleUnitMenuKeys handles keyboard input in the unit menu.
func (m Model) handleUnitMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "u":
		m.focus = FocusNone
		return m, nil

	case "up", "k":
		if m.unitCursor > 0 {
			m.unitCursor--
		}
		return m, nil

	case "down", "j":
		if m.unitCursor < len(unitOptions)-1 {
			m.unitCursor++
		}
		return m, nil

	case "enter":
		opt := unitOptions[m.unitCursor]
		switch opt.field {
		case "temperature":
			m.units.Temperature = opt.value
		case "wind":
			m.units.Wind = opt.value
		case "precipitation":
			m.units.Precipitation = opt.value
		}
		m.focus = FocusNone
		// Units are baked into the upstream response, so every selection
		// refetches, even when the value did not change.
		if m.location != nil {
			m.fetchSeq++
			m.loading = true
			return m, tea.Batch(m.spinner.Tick,
				fetchForecast(m.forecastClient, m.location.Coordinates, m.units, m.fetchSeq))
		}
		return m, nil
	}

	return m, nil
}

// handleFavoritesKeys handles keyboard input in the saved locations list.
func (m Model) handleFavoritesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		m.focus = FocusNone
		return m, nil

	case "enter":
		if item, ok := m.favList.SelectedItem().(favoriteItem); ok {
			loc := item.saved.Location
			m.focus = FocusNone
			m.alert = ""
			m.location = &loc
			m.store.ResetDay()
			m.fetchSeq++
			m.loading = true
			return m, tea.Batch(m.spinner.Tick,
				fetchForecast(m.forecastClient, loc.Coordinates, m.units, m.fetchSeq))
		}
		return m, nil

	case "x":
		if item, ok := m.favList.SelectedItem().(favoriteItem); ok {
			return m, deleteFavorite(m.favRepo, item.saved.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.favList, cmd = m.favList.Update(msg)
	return m, cmd
}
