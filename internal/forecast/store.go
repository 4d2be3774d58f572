// Package forecast holds the fetched payload of record and projects it,
// together with the unit settings and selected day, into a render model
// the UI can draw without any further weather logic.
package forecast

import "github.com/suvwetoba/weather-app/internal/models"

// Store holds the single most recently fetched forecast plus the
// currently selected day index. It is mutated only from the UI event
// loop, so it needs no locking.
type Store struct {
	payload     *models.Forecast
	selectedDay int
}

// NewStore creates an empty store with day 0 ("today") selected.
func NewStore() *Store {
	return &Store{}
}

// SetPayload replaces the stored forecast wholesale. The selected day is
// kept; a fresh fetch for the same location should not reset the user's
// day choice.
func (s *Store) SetPayload(f *models.Forecast) {
	s.payload = f
}

// Payload returns the stored forecast, or nil before the first fetch.
func (s *Store) Payload() *models.Forecast {
	return s.payload
}

// SelectedDay returns the selected day index, 0..6.
func (s *Store) SelectedDay() int {
	return s.selectedDay
}

// SelectDay sets the selected day index. Out-of-range values are ignored.
func (s *Store) SelectDay(day int) {
	if day < 0 || day >= models.DaysInForecast {
		return
	}
	s.selectedDay = day
}

// ResetDay returns the selection to day 0. Called when a new location is
// resolved.
func (s *Store) ResetDay() {
	s.selectedDay = 0
}
