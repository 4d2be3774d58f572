package openmeteo

import (
	"context"
	"errors"

	"github.com/suvwetoba/weather-app/internal/models"
)

// ErrNoResults is returned when a geocoding request yields no matches.
var ErrNoResults = errors.New("no matching locations")

// GeocodingClient defines the interface for the Open-Meteo geocoding API.
type GeocodingClient interface {
	// SearchCities resolves a place name to up to count candidate locations.
	SearchCities(ctx context.Context, name string, count int) ([]models.Location, error)

	// ReverseGeocode resolves coordinates to the nearest named place.
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (*models.Location, error)
}

// ForecastClient defines the interface for the Open-Meteo forecast API.
type ForecastClient interface {
	// GetForecast retrieves the current/hourly/daily forecast for a
	// location, with measurements in the requested units.
	GetForecast(ctx context.Context, coords models.Coordinates, units models.UnitSettings) (*models.Forecast, error)
}
