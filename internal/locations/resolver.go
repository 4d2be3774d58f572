// Package locations turns user input into a resolved location: a
// free-text city query, the device position, or the configured default
// city at cold start.
package locations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/suvwetoba/weather-app/internal/geolocate"
	"github.com/suvwetoba/weather-app/internal/models"
	"github.com/suvwetoba/weather-app/internal/openmeteo"
)

// ErrNotFound is returned when a city query matches nothing.
var ErrNotFound = errors.New("location not found")

// ErrLocationUnavailable is returned when the device position cannot be
// determined.
var ErrLocationUnavailable = errors.New("device location unavailable")

// SuggestionLimit is the maximum number of autosuggest candidates
// requested per query.
const SuggestionLimit = 10

// MinQueryLength is the minimum query length before autosuggest fires.
const MinQueryLength = 3

// Resolver resolves queries and device positions into locations.
type Resolver struct {
	geocoder    openmeteo.GeocodingClient
	locator     geolocate.Locator
	defaultCity string
	logger      *zap.Logger
}

// NewResolver creates a resolver. defaultCity is the cold-start fallback
// used when the device position is unavailable.
func NewResolver(geocoder openmeteo.GeocodingClient, locator geolocate.Locator, defaultCity string, logger *zap.Logger) *Resolver {
	return &Resolver{
		geocoder:    geocoder,
		locator:     locator,
		defaultCity: defaultCity,
		logger:      logger,
	}
}

// CleanQuery strips any trailing ", region, country" suffix the user may
// have typed, leaving the bare city token for the search endpoint.
func CleanQuery(query string) string {
	city, _, _ := strings.Cut(query, ",")
	return strings.TrimSpace(city)
}

// ResolveQuery geocodes a free-text city query to a single location.
// Returns ErrNotFound when the search yields no results.
func (r *Resolver) ResolveQuery(ctx context.Context, query string) (*models.Location, error) {
	city := CleanQuery(query)
	if city == "" {
		return nil, fmt.Errorf("%w: empty query", ErrNotFound)
	}

	results, err := r.geocoder.SearchCities(ctx, city, 1)
	if err != nil {
		if errors.Is(err, openmeteo.ErrNoResults) {
			return nil, fmt.Errorf("%q: %w", city, ErrNotFound)
		}
		return nil, fmt.Errorf("resolving %q: %w", city, err)
	}

	loc := results[0]
	return &loc, nil
}

// Suggest returns up to SuggestionLimit candidate locations for a partial
// query. Queries shorter than MinQueryLength yield no candidates and no
// network request.
func (r *Resolver) Suggest(ctx context.Context, query string) ([]models.Location, error) {
	city := CleanQuery(query)
	if len(city) < MinQueryLength {
		return nil, nil
	}

	results, err := r.geocoder.SearchCities(ctx, city, SuggestionLimit)
	if err != nil {
		if errors.Is(err, openmeteo.ErrNoResults) {
			return nil, nil
		}
		return nil, fmt.Errorf("suggesting %q: %w", city, err)
	}
	return results, nil
}

// ResolveDevice determines the device position and reverse-geocodes it to
// a named location. When reverse geocoding fails the raw coordinates
// become the display name. Returns ErrLocationUnavailable when the
// position itself cannot be determined.
func (r *Resolver) ResolveDevice(ctx context.Context) (*models.Location, error) {
	coords, err := r.locator.Locate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}

	place, err := r.geocoder.ReverseGeocode(ctx, coords)
	if err != nil {
		r.logger.Warn("reverse geocoding failed, using raw coordinates", zap.Error(err))
		return &models.Location{Coordinates: coords}, nil
	}

	// Keep the located coordinates; the reverse result only names them.
	place.Coordinates = coords
	return place, nil
}

// ResolveStartup picks the initial location: device position first, then
// the configured default city.
func (r *Resolver) ResolveStartup(ctx context.Context) (*models.Location, error) {
	loc, err := r.ResolveDevice(ctx)
	if err == nil {
		return loc, nil
	}
	r.logger.Info("device location unavailable, falling back to default city",
		zap.String("city", r.defaultCity), zap.Error(err))

	return r.ResolveQuery(ctx, r.defaultCity)
}
