package locations

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/suvwetoba/weather-app/internal/geolocate"
	"github.com/suvwetoba/weather-app/internal/models"
	"github.com/suvwetoba/weather-app/internal/openmeteo"
)

// Mock collaborators

type mockGeocoder struct {
	searchCalls  int
	lastQuery    string
	lastCount    int
	searchResult []models.Location
	searchErr    error

	reverseResult *models.Location
	reverseErr    error
}

func (m *mockGeocoder) SearchCities(ctx context.Context, name string, count int) ([]models.Location, error) {
	m.searchCalls++
	m.lastQuery = name
	m.lastCount = count
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.searchResult, nil
}

func (m *mockGeocoder) ReverseGeocode(ctx context.Context, coords models.Coordinates) (*models.Location, error) {
	if m.reverseErr != nil {
		return nil, m.reverseErr
	}
	return m.reverseResult, nil
}

type mockLocator struct {
	coords models.Coordinates
	err    error
}

func (m *mockLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	if m.err != nil {
		return models.Coordinates{}, m.err
	}
	return m.coords, nil
}

var berlin = models.Location{
	Coordinates: models.Coordinates{Latitude: 52.52, Longitude: 13.41},
	Name:        "Berlin",
	Country:     "Germany",
}

func TestCleanQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Warri, Delta, Nigeria", "Warri"},
		{"Berlin", "Berlin"},
		{"  Chatham , MA", "Chatham"},
		{", Nigeria", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanQuery(tt.input); got != tt.want {
			t.Errorf("CleanQuery(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolver_ResolveQuery(t *testing.T) {
	g := &mockGeocoder{searchResult: []models.Location{berlin}}
	r := NewResolver(g, &mockLocator{}, "Berlin", zap.NewNop())

	loc, err := r.ResolveQuery(context.Background(), "Berlin, Land Berlin, Germany")
	if err != nil {
		t.Fatalf("ResolveQuery() error = %v", err)
	}

	// Only the bare city token reaches the search endpoint, and only one
	// result is requested.
	if g.lastQuery != "Berlin" {
		t.Errorf("search query = %q, want 'Berlin'", g.lastQuery)
	}
	if g.lastCount != 1 {
		t.Errorf("search count = %d, want 1", g.lastCount)
	}
	if loc.Name != "Berlin" {
		t.Errorf("Name = %s, want Berlin", loc.Name)
	}
}

func TestResolver_ResolveQuery_NotFound(t *testing.T) {
	g := &mockGeocoder{searchErr: fmt.Errorf("searching: %w", openmeteo.ErrNoResults)}
	r := NewResolver(g, &mockLocator{}, "Berlin", zap.NewNop())

	_, err := r.ResolveQuery(context.Background(), "Xyzzyville")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestResolver_ResolveQuery_Empty(t *testing.T) {
	g := &mockGeocoder{}
	r := NewResolver(g, &mockLocator{}, "Berlin", zap.NewNop())

	if _, err := r.ResolveQuery(context.Background(), "   "); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if g.searchCalls != 0 {
		t.Errorf("searchCalls = %d, want 0 for empty query", g.searchCalls)
	}
}

func TestResolver_Suggest_MinLength(t *testing.T) {
	g := &mockGeocoder{searchResult: []models.Location{berlin}}
	r := NewResolver(g, &mockLocator{}, "Berlin", zap.NewNop())

	// Below the minimum no network request is issued.
	results, err := r.Suggest(context.Background(), "Be")
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil below minimum length", results)
	}
	if g.searchCalls != 0 {
		t.Errorf("searchCalls = %d, want 0 for a 2-character query", g.searchCalls)
	}

	results, err = r.Suggest(context.Background(), "Ber")
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if g.searchCalls != 1 {
		t.Errorf("searchCalls = %d, want 1", g.searchCalls)
	}
	if g.lastCount != SuggestionLimit {
		t.Errorf("search count = %d, want %d", g.lastCount, SuggestionLimit)
	}
	if len(results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(results))
	}
}

func TestResolver_Suggest_NoResultsIsNotAnError(t *testing.T) {
	g := &mockGeocoder{searchErr: openmeteo.ErrNoResults}
	r := NewResolver(g, &mockLocator{}, "Berlin", zap.NewNop())

	results, err := r.Suggest(context.Background(), "Xyzzy")
	if err != nil {
		t.Errorf("Suggest() error = %v, want nil", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestResolver_ResolveDevice(t *testing.T) {
	coords := models.Coordinates{Latitude: 6.34, Longitude: 5.62}
	g := &mockGeocoder{reverseResult: &models.Location{
		Coordinates: models.Coordinates{Latitude: 6.3405, Longitude: 5.6206},
		Name:        "Warri",
		Admin1:      "Delta",
		Country:     "Nigeria",
	}}
	r := NewResolver(g, &mockLocator{coords: coords}, "Berlin", zap.NewNop())

	loc, err := r.ResolveDevice(context.Background())
	if err != nil {
		t.Fatalf("ResolveDevice() error = %v", err)
	}
	if loc.Name != "Warri" {
		t.Errorf("Name = %s, want Warri", loc.Name)
	}
	// The device coordinates win over the reverse result's.
	if loc.Coordinates != coords {
		t.Errorf("Coordinates = %v, want %v", loc.Coordinates, coords)
	}
}

func TestResolver_ResolveDevice_ReverseFallback(t *testing.T) {
	coords := models.Coordinates{Latitude: 6.34, Longitude: 5.62}
	g := &mockGeocoder{reverseErr: openmeteo.ErrNoResults}
	r := NewResolver(g, &mockLocator{coords: coords}, "Berlin", zap.NewNop())

	loc, err := r.ResolveDevice(context.Background())
	if err != nil {
		t.Fatalf("ResolveDevice() error = %v", err)
	}
	if loc.DisplayName() != "6.34, 5.62" {
		t.Errorf("DisplayName() = %q, want raw coordinates", loc.DisplayName())
	}
}

func TestResolver_ResolveDevice_Unavailable(t *testing.T) {
	r := NewResolver(&mockGeocoder{}, &mockLocator{err: geolocate.ErrUnavailable}, "Berlin", zap.NewNop())

	_, err := r.ResolveDevice(context.Background())
	if !errors.Is(err, ErrLocationUnavailable) {
		t.Errorf("error = %v, want ErrLocationUnavailable", err)
	}
}

func TestResolver_ResolveStartup_FallsBackToDefaultCity(t *testing.T) {
	g := &mockGeocoder{searchResult: []models.Location{berlin}}
	r := NewResolver(g, &mockLocator{err: geolocate.ErrUnavailable}, "Berlin", zap.NewNop())

	loc, err := r.ResolveStartup(context.Background())
	if err != nil {
		t.Fatalf("ResolveStartup() error = %v", err)
	}
	if loc.Name != "Berlin" {
		t.Errorf("Name = %s, want the default city", loc.Name)
	}
	if g.lastQuery != "Berlin" {
		t.Errorf("search query = %q, want 'Berlin'", g.lastQuery)
	}
}

func TestResolver_ResolveStartup_PrefersDevice(t *testing.T) {
	g := &mockGeocoder{reverseResult: &berlin}
	r := NewResolver(g, &mockLocator{coords: berlin.Coordinates}, "Paris", zap.NewNop())

	loc, err := r.ResolveStartup(context.Background())
	if err != nil {
		t.Fatalf("ResolveStartup() error = %v", err)
	}
	if loc.Name != "Berlin" {
		t.Errorf("Name = %s, want Berlin from the device path", loc.Name)
	}
	if g.searchCalls != 0 {
		t.Errorf("searchCalls = %d, want 0 when the device path succeeds", g.searchCalls)
	}
}
