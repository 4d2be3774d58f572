package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/suvwetoba/weather-app/internal/models"
)

const defaultGeocodingURL = "https://geocoding-api.open-meteo.com"

// OpenMeteoGeocoder implements GeocodingClient using the Open-Meteo
// geocoding API. Requests are rate limited client-side so that rapid
// autosuggest queries stay well inside the upstream usage policy.
type OpenMeteoGeocoder struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewGeocoder creates a new Open-Meteo geocoding client. An empty
// baseURL selects the public API.
func NewGeocoder(baseURL string, logger *zap.Logger) *OpenMeteoGeocoder {
	if baseURL == "" {
		baseURL = defaultGeocodingURL
	}
	return &OpenMeteoGeocoder{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(4), 8),
		logger:  logger,
	}
}

// geocodingResponse is the wire shape of both the search and reverse
// endpoints. An absent results key means not found.
type geocodingResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

// SearchCities resolves a place name to up to count candidate locations.
// Returns ErrNoResults when the API reports no matches.
func (g *OpenMeteoGeocoder) SearchCities(ctx context.Context, name string, count int) ([]models.Location, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", strconv.Itoa(count))
	params.Set("language", "en")
	params.Set("format", "json")

	var resp geocodingResponse
	if err := g.get(ctx, "/v1/search", params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("searching %q: %w", name, ErrNoResults)
	}

	locations := make([]models.Location, 0, len(resp.Results))
	for _, r := range resp.Results {
		locations = append(locations, models.Location{
			Coordinates: models.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude},
			Name:        r.Name,
			Admin1:      r.Admin1,
			Country:     r.Country,
		})
	}
	return locations, nil
}

// ReverseGeocode resolves coordinates to the nearest named place.
// Returns ErrNoResults when the API has no place for the coordinates.
func (g *OpenMeteoGeocoder) ReverseGeocode(ctx context.Context, coords models.Coordinates) (*models.Location, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	var resp geocodingResponse
	if err := g.get(ctx, "/v1/reverse", params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("reverse geocoding %s: %w", coords, ErrNoResults)
	}

	r := resp.Results[0]
	return &models.Location{
		Coordinates: models.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude},
		Name:        r.Name,
		Admin1:      r.Admin1,
		Country:     r.Country,
	}, nil
}

// get performs a rate-limited GET against the geocoding API and decodes
// the JSON body into target.
func (g *OpenMeteoGeocoder) get(ctx context.Context, path string, params url.Values, target any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	reqURL := fmt.Sprintf("%s%s?%s", g.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	g.logger.Debug("geocoding request completed", zap.String("path", path))
	return nil
}
