// Package geolocate estimates the device position. A browser would ask
// the geolocation API; a terminal has no such capability, so the default
// implementation derives an approximate position from the machine's
// public IP address.
package geolocate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/suvwetoba/weather-app/internal/models"
)

// ErrUnavailable is returned when the device position cannot be
// determined (offline, lookup service down, or position denied).
var ErrUnavailable = errors.New("device location unavailable")

const defaultLookupURL = "http://ip-api.com/json"

// Locator estimates the device's coordinates.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinates, error)
}

// IPLocator implements Locator using an IP geolocation service.
type IPLocator struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewIPLocator creates a new IP-based locator. An empty baseURL selects
// the default lookup service.
func NewIPLocator(baseURL string, logger *zap.Logger) *IPLocator {
	if baseURL == "" {
		baseURL = defaultLookupURL
	}
	return &IPLocator{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// lookupResponse is the ip-api.com wire shape.
type lookupResponse struct {
	Status    string  `json:"status"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Locate returns the approximate coordinates of the machine's public IP.
// Any failure maps to ErrUnavailable so callers can treat a denied or
// broken lookup uniformly.
func (l *IPLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL, nil)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		l.logger.Warn("IP geolocation request failed", zap.Error(err))
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, fmt.Errorf("%w: lookup returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if lookup.Status != "success" {
		return models.Coordinates{}, fmt.Errorf("%w: lookup status %q", ErrUnavailable, lookup.Status)
	}

	coords := models.Coordinates{Latitude: lookup.Latitude, Longitude: lookup.Longitude}
	if !coords.Valid() {
		return models.Coordinates{}, fmt.Errorf("%w: lookup returned invalid coordinates", ErrUnavailable)
	}

	return coords, nil
}
