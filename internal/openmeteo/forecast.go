package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/suvwetoba/weather-app/internal/models"
)

const defaultForecastURL = "https://api.open-meteo.com"

// Field lists requested from the forecast endpoint. The hourly and daily
// groups come back as parallel arrays aligned by index.
const (
	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m"
	hourlyFields  = "temperature_2m,weather_code,visibility"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min,apparent_temperature_max,wind_speed_10m_max,precipitation_sum"
)

// OpenMeteoForecast implements ForecastClient using the Open-Meteo
// forecast API.
type OpenMeteoForecast struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewForecastClient creates a new Open-Meteo forecast client. An empty
// baseURL selects the public API.
func NewForecastClient(baseURL string, logger *zap.Logger) *OpenMeteoForecast {
	if baseURL == "" {
		baseURL = defaultForecastURL
	}
	return &OpenMeteoForecast{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// forecastResponse is the wire shape of the forecast endpoint.
type forecastResponse struct {
	Current struct {
		Time                string  `json:"time"`
		Temperature         float64 `json:"temperature_2m"`
		RelativeHumidity    float64 `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		Precipitation       float64 `json:"precipitation"`
		WeatherCode         int     `json:"weather_code"`
		WindSpeed           float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		WeatherCode []int     `json:"weather_code"`
		Visibility  []float64 `json:"visibility"`
	} `json:"hourly"`
	Daily struct {
		Time                   []string  `json:"time"`
		WeatherCode            []int     `json:"weather_code"`
		TemperatureMax         []float64 `json:"temperature_2m_max"`
		TemperatureMin         []float64 `json:"temperature_2m_min"`
		ApparentTemperatureMax []float64 `json:"apparent_temperature_max"`
		WindSpeedMax           []float64 `json:"wind_speed_10m_max"`
		PrecipitationSum       []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

// GetForecast retrieves the current/hourly/daily forecast for a location.
// Unit override parameters are sent only when a setting differs from the
// upstream default; timezone resolution is delegated to the API.
func (c *OpenMeteoForecast) GetForecast(ctx context.Context, coords models.Coordinates, units models.UnitSettings) (*models.Forecast, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	params.Set("current", currentFields)
	params.Set("hourly", hourlyFields)
	params.Set("daily", dailyFields)
	params.Set("timezone", "auto")

	if units.Temperature == models.TempFahrenheit {
		params.Set("temperature_unit", models.TempFahrenheit)
	}
	if units.Wind == models.WindMph {
		params.Set("wind_speed_unit", models.WindMph)
	}
	if units.Precipitation == models.PrecipInch {
		params.Set("precipitation_unit", models.PrecipInch)
	}

	reqURL := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("forecast API returned status %d: %s", resp.StatusCode, string(body))
	}

	var wire forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding forecast response: %w", err)
	}

	forecast := &models.Forecast{
		Current: models.CurrentConditions{
			Time:                wire.Current.Time,
			Temperature:         wire.Current.Temperature,
			RelativeHumidity:    wire.Current.RelativeHumidity,
			ApparentTemperature: wire.Current.ApparentTemperature,
			Precipitation:       wire.Current.Precipitation,
			WeatherCode:         wire.Current.WeatherCode,
			WindSpeed:           wire.Current.WindSpeed,
		},
		Hourly: models.HourlySeries{
			Time:        wire.Hourly.Time,
			Temperature: wire.Hourly.Temperature,
			WeatherCode: wire.Hourly.WeatherCode,
			Visibility:  wire.Hourly.Visibility,
		},
		Daily: models.DailySeries{
			Time:                   wire.Daily.Time,
			WeatherCode:            wire.Daily.WeatherCode,
			TemperatureMax:         wire.Daily.TemperatureMax,
			TemperatureMin:         wire.Daily.TemperatureMin,
			ApparentTemperatureMax: wire.Daily.ApparentTemperatureMax,
			WindSpeedMax:           wire.Daily.WindSpeedMax,
			PrecipitationSum:       wire.Daily.PrecipitationSum,
		},
		Units:     units,
		FetchedAt: time.Now(),
	}

	c.logger.Debug("forecast fetched",
		zap.Float64("lat", coords.Latitude),
		zap.Float64("lon", coords.Longitude),
		zap.Int("hourly_entries", forecast.Hourly.Len()),
		zap.Int("daily_entries", forecast.Daily.Len()),
	)

	return forecast, nil
}
