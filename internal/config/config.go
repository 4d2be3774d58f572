// Package config loads the application configuration from a TOML file,
// with sensible defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/suvwetoba/weather-app/internal/models"
)

// Config is the top-level configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Units   UnitsConfig   `toml:"units"`
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
	Storage StorageConfig `toml:"storage"`
}

// GeneralConfig holds startup behavior settings.
type GeneralConfig struct {
	DefaultCity string `toml:"default_city"` // Cold-start fallback when device location is unavailable
}

// UnitsConfig holds the startup measurement units.
type UnitsConfig struct {
	Temperature   string `toml:"temperature"`   // "celsius" or "fahrenheit"
	Wind          string `toml:"wind"`          // "kmh" or "mph"
	Precipitation string `toml:"precipitation"` // "mm" or "inch"
}

// APIConfig holds upstream endpoint settings.
type APIConfig struct {
	GeocodingBaseURL string `toml:"geocoding_base_url"`
	ForecastBaseURL  string `toml:"forecast_base_url"`
	GeolocateURL     string `toml:"geolocate_url"`
}

// LoggingConfig holds log settings. The TUI owns the terminal, so logs
// go to a file.
type LoggingConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
	File  string `toml:"file"`
}

// StorageConfig holds the saved-locations database settings.
type StorageConfig struct {
	Path string `toml:"path"` // SQLite file; empty means the default under the user config dir
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			DefaultCity: "Berlin",
		},
		Units: UnitsConfig{
			Temperature:   models.TempCelsius,
			Wind:          models.WindKmh,
			Precipitation: models.PrecipMm,
		},
		API: APIConfig{
			GeocodingBaseURL: "https://geocoding-api.open-meteo.com",
			ForecastBaseURL:  "https://api.open-meteo.com",
			GeolocateURL:     "http://ip-api.com/json",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "weather-app.log",
		},
	}
}

// LoadWithFallback loads configuration from the given path, falling back
// to ./weather-app.toml and then ~/.config/weather-app/config.toml. When
// no file is found the defaults are returned.
func LoadWithFallback(path string) (*Config, error) {
	candidates := []string{}
	if path != "" {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, "weather-app.toml")
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "weather-app", "config.toml"))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			// An explicitly requested file must exist.
			if candidate == path {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
			continue
		}
		return Load(candidate)
	}

	return Default(), nil
}

// Load reads and decodes a single config file, applying defaults for
// absent fields.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.General.DefaultCity == "" {
		return fmt.Errorf("general.default_city cannot be empty")
	}
	if err := c.UnitSettings().Validate(); err != nil {
		return fmt.Errorf("units: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	return nil
}

// UnitSettings converts the units section to the domain type.
func (c *Config) UnitSettings() models.UnitSettings {
	return models.UnitSettings{
		Temperature:   c.Units.Temperature,
		Wind:          c.Units.Wind,
		Precipitation: c.Units.Precipitation,
	}
}
