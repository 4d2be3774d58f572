package models

import "fmt"

// Unit option values as sent to the forecast API.
const (
	TempCelsius    = "celsius"
	TempFahrenheit = "fahrenheit"

	WindKmh = "kmh"
	WindMph = "mph"

	PrecipMm   = "mm"
	PrecipInch = "inch"
)

// UnitSettings holds the three measurement unit choices. The upstream API
// bakes units into the response, so changing any field requires a full
// forecast refetch; no client-side unit conversion is ever performed.
type UnitSettings struct {
	Temperature   string
	Wind          string
	Precipitation string
}

// DefaultUnits returns the upstream defaults (metric).
func DefaultUnits() UnitSettings {
	return UnitSettings{
		Temperature:   TempCelsius,
		Wind:          WindKmh,
		Precipitation: PrecipMm,
	}
}

// Validate checks that every field holds a known option value.
func (u UnitSettings) Validate() error {
	if u.Temperature != TempCelsius && u.Temperature != TempFahrenheit {
		return fmt.Errorf("invalid temperature unit %q", u.Temperature)
	}
	if u.Wind != WindKmh && u.Wind != WindMph {
		return fmt.Errorf("invalid wind unit %q", u.Wind)
	}
	if u.Precipitation != PrecipMm && u.Precipitation != PrecipInch {
		return fmt.Errorf("invalid precipitation unit %q", u.Precipitation)
	}
	return nil
}

// WindLabel returns the display label for the wind unit.
func (u UnitSettings) WindLabel() string {
	if u.Wind == WindMph {
		return "mph"
	}
	return "km/h"
}

// PrecipLabel returns the display label for the precipitation unit.
func (u UnitSettings) PrecipLabel() string {
	if u.Precipitation == PrecipInch {
		return "in"
	}
	return "mm"
}

// TempLabel returns the display label for the temperature unit.
func (u UnitSettings) TempLabel() string {
	if u.Temperature == TempFahrenheit {
		return "°F"
	}
	return "°C"
}
