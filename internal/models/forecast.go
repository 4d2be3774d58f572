package models

import "time"

// Layout of timestamps in the forecast payload, e.g. "2026-08-31T14:00".
const TimeLayout = "2006-01-02T15:04"

// DaysInForecast is the number of daily entries requested from the API.
const DaysInForecast = 7

// CurrentConditions is the live snapshot of the forecast payload.
type CurrentConditions struct {
	Time                string
	Temperature         float64
	RelativeHumidity    float64
	ApparentTemperature float64
	Precipitation       float64
	WeatherCode         int
	WindSpeed           float64
}

// HourlySeries holds the hourly forecast as parallel arrays indexed by
// absolute hour offset from local midnight of day 0. Arrays within the
// group share identical length and index alignment.
type HourlySeries struct {
	Time        []string
	Temperature []float64
	WeatherCode []int
	Visibility  []float64
}

// Len returns the number of hourly entries.
func (h HourlySeries) Len() int { return len(h.Time) }

// DailySeries holds the 7-day forecast as parallel arrays indexed by day
// offset 0..6.
type DailySeries struct {
	Time                   []string
	WeatherCode            []int
	TemperatureMax         []float64
	TemperatureMin         []float64
	ApparentTemperatureMax []float64
	WindSpeedMax           []float64
	PrecipitationSum       []float64
}

// Len returns the number of daily entries.
func (d DailySeries) Len() int { return len(d.Time) }

// Forecast is one fetched payload: a current snapshot plus aligned hourly
// and daily series. Payloads are replaced wholesale on every fetch.
type Forecast struct {
	Current   CurrentConditions
	Hourly    HourlySeries
	Daily     DailySeries
	Units     UnitSettings
	FetchedAt time.Time
}

// DayTime parses the daily timestamp at index i. Returns the zero time
// when the index is out of range or the value is malformed.
func (f *Forecast) DayTime(i int) time.Time {
	if i < 0 || i >= len(f.Daily.Time) {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", f.Daily.Time[i])
	if err != nil {
		return time.Time{}
	}
	return t
}

// HourTime parses the hourly timestamp at index i. Returns the zero time
// when the index is out of range or the value is malformed.
func (f *Forecast) HourTime(i int) time.Time {
	if i < 0 || i >= len(f.Hourly.Time) {
		return time.Time{}
	}
	t, err := time.Parse(TimeLayout, f.Hourly.Time[i])
	if err != nil {
		return time.Time{}
	}
	return t
}
