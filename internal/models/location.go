package models

import (
	"fmt"
	"strings"
)

// Coordinates is a latitude/longitude pair.
// Latitude is in [-90, 90], longitude in [-180, 180].
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the coordinates are within range.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// String formats coordinates to two decimal places, e.g. "52.52, 13.41".
func (c Coordinates) String() string {
	return fmt.Sprintf("%.2f, %.2f", c.Latitude, c.Longitude)
}

// Location represents a resolved place: coordinates plus the name parts
// returned by the geocoding API.
type Location struct {
	Coordinates Coordinates
	Name        string // City name, e.g. "Berlin"
	Admin1      string // Region/state, e.g. "Land Berlin" (may be empty)
	Country     string // e.g. "Germany"
}

// DisplayName joins the name parts for display. The region is omitted
// when absent or when it duplicates the city name.
func (l Location) DisplayName() string {
	if l.Name == "" {
		return l.Coordinates.String()
	}

	parts := []string{l.Name}
	if l.Admin1 != "" && !strings.EqualFold(l.Admin1, l.Name) {
		parts = append(parts, l.Admin1)
	}
	if l.Country != "" {
		parts = append(parts, l.Country)
	}
	return strings.Join(parts, ", ")
}
