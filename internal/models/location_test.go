package models

import "testing"

func TestCoordinates_Valid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coordinates
		want   bool
	}{
		{"berlin", Coordinates{52.52, 13.41}, true},
		{"poles", Coordinates{90, -180}, true},
		{"lat too high", Coordinates{90.1, 0}, false},
		{"lon too low", Coordinates{0, -180.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinates_String(t *testing.T) {
	c := Coordinates{Latitude: 52.5244, Longitude: 13.4105}
	if got := c.String(); got != "52.52, 13.41" {
		t.Errorf("String() = %q, want '52.52, 13.41'", got)
	}
}

func TestLocation_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{
			"full name",
			Location{Name: "Warri", Admin1: "Delta", Country: "Nigeria"},
			"Warri, Delta, Nigeria",
		},
		{
			"region omitted when empty",
			Location{Name: "Berlin", Country: "Germany"},
			"Berlin, Germany",
		},
		{
			"region omitted when duplicate of city",
			Location{Name: "Berlin", Admin1: "Berlin", Country: "Germany"},
			"Berlin, Germany",
		},
		{
			"raw coordinates when unnamed",
			Location{Coordinates: Coordinates{6.34, 5.62}},
			"6.34, 5.62",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
