// Package favorites persists the user's saved locations.
package favorites

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/suvwetoba/weather-app/internal/database"
	"github.com/suvwetoba/weather-app/internal/models"
)

// SavedLocation is a location the user chose to keep.
type SavedLocation struct {
	ID        int64
	Location  models.Location
	CreatedAt time.Time
}

// Repository handles persistence for saved locations.
type Repository struct {
	dbPath string
}

// NewRepository creates a repository backed by the SQLite file at dbPath.
// An empty path selects the default location.
func NewRepository(dbPath string) *Repository {
	if dbPath == "" {
		dbPath = database.DefaultPath()
	}
	return &Repository{dbPath: dbPath}
}

// Save stores a location, replacing any existing entry with the same
// name parts.
func (r *Repository) Save(loc models.Location) (*SavedLocation, error) {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	saved := &SavedLocation{Location: loc, CreatedAt: time.Now()}

	res, err := db.Exec(`
		INSERT INTO saved_locations (name, admin1, country, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name, admin1, country) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			created_at = excluded.created_at
	`,
		loc.Name,
		loc.Admin1,
		loc.Country,
		loc.Coordinates.Latitude,
		loc.Coordinates.Longitude,
		saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving location: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}
	saved.ID = id

	return saved, nil
}

// List retrieves all saved locations, most recent first.
func (r *Repository) List() ([]SavedLocation, error) {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, name, admin1, country, latitude, longitude, created_at
		FROM saved_locations ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying saved locations: %w", err)
	}
	defer rows.Close()

	var locations []SavedLocation
	for rows.Next() {
		var s SavedLocation
		var admin1, country sql.NullString

		if err := rows.Scan(&s.ID, &s.Location.Name, &admin1, &country,
			&s.Location.Coordinates.Latitude, &s.Location.Coordinates.Longitude, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning saved location: %w", err)
		}
		s.Location.Admin1 = admin1.String
		s.Location.Country = country.String
		locations = append(locations, s)
	}

	return locations, rows.Err()
}

// Delete removes a saved location by id.
func (r *Repository) Delete(id int64) error {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM saved_locations WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting saved location: %w", err)
	}
	return nil
}
