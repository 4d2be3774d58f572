package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath returns the default path of the saved-locations database,
// under the user config directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("data", "weather-app.db")
	}
	return filepath.Join(home, ".config", "weather-app", "weather-app.db")
}

// EnsureSchema creates the saved_locations table if it does not exist.
func EnsureSchema(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS saved_locations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			admin1 TEXT,
			country TEXT,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_saved_locations_identity ON saved_locations(name, admin1, country);
	`)
	if err != nil {
		return fmt.Errorf("creating saved_locations table: %w", err)
	}

	return nil
}
