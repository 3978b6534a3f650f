package database

import (
	"database/sql"
	"fmt"
)

// applySchema creates the lookup cache tables. Both tables are pure caches of
// external API responses; dropping them is always safe.
func applySchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS forecast_cache (
			geohash TEXT NOT NULL,
			hour_unix INTEGER NOT NULL,
			temperature REAL NOT NULL,
			precipitation REAL NOT NULL,
			weather_code INTEGER NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (geohash, hour_unix)
		)`,
		`CREATE TABLE IF NOT EXISTS geocode_cache (
			query TEXT PRIMARY KEY,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			name TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT '',
			admin1 TEXT NOT NULL DEFAULT '',
			fetched_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_forecast_cache_fetched_at
			ON forecast_cache (fetched_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return nil
}
