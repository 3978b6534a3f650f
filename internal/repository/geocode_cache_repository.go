package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/database"
	"github.com/tripcast/tripcast-backend-go/internal/models"
)

// GeocodeCacheRepository handles database operations for cached geocoding results
type GeocodeCacheRepository struct {
	db *sql.DB
}

// NewGeocodeCacheRepository creates a new geocode cache repository
func NewGeocodeCacheRepository(db *sql.DB) *GeocodeCacheRepository {
	return &GeocodeCacheRepository{db: db}
}

// NewGeocodeCacheRepositoryDefault creates a repository on the shared database
func NewGeocodeCacheRepositoryDefault() *GeocodeCacheRepository {
	return &GeocodeCacheRepository{db: database.GetDB()}
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Get returns the cached place for a query, or nil on a miss
func (r *GeocodeCacheRepository) Get(query string, ttl time.Duration) (*models.Place, error) {
	stmt := `
		SELECT lat, lon, name, country, admin1
		FROM geocode_cache
		WHERE query = ? AND fetched_at >= ?
	`

	cutoff := time.Now().Add(-ttl).Unix()
	place := &models.Place{}
	err := r.db.QueryRow(stmt, normalizeQuery(query), cutoff).Scan(
		&place.Lat,
		&place.Lon,
		&place.Name,
		&place.Country,
		&place.Admin1,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query geocode cache: %w", err)
	}

	return place, nil
}

// Put stores a resolved place under its normalized query
func (r *GeocodeCacheRepository) Put(query string, place *models.Place) error {
	stmt := `
		INSERT OR REPLACE INTO geocode_cache
			(query, lat, lon, name, country, admin1, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(stmt,
		normalizeQuery(query),
		place.Lat,
		place.Lon,
		place.Name,
		place.Country,
		place.Admin1,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store geocode result: %w", err)
	}

	return nil
}

// Purge deletes all cached geocode results and returns the number of rows removed
func (r *GeocodeCacheRepository) Purge() (int64, error) {
	result, err := r.db.Exec("DELETE FROM geocode_cache")
	if err != nil {
		return 0, fmt.Errorf("failed to purge geocode cache: %w", err)
	}
	return result.RowsAffected()
}

// Count returns the number of cached geocode rows
func (r *GeocodeCacheRepository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM geocode_cache").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count geocode cache: %w", err)
	}
	return n, nil
}
