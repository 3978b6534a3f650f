package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/database"
	"github.com/tripcast/tripcast-backend-go/internal/models"
	"github.com/tripcast/tripcast-backend-go/internal/spatial"
)

// cacheGeohashPrecision keys forecast rows on ~1.2 km cells: close enough
// that neighboring route samples share hourly forecasts, coarse enough that
// the cache actually gets hits.
const cacheGeohashPrecision = 6

// ForecastCacheRepository handles database operations for cached hourly forecasts
type ForecastCacheRepository struct {
	db *sql.DB
}

// NewForecastCacheRepository creates a new forecast cache repository
func NewForecastCacheRepository(db *sql.DB) *ForecastCacheRepository {
	return &ForecastCacheRepository{db: db}
}

// NewForecastCacheRepositoryDefault creates a repository on the shared database
func NewForecastCacheRepositoryDefault() *ForecastCacheRepository {
	return &ForecastCacheRepository{db: database.GetDB()}
}

// Get returns the cached observation for a location and hour, or nil on a
// miss. Rows fetched before the TTL cutoff count as misses.
func (r *ForecastCacheRepository) Get(lat, lon float64, hour time.Time, ttl time.Duration) (*models.WeatherObservation, error) {
	query := `
		SELECT temperature, precipitation, weather_code
		FROM forecast_cache
		WHERE geohash = ? AND hour_unix = ? AND fetched_at >= ?
	`

	cutoff := time.Now().Add(-ttl).Unix()
	obs := &models.WeatherObservation{}
	err := r.db.QueryRow(query, spatial.GeohashEncode(lat, lon, cacheGeohashPrecision), hour.Unix(), cutoff).Scan(
		&obs.Temperature,
		&obs.Precipitation,
		&obs.WeatherCode,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query forecast cache: %w", err)
	}

	return obs, nil
}

// Put stores an observation for a location and hour, replacing any stale row
func (r *ForecastCacheRepository) Put(lat, lon float64, hour time.Time, obs *models.WeatherObservation) error {
	query := `
		INSERT OR REPLACE INTO forecast_cache
			(geohash, hour_unix, temperature, precipitation, weather_code, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		spatial.GeohashEncode(lat, lon, cacheGeohashPrecision),
		hour.Unix(),
		obs.Temperature,
		obs.Precipitation,
		obs.WeatherCode,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store forecast: %w", err)
	}

	return nil
}

// PutBatch stores several observations in one transaction
func (r *ForecastCacheRepository) PutBatch(entries []ForecastEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return database.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT OR REPLACE INTO forecast_cache
				(geohash, hour_unix, temperature, precipitation, weather_code, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare forecast insert: %w", err)
		}
		defer stmt.Close()

		now := time.Now().Unix()
		for _, e := range entries {
			_, err := stmt.Exec(
				spatial.GeohashEncode(e.Lat, e.Lon, cacheGeohashPrecision),
				e.Hour.Unix(),
				e.Observation.Temperature,
				e.Observation.Precipitation,
				e.Observation.WeatherCode,
				now,
			)
			if err != nil {
				return fmt.Errorf("failed to store forecast batch entry: %w", err)
			}
		}
		return nil
	})
}

// ForecastEntry represents one observation to cache
type ForecastEntry struct {
	Lat         float64
	Lon         float64
	Hour        time.Time
	Observation *models.WeatherObservation
}

// Purge deletes all cached forecasts and returns the number of rows removed
func (r *ForecastCacheRepository) Purge() (int64, error) {
	result, err := r.db.Exec("DELETE FROM forecast_cache")
	if err != nil {
		return 0, fmt.Errorf("failed to purge forecast cache: %w", err)
	}
	return result.RowsAffected()
}

// Count returns the number of cached forecast rows
func (r *ForecastCacheRepository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM forecast_cache").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count forecast cache: %w", err)
	}
	return n, nil
}
