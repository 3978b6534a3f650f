package service

import "fmt"

// cacheStore is the maintenance surface of a lookup cache
type cacheStore interface {
	Purge() (int64, error)
	Count() (int64, error)
}

// CacheStats reports the current size of both lookup caches
type CacheStats struct {
	ForecastRows int64 `json:"forecastRows"`
	GeocodeRows  int64 `json:"geocodeRows"`
}

// CacheService exposes maintenance operations over the lookup caches
type CacheService struct {
	forecasts cacheStore
	geocodes  cacheStore
}

// NewCacheService creates a new cache service
func NewCacheService(forecasts, geocodes cacheStore) *CacheService {
	return &CacheService{forecasts: forecasts, geocodes: geocodes}
}

// PurgeForecasts clears the forecast cache and returns the removed row count
func (s *CacheService) PurgeForecasts() (int64, error) {
	n, err := s.forecasts.Purge()
	if err != nil {
		return 0, fmt.Errorf("failed to purge forecast cache: %w", err)
	}
	return n, nil
}

// PurgeGeocodes clears the geocode cache and returns the removed row count
func (s *CacheService) PurgeGeocodes() (int64, error) {
	n, err := s.geocodes.Purge()
	if err != nil {
		return 0, fmt.Errorf("failed to purge geocode cache: %w", err)
	}
	return n, nil
}

// Stats returns the row counts of both caches
func (s *CacheService) Stats() (*CacheStats, error) {
	forecastRows, err := s.forecasts.Count()
	if err != nil {
		return nil, err
	}
	geocodeRows, err := s.geocodes.Count()
	if err != nil {
		return nil, err
	}
	return &CacheStats{ForecastRows: forecastRows, GeocodeRows: geocodeRows}, nil
}
