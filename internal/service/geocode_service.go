package service

import (
	"context"
	"log"
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/metrics"
	"github.com/tripcast/tripcast-backend-go/internal/models"
)

// geocodeAPI is the place name lookup collaborator
type geocodeAPI interface {
	Search(ctx context.Context, query string) (*models.Place, error)
}

// geocodeCache is the resolved place cache
type geocodeCache interface {
	Get(query string, ttl time.Duration) (*models.Place, error)
	Put(query string, place *models.Place) error
}

// GeocodeService resolves free-text place names with a cache in front of the
// upstream geocoding API
type GeocodeService struct {
	api     geocodeAPI
	cache   geocodeCache
	metrics *metrics.Collector
	ttl     time.Duration
}

// NewGeocodeService creates a new geocode service
func NewGeocodeService(api geocodeAPI, cache geocodeCache, m *metrics.Collector, ttl time.Duration) *GeocodeService {
	return &GeocodeService{api: api, cache: cache, metrics: m, ttl: ttl}
}

// Resolve maps a free-text query to a place. An unmatchable query returns
// (nil, nil); only transport-level failures return an error.
func (s *GeocodeService) Resolve(ctx context.Context, query string) (*models.Place, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(query, s.ttl)
		if err != nil {
			log.Printf("Geocode cache read failed: %v", err)
		} else if cached != nil {
			s.metrics.GeocodeLookups.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}

	start := time.Now()
	place, err := s.api.Search(ctx, query)
	s.metrics.UpstreamLatency.WithLabelValues("geocode").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.GeocodeLookups.WithLabelValues("error").Inc()
		return nil, err
	}
	s.metrics.GeocodeLookups.WithLabelValues("miss").Inc()

	if place != nil && s.cache != nil {
		if err := s.cache.Put(query, place); err != nil {
			log.Printf("Geocode cache write failed: %v", err)
		}
	}

	return place, nil
}
