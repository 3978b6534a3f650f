package service

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tripcast/tripcast-backend-go/internal/metrics"
	"github.com/tripcast/tripcast-backend-go/internal/models"
	"github.com/tripcast/tripcast-backend-go/internal/repository"
)

// weatherAPI is the forecast lookup collaborator
type weatherAPI interface {
	ForecastAt(ctx context.Context, lat, lon float64, t time.Time) (*models.WeatherObservation, error)
}

// forecastCache is the hourly forecast cache
type forecastCache interface {
	Get(lat, lon float64, hour time.Time, ttl time.Duration) (*models.WeatherObservation, error)
	PutBatch(entries []repository.ForecastEntry) error
}

// WeatherService annotates route sample points with forecasts, consulting the
// cache before the upstream API
type WeatherService struct {
	api     weatherAPI
	cache   forecastCache
	metrics *metrics.Collector
	ttl     time.Duration
	workers int
}

// NewWeatherService creates a new weather service
func NewWeatherService(api weatherAPI, cache forecastCache, m *metrics.Collector, ttl time.Duration, workers int) *WeatherService {
	if workers <= 0 {
		workers = 8
	}
	return &WeatherService{api: api, cache: cache, metrics: m, ttl: ttl, workers: workers}
}

// ForecastForSamples looks up the forecast for every sample point. Lookups
// run concurrently but results are written into an index-addressed slice, so
// the returned observations line up with the input samples regardless of
// completion order. A failed lookup leaves a nil entry for that sample alone;
// it never fails the batch.
func (s *WeatherService) ForecastForSamples(ctx context.Context, samples []models.SamplePoint) []*models.WeatherObservation {
	results := make([]*models.WeatherObservation, len(samples))
	fetched := make([]repository.ForecastEntry, len(samples))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, sample := range samples {
		g.Go(func() error {
			hour := sample.Time.UTC().Truncate(time.Hour)

			if s.cache != nil {
				cached, err := s.cache.Get(sample.Position.Lat, sample.Position.Lon, hour, s.ttl)
				if err != nil {
					log.Printf("Forecast cache read failed: %v", err)
				} else if cached != nil {
					s.metrics.WeatherLookups.WithLabelValues("hit").Inc()
					results[i] = cached
					return nil
				}
			}

			start := time.Now()
			obs, err := s.api.ForecastAt(ctx, sample.Position.Lat, sample.Position.Lon, sample.Time)
			s.metrics.UpstreamLatency.WithLabelValues("weather").Observe(time.Since(start).Seconds())
			if err != nil {
				// Absent weather for this point only; the trip still renders.
				log.Printf("Weather lookup failed for sample %d: %v", i, err)
				s.metrics.WeatherLookups.WithLabelValues("error").Inc()
				return nil
			}

			s.metrics.WeatherLookups.WithLabelValues("miss").Inc()
			results[i] = obs
			if obs != nil {
				fetched[i] = repository.ForecastEntry{
					Lat:         sample.Position.Lat,
					Lon:         sample.Position.Lon,
					Hour:        hour,
					Observation: obs,
				}
			}
			return nil
		})
	}
	g.Wait()

	if s.cache != nil {
		entries := make([]repository.ForecastEntry, 0, len(fetched))
		for _, e := range fetched {
			if e.Observation != nil {
				entries = append(entries, e)
			}
		}
		if err := s.cache.PutBatch(entries); err != nil {
			log.Printf("Forecast cache write failed: %v", err)
		}
	}

	return results
}

// Annotate merges sample points with their looked-up observations
func Annotate(samples []models.SamplePoint, observations []*models.WeatherObservation) []models.WeatherSamplePoint {
	annotated := make([]models.WeatherSamplePoint, len(samples))
	for i, sample := range samples {
		annotated[i] = models.WeatherSamplePoint{SamplePoint: sample}
		if i < len(observations) {
			annotated[i].Weather = observations[i]
		}
	}
	return annotated
}
