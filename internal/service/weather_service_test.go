package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/metrics"
	"github.com/tripcast/tripcast-backend-go/internal/models"
	"github.com/tripcast/tripcast-backend-go/internal/repository"
)

// fakeWeatherAPI derives an observation from the request so tests can check
// that results stay aligned with their samples.
type fakeWeatherAPI struct {
	mu      sync.Mutex
	calls   int
	failLat float64
}

func (f *fakeWeatherAPI) ForecastAt(ctx context.Context, lat, lon float64, t time.Time) (*models.WeatherObservation, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.failLat != 0 && lat == f.failLat {
		return nil, errors.New("upstream unavailable")
	}
	return &models.WeatherObservation{Temperature: lat, Precipitation: 0, WeatherCode: 1}, nil
}

type fakeForecastCache struct {
	mu     sync.Mutex
	rows   map[string]*models.WeatherObservation
	stored int
}

func cacheKey(lat, lon float64, hour time.Time) string {
	return fmt.Sprintf("%.3f/%.3f/%d", lat, lon, hour.Unix())
}

func (f *fakeForecastCache) Get(lat, lon float64, hour time.Time, ttl time.Duration) (*models.WeatherObservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[cacheKey(lat, lon, hour)], nil
}

func (f *fakeForecastCache) PutBatch(entries []repository.ForecastEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored += len(entries)
	return nil
}

func samplesOnLats(lats ...float64) []models.SamplePoint {
	samples := make([]models.SamplePoint, len(lats))
	for i, lat := range lats {
		samples[i] = models.SamplePoint{
			Position: models.GeoPoint{Lat: lat, Lon: 0},
			Time:     time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		}
	}
	return samples
}

func TestForecastForSamplesPreservesOrder(t *testing.T) {
	api := &fakeWeatherAPI{}
	svc := NewWeatherService(api, nil, metrics.NewCollector(), time.Hour, 4)

	lats := []float64{10, 20, 30, 40, 50, 60, 70}
	results := svc.ForecastForSamples(context.Background(), samplesOnLats(lats...))

	if len(results) != len(lats) {
		t.Fatalf("got %d results, want %d", len(results), len(lats))
	}
	for i, obs := range results {
		if obs == nil {
			t.Fatalf("result %d absent", i)
		}
		if obs.Temperature != lats[i] {
			t.Errorf("result %d = %v, want %v: join does not preserve sample order", i, obs.Temperature, lats[i])
		}
	}
}

func TestForecastForSamplesPartialFailure(t *testing.T) {
	api := &fakeWeatherAPI{failLat: 30}
	svc := NewWeatherService(api, nil, metrics.NewCollector(), time.Hour, 4)

	results := svc.ForecastForSamples(context.Background(), samplesOnLats(10, 20, 30, 40))

	if results[2] != nil {
		t.Errorf("failed lookup should yield absent weather, got %+v", results[2])
	}
	for _, i := range []int{0, 1, 3} {
		if results[i] == nil {
			t.Errorf("result %d lost to an unrelated failure", i)
		}
	}
}

func TestForecastForSamplesUsesCache(t *testing.T) {
	hour := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	cached := &models.WeatherObservation{Temperature: 99, Precipitation: 0, WeatherCode: 0}
	cache := &fakeForecastCache{rows: map[string]*models.WeatherObservation{
		cacheKey(10, 0, hour): cached,
	}}
	api := &fakeWeatherAPI{}
	svc := NewWeatherService(api, cache, metrics.NewCollector(), time.Hour, 4)

	results := svc.ForecastForSamples(context.Background(), samplesOnLats(10, 20))

	if results[0] == nil || results[0].Temperature != 99 {
		t.Errorf("cache hit not used: %+v", results[0])
	}
	if api.calls != 1 {
		t.Errorf("api called %d times, want 1 (one hit, one miss)", api.calls)
	}
	if cache.stored != 1 {
		t.Errorf("stored %d entries, want the single miss", cache.stored)
	}
}

func TestAnnotate(t *testing.T) {
	samples := samplesOnLats(10, 20, 30)
	obs := []*models.WeatherObservation{
		{Temperature: 1},
		nil,
		{Temperature: 3},
	}

	annotated := Annotate(samples, obs)
	if len(annotated) != 3 {
		t.Fatalf("got %d annotated points", len(annotated))
	}
	if annotated[0].Weather == nil || annotated[0].Weather.Temperature != 1 {
		t.Errorf("first observation lost")
	}
	if annotated[1].Weather != nil {
		t.Errorf("absent observation should stay absent")
	}
	if !annotated[2].Time.Equal(samples[2].Time) {
		t.Errorf("sample fields not carried over")
	}
}
