package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/metrics"
	"github.com/tripcast/tripcast-backend-go/internal/models"
	"github.com/tripcast/tripcast-backend-go/internal/trip"
)

// routeAPI is the driving route collaborator
type routeAPI interface {
	Route(ctx context.Context, waypoints []models.GeoPoint) (*models.Route, error)
}

// Sentinel errors the handler maps to HTTP statuses
var (
	ErrNotEnoughStops = errors.New("at least 2 resolvable stops are required")
	ErrNoRoute        = errors.New("no drivable route between the given stops")
)

// TripService runs the full planning pipeline: resolve stops, fetch the
// route, sample it in travel time, annotate samples with forecasts and build
// the colored segment list
type TripService struct {
	geocoder        *GeocodeService
	router          routeAPI
	weather         *WeatherService
	metrics         *metrics.Collector
	intervalMinutes int
}

// NewTripService creates a new trip service
func NewTripService(geocoder *GeocodeService, router routeAPI, weather *WeatherService, m *metrics.Collector, intervalMinutes int) *TripService {
	if intervalMinutes <= 0 {
		intervalMinutes = 30
	}
	return &TripService{
		geocoder:        geocoder,
		router:          router,
		weather:         weather,
		metrics:         m,
		intervalMinutes: intervalMinutes,
	}
}

// PlanTrip plans one trip from the request. A stop that cannot be resolved is
// skipped with a warning; the trip fails only when fewer than 2 stops remain
// or no drivable route connects them.
func (s *TripService) PlanTrip(ctx context.Context, req models.PlanRequest) (*models.PlanResponse, error) {
	if len(req.Stops) < 2 {
		s.metrics.TripsFailed.Inc()
		return nil, ErrNotEnoughStops
	}

	stops, warnings := s.resolveStops(ctx, req.Stops)
	if len(stops) < 2 {
		s.metrics.TripsFailed.Inc()
		return nil, ErrNotEnoughStops
	}

	waypoints := make([]models.GeoPoint, len(stops))
	for i, p := range stops {
		waypoints[i] = models.GeoPoint{Lat: p.Lat, Lon: p.Lon}
	}

	start := time.Now()
	route, err := s.router.Route(ctx, waypoints)
	s.metrics.UpstreamLatency.WithLabelValues("routing").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.RouteRequests.WithLabelValues("error").Inc()
		s.metrics.TripsFailed.Inc()
		return nil, fmt.Errorf("routing failed: %w", err)
	}
	if route == nil || len(route.Geometry) < 2 {
		s.metrics.RouteRequests.WithLabelValues("not_found").Inc()
		s.metrics.TripsFailed.Inc()
		return nil, ErrNoRoute
	}
	s.metrics.RouteRequests.WithLabelValues("ok").Inc()

	departure := req.Departure
	if departure.IsZero() {
		departure = time.Now().UTC()
	}
	multiplier := req.SpeedMultiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	interval := req.IntervalMinutes
	if interval <= 0 {
		interval = s.intervalMinutes
	}
	adjusted := route.DurationSeconds * multiplier

	samples := trip.SampleRoutePoints(route.Geometry, adjusted, departure, interval)
	observations := s.weather.ForecastForSamples(ctx, samples)
	annotated := Annotate(samples, observations)

	segments := trip.CreateRouteSegments(route.Geometry, annotated, adjusted, departure)
	significant := trip.FilterSignificantPoints(annotated, req.MaxMarkers)

	s.metrics.TripsPlanned.Inc()
	s.metrics.SamplesPerTrip.Observe(float64(len(samples)))

	return &models.PlanResponse{
		Summary: models.TripSummary{
			DistanceMeters:          route.DistanceMeters,
			BaseDurationSeconds:     route.DurationSeconds,
			AdjustedDurationSeconds: adjusted,
			Departure:               departure,
			Arrival:                 departure.Add(time.Duration(adjusted * float64(time.Second))),
		},
		Stops:       stops,
		Samples:     annotated,
		Segments:    segments,
		Significant: significant,
		Warnings:    warnings,
	}, nil
}

// resolveStops turns stop inputs into places. Coordinate stops pass through;
// query stops go through the geocoder. Unresolvable stops are dropped with a
// warning rather than failing the trip.
func (s *TripService) resolveStops(ctx context.Context, inputs []models.StopInput) ([]models.Place, []string) {
	stops := make([]models.Place, 0, len(inputs))
	var warnings []string

	for i, in := range inputs {
		switch {
		case in.Lat != nil && in.Lon != nil:
			name := in.Query
			if name == "" {
				name = fmt.Sprintf("%.4f, %.4f", *in.Lat, *in.Lon)
			}
			stops = append(stops, models.Place{Lat: *in.Lat, Lon: *in.Lon, Name: name})
		case in.Query != "":
			place, err := s.geocoder.Resolve(ctx, in.Query)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("stop %d: lookup for %q failed", i+1, in.Query))
				continue
			}
			if place == nil {
				warnings = append(warnings, fmt.Sprintf("stop %d: no match for %q", i+1, in.Query))
				continue
			}
			stops = append(stops, *place)
		default:
			warnings = append(warnings, fmt.Sprintf("stop %d: neither coordinates nor query given", i+1))
		}
	}

	return stops, warnings
}
