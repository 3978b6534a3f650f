package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/metrics"
	"github.com/tripcast/tripcast-backend-go/internal/models"
)

type fakeGeocodeAPI struct {
	places map[string]*models.Place
}

func (f *fakeGeocodeAPI) Search(ctx context.Context, query string) (*models.Place, error) {
	if f.places == nil {
		return nil, errors.New("geocoder down")
	}
	return f.places[query], nil
}

type fakeRouteAPI struct {
	route *models.Route
	err   error
}

func (f *fakeRouteAPI) Route(ctx context.Context, waypoints []models.GeoPoint) (*models.Route, error) {
	return f.route, f.err
}

func coord(lat, lon float64) models.StopInput {
	return models.StopInput{Lat: &lat, Lon: &lon}
}

func testRoute() *models.Route {
	geometry := make([]models.GeoPoint, 0, 21)
	for lon := 0.0; lon <= 2.0; lon += 0.1 {
		geometry = append(geometry, models.GeoPoint{Lat: 0, Lon: lon})
	}
	return &models.Route{Geometry: geometry, DistanceMeters: 222400, DurationSeconds: 7200}
}

func newTestTripService(router routeAPI, geo *fakeGeocodeAPI) *TripService {
	m := metrics.NewCollector()
	geocodeSvc := NewGeocodeService(geo, nil, m, time.Hour)
	weatherSvc := NewWeatherService(&fakeWeatherAPI{}, nil, m, time.Hour, 4)
	return NewTripService(geocodeSvc, router, weatherSvc, m, 30)
}

func TestPlanTrip(t *testing.T) {
	departure := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestTripService(&fakeRouteAPI{route: testRoute()}, &fakeGeocodeAPI{places: map[string]*models.Place{}})

	plan, err := svc.PlanTrip(context.Background(), models.PlanRequest{
		Stops:     []models.StopInput{coord(0, 0), coord(0, 2)},
		Departure: departure,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Summary.BaseDurationSeconds != 7200 || plan.Summary.AdjustedDurationSeconds != 7200 {
		t.Errorf("bad summary durations: %+v", plan.Summary)
	}
	if !plan.Summary.Arrival.Equal(departure.Add(2 * time.Hour)) {
		t.Errorf("arrival = %v, want %v", plan.Summary.Arrival, departure.Add(2*time.Hour))
	}

	if len(plan.Samples) == 0 || !plan.Samples[0].IsStart || !plan.Samples[len(plan.Samples)-1].IsEnd {
		t.Errorf("samples missing trip boundaries: %d samples", len(plan.Samples))
	}
	for i, s := range plan.Samples {
		if s.Weather == nil {
			t.Errorf("sample %d missing weather annotation", i)
		}
	}
	if len(plan.Segments) == 0 {
		t.Error("no segments produced")
	}
	if len(plan.Significant) == 0 {
		t.Error("no significant markers produced")
	}
	if len(plan.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", plan.Warnings)
	}
}

func TestPlanTripSpeedMultiplier(t *testing.T) {
	svc := newTestTripService(&fakeRouteAPI{route: testRoute()}, &fakeGeocodeAPI{places: map[string]*models.Place{}})

	plan, err := svc.PlanTrip(context.Background(), models.PlanRequest{
		Stops:           []models.StopInput{coord(0, 0), coord(0, 2)},
		Departure:       time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
		SpeedMultiplier: 1.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Summary.BaseDurationSeconds != 7200 {
		t.Errorf("base duration = %v, want 7200", plan.Summary.BaseDurationSeconds)
	}
	if plan.Summary.AdjustedDurationSeconds != 10800 {
		t.Errorf("adjusted duration = %v, want 10800", plan.Summary.AdjustedDurationSeconds)
	}
}

func TestPlanTripGeocodedStops(t *testing.T) {
	geo := &fakeGeocodeAPI{places: map[string]*models.Place{
		"lyon":  {Lat: 0, Lon: 0, Name: "Lyon"},
		"paris": {Lat: 0, Lon: 2, Name: "Paris"},
	}}
	svc := newTestTripService(&fakeRouteAPI{route: testRoute()}, geo)

	plan, err := svc.PlanTrip(context.Background(), models.PlanRequest{
		Stops: []models.StopInput{
			{Query: "lyon"},
			{Query: "atlantis"}, // unresolvable, must degrade to a warning
			{Query: "paris"},
		},
		Departure: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Stops) != 2 {
		t.Errorf("got %d resolved stops, want 2", len(plan.Stops))
	}
	if len(plan.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1: %v", len(plan.Warnings), plan.Warnings)
	}
}

func TestPlanTripErrors(t *testing.T) {
	tests := []struct {
		name    string
		router  *fakeRouteAPI
		stops   []models.StopInput
		wantErr error
	}{
		{
			name:    "single stop",
			router:  &fakeRouteAPI{route: testRoute()},
			stops:   []models.StopInput{coord(0, 0)},
			wantErr: ErrNotEnoughStops,
		},
		{
			name:    "all stops unresolvable",
			router:  &fakeRouteAPI{route: testRoute()},
			stops:   []models.StopInput{{Query: "nowhere"}, {Query: "atlantis"}},
			wantErr: ErrNotEnoughStops,
		},
		{
			name:    "no drivable route",
			router:  &fakeRouteAPI{route: nil},
			stops:   []models.StopInput{coord(0, 0), coord(0, 2)},
			wantErr: ErrNoRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestTripService(tt.router, &fakeGeocodeAPI{places: map[string]*models.Place{}})
			_, err := svc.PlanTrip(context.Background(), models.PlanRequest{
				Stops:     tt.stops,
				Departure: time.Now(),
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlanTripRoutingFailure(t *testing.T) {
	svc := newTestTripService(&fakeRouteAPI{err: errors.New("osrm timeout")}, &fakeGeocodeAPI{places: map[string]*models.Place{}})

	_, err := svc.PlanTrip(context.Background(), models.PlanRequest{
		Stops:     []models.StopInput{coord(0, 0), coord(0, 2)},
		Departure: time.Now(),
	})
	if err == nil || errors.Is(err, ErrNoRoute) || errors.Is(err, ErrNotEnoughStops) {
		t.Errorf("transport failure should surface as a distinct error, got %v", err)
	}
}
