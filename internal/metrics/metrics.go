package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's Prometheus instruments behind one registry
type Collector struct {
	reg *prometheus.Registry

	TripsPlanned   prometheus.Counter
	TripsFailed    prometheus.Counter
	SamplesPerTrip prometheus.Histogram

	WeatherLookups  *prometheus.CounterVec   // outcome label: hit|miss|error
	GeocodeLookups  *prometheus.CounterVec   // outcome label: hit|miss|error
	RouteRequests   *prometheus.CounterVec   // outcome label: ok|not_found|error
	UpstreamLatency *prometheus.HistogramVec // upstream label: weather|geocode|routing
}

// NewCollector creates and registers the service metrics
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		TripsPlanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripcast_trips_planned_total",
			Help: "Total trips planned successfully.",
		}),
		TripsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripcast_trips_failed_total",
			Help: "Total trip plan requests that could not be fulfilled.",
		}),
		SamplesPerTrip: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripcast_samples_per_trip",
			Help:    "Number of weather sample points per planned trip.",
			Buckets: prometheus.LinearBuckets(2, 4, 12),
		}),
		WeatherLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripcast_weather_lookups_total",
			Help: "Weather lookups by outcome.",
		}, []string{"outcome"}),
		GeocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripcast_geocode_lookups_total",
			Help: "Geocode lookups by outcome.",
		}, []string{"outcome"}),
		RouteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripcast_route_requests_total",
			Help: "Routing requests by outcome.",
		}, []string{"outcome"}),
		UpstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tripcast_upstream_latency_seconds",
			Help:    "Latency of upstream API calls.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"upstream"}),
	}

	reg.MustRegister(
		c.TripsPlanned, c.TripsFailed, c.SamplesPerTrip,
		c.WeatherLookups, c.GeocodeLookups, c.RouteRequests,
		c.UpstreamLatency,
	)

	return c
}

// Handler returns the /metrics HTTP handler for this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
