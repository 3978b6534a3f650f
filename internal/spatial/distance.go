package spatial

import (
	"github.com/golang/geo/s2"
)

// Earth's mean radius
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// HaversineKm calculates the great-circle distance between two points in
// kilometers using the haversine formula
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// HaversineMeters calculates the great-circle distance between two points in meters
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineKm(lat1, lon1, lat2, lon2) * 1000
}

// Interpolate returns the point a fraction t of the way from (lat1, lon1)
// to (lat2, lon2), interpolating linearly in coordinate space. Adequate for
// the short inter-vertex segments of a route polyline.
func Interpolate(lat1, lon1, lat2, lon2, t float64) (float64, float64) {
	return lat1 + (lat2-lat1)*t, lon1 + (lon2-lon1)*t
}
