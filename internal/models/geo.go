package models

// GeoPoint represents a WGS84 coordinate pair
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place represents a resolved geocoding result
type Place struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Name    string  `json:"name"`
	Country string  `json:"country,omitempty"`
	Admin1  string  `json:"admin1,omitempty"`
}

// Route represents a drivable route returned by the routing collaborator
type Route struct {
	Geometry        []GeoPoint `json:"geometry"`
	DistanceMeters  float64    `json:"distanceMeters"`
	DurationSeconds float64    `json:"durationSeconds"`
}
