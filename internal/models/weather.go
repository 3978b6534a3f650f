package models

import "time"

// WeatherObservation represents forecast conditions at one point in time and space.
// A nil *WeatherObservation means no data was available for that time/place;
// absence is propagated, never treated as an error.
type WeatherObservation struct {
	Temperature   float64 `json:"temperature"`   // °C
	Precipitation float64 `json:"precipitation"` // mm, >= 0
	WeatherCode   int     `json:"weatherCode"`   // WMO present-weather code, 0-99
}

// SamplePoint represents a position along the route at a known elapsed travel time
type SamplePoint struct {
	Position GeoPoint  `json:"position"`
	Time     time.Time `json:"time"`
	// GeometryIndex is the index into the source polyline of the segment this
	// sample falls within (upper bound of the bracketing pair). Approximate
	// re-localization only, not authoritative ordering.
	GeometryIndex int  `json:"geometryIndex"`
	IsStart       bool `json:"isStart,omitempty"`
	IsEnd         bool `json:"isEnd,omitempty"`
}

// Reasons a sample point can be flagged as significant
const (
	ReasonStart         = "start"
	ReasonEnd           = "end"
	ReasonRainStart     = "rain_start"
	ReasonRainEnd       = "rain_end"
	ReasonTempChange    = "temp_change"
	ReasonWeatherChange = "weather_change"
	ReasonInterval      = "interval"
)

// WeatherSamplePoint is a SamplePoint annotated with its weather lookup result
type WeatherSamplePoint struct {
	SamplePoint
	Weather           *WeatherObservation `json:"weather,omitempty"`
	SignificantReason string              `json:"significantReason,omitempty"`
}

// RouteSegment represents a colored sub-path of the route polyline.
// Consecutive segments share their boundary point for visual continuity.
type RouteSegment struct {
	Positions []GeoPoint          `json:"positions"`
	Color     string              `json:"color"`
	Weather   *WeatherObservation `json:"weather,omitempty"`
}
