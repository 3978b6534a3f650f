package models

import "time"

// StopInput represents one requested trip stop: either explicit coordinates
// or a free-text query to be geocoded
type StopInput struct {
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
	Query string   `json:"query,omitempty"`
}

// PlanRequest represents the trip planning request body
type PlanRequest struct {
	Stops           []StopInput `json:"stops" binding:"required"`
	Departure       time.Time   `json:"departure"`
	SpeedMultiplier float64     `json:"speedMultiplier"`
	IntervalMinutes int         `json:"intervalMinutes"`
	MaxMarkers      int         `json:"maxMarkers"`
}

// TripSummary represents the headline numbers for a planned trip
type TripSummary struct {
	DistanceMeters          float64   `json:"distanceMeters"`
	BaseDurationSeconds     float64   `json:"baseDurationSeconds"`
	AdjustedDurationSeconds float64   `json:"adjustedDurationSeconds"`
	Departure               time.Time `json:"departure"`
	Arrival                 time.Time `json:"arrival"`
}

// PlanResponse represents a fully planned trip: the sampled and annotated
// route plus the colored segments and reduced marker set for rendering
type PlanResponse struct {
	Summary     TripSummary          `json:"summary"`
	Stops       []Place              `json:"stops"`
	Samples     []WeatherSamplePoint `json:"samples"`
	Segments    []RouteSegment       `json:"segments"`
	Significant []WeatherSamplePoint `json:"significant"`
	Warnings    []string             `json:"warnings,omitempty"`
}
