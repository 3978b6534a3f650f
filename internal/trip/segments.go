package trip

import (
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/models"
)

// Segment colors, ordered from harmless to hazardous.
const (
	ColorClear    = "#22c55e"
	ColorLight    = "#fbbf24"
	ColorModerate = "#f97316"
	ColorHeavy    = "#ef4444"
	ColorNoData   = "#94a3b8"
)

// dangerousCodes are WMO codes rendered red regardless of measured
// precipitation: freezing drizzle/rain, snowfall, snow grains, snow showers
// and thunderstorms.
var dangerousCodes = map[int]bool{
	56: true, 57: true, 66: true, 67: true,
	71: true, 73: true, 75: true, 77: true,
	85: true, 86: true,
	95: true, 96: true, 99: true,
}

// WeatherToColor maps an observation to its segment color. Dangerous WMO
// codes win over the precipitation amount; an absent observation is grey.
func WeatherToColor(obs *models.WeatherObservation) string {
	if obs == nil {
		return ColorNoData
	}
	if dangerousCodes[obs.WeatherCode] {
		return ColorHeavy
	}
	switch {
	case obs.Precipitation <= 0:
		return ColorClear
	case obs.Precipitation < 0.5:
		return ColorLight
	case obs.Precipitation < 2.0:
		return ColorModerate
	default:
		return ColorHeavy
	}
}

// CreateRouteSegments splits the route polyline into colored sub-paths, one
// pair of half-segments per consecutive pair of weather samples: the half
// nearer sample A takes A's color, the half nearer sample B takes B's, and
// the two halves share their midpoint vertex so the rendered line stays
// contiguous. Pairs that resolve to a degenerate slice are skipped. With
// fewer than 2 samples, or when every pair degenerates, the whole polyline
// is returned as a single neutral segment.
func CreateRouteSegments(polyline []models.GeoPoint, samples []models.WeatherSamplePoint, totalDurationSec float64, startTime time.Time) []models.RouteSegment {
	if len(polyline) < 2 {
		return nil
	}
	if len(samples) < 2 || totalDurationSec <= 0 {
		return []models.RouteSegment{fullRouteSegment(polyline)}
	}

	table := CumulativeDistances(polyline)
	totalDistance := table[len(table)-1]

	indexAt := func(t time.Time) int {
		progress := t.Sub(startTime).Seconds() / totalDurationSec
		if progress < 0 {
			progress = 0
		} else if progress > 1 {
			progress = 1
		}
		return distanceIndex(table, progress*totalDistance)
	}

	var segments []models.RouteSegment
	for i := 0; i < len(samples)-1; i++ {
		a, b := samples[i], samples[i+1]

		startIdx := indexAt(a.Time)
		endIdx := indexAt(b.Time)
		if startIdx > endIdx {
			startIdx = endIdx
		}

		slice := polyline[startIdx : endIdx+1]
		if len(slice) < 2 {
			continue
		}

		mid := len(slice) / 2
		if first := slice[:mid+1]; len(first) >= 2 {
			segments = append(segments, models.RouteSegment{
				Positions: append([]models.GeoPoint(nil), first...),
				Color:     WeatherToColor(a.Weather),
				Weather:   a.Weather,
			})
		}
		if second := slice[mid:]; len(second) >= 2 {
			segments = append(segments, models.RouteSegment{
				Positions: append([]models.GeoPoint(nil), second...),
				Color:     WeatherToColor(b.Weather),
				Weather:   b.Weather,
			})
		}
	}

	if len(segments) == 0 {
		return []models.RouteSegment{fullRouteSegment(polyline)}
	}
	return segments
}

func fullRouteSegment(polyline []models.GeoPoint) models.RouteSegment {
	return models.RouteSegment{
		Positions: append([]models.GeoPoint(nil), polyline...),
		Color:     ColorNoData,
	}
}
