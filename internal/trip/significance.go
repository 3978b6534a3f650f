package trip

import (
	"math"
	"sort"

	"github.com/tripcast/tripcast-backend-go/internal/models"
)

// DefaultMaxSignificant bounds the marker set returned by FilterSignificantPoints.
const DefaultMaxSignificant = 8

// tempJumpCelsius is the temperature delta between consecutive samples that
// counts as a significant change.
const tempJumpCelsius = 3.0

// reasonPriority ranks significance reasons for trimming an oversized set.
// Lower is more important.
func reasonPriority(reason string) int {
	switch reason {
	case models.ReasonStart:
		return 0
	case models.ReasonEnd:
		return 1
	case models.ReasonRainStart:
		return 2
	case models.ReasonRainEnd:
		return 3
	case models.ReasonWeatherChange:
		return 4
	case models.ReasonTempChange:
		return 5
	default:
		return 6
	}
}

// hasPrecipitation reports whether an observation indicates active
// precipitation, either by measured amount or by a drizzle-or-worse WMO code.
func hasPrecipitation(obs *models.WeatherObservation) bool {
	return obs != nil && (obs.Precipitation > 0 || obs.WeatherCode >= 51)
}

// weatherCategory buckets a WMO code into a coarse display category.
func weatherCategory(code int) string {
	switch {
	case code <= 3:
		return "clear"
	case code <= 48:
		return "fog"
	case code <= 67:
		return "rain"
	case code <= 77:
		return "snow"
	case code <= 82:
		return "showers"
	default:
		return "storm"
	}
}

// FilterSignificantPoints reduces a dense annotated sample sequence to a
// bounded set of display markers: trip boundaries, precipitation on/off
// transitions, temperature jumps and weather category changes. When too few
// points qualify, evenly spaced fillers are injected; when too many qualify,
// the set is trimmed by reason priority. Weather values are never modified,
// only selected and annotated with SignificantReason.
//
// Inputs of 3 or fewer samples are returned unchanged.
func FilterSignificantPoints(samples []models.WeatherSamplePoint, maxPoints int) []models.WeatherSamplePoint {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxSignificant
	}
	if len(samples) <= 3 {
		return samples
	}

	significant := make([]models.WeatherSamplePoint, 0, len(samples))
	for i, s := range samples {
		reason := ""

		switch {
		case s.IsStart:
			reason = models.ReasonStart
		case s.IsEnd:
			reason = models.ReasonEnd
		case i > 0:
			prev := samples[i-1]

			prevWet := hasPrecipitation(prev.Weather)
			currWet := hasPrecipitation(s.Weather)
			if currWet && !prevWet {
				reason = models.ReasonRainStart
			} else if prevWet && !currWet {
				reason = models.ReasonRainEnd
			}

			if prev.Weather != nil && s.Weather != nil {
				if math.Abs(s.Weather.Temperature-prev.Weather.Temperature) > tempJumpCelsius {
					reason = models.ReasonTempChange
				}
				if weatherCategory(s.Weather.WeatherCode) != weatherCategory(prev.Weather.WeatherCode) {
					reason = models.ReasonWeatherChange
				}
			}
		}

		if reason != "" {
			s.SignificantReason = reason
			significant = append(significant, s)
		}
	}

	// Too sparse: pad with evenly spaced interval markers.
	if len(significant) < 4 && len(samples) > 4 {
		stride := len(samples) / 4
		for i := stride; i < len(samples); i += stride {
			candidate := samples[i]
			present := false
			for _, s := range significant {
				if s.Time.Equal(candidate.Time) {
					present = true
					break
				}
			}
			if !present {
				candidate.SignificantReason = models.ReasonInterval
				significant = append(significant, candidate)
			}
		}
		sort.SliceStable(significant, func(a, b int) bool {
			return significant[a].Time.Before(significant[b].Time)
		})
	}

	// Too dense: keep the highest-priority reasons, then restore time order.
	if len(significant) > maxPoints {
		sort.SliceStable(significant, func(a, b int) bool {
			return reasonPriority(significant[a].SignificantReason) < reasonPriority(significant[b].SignificantReason)
		})
		significant = significant[:maxPoints]
		sort.SliceStable(significant, func(a, b int) bool {
			return significant[a].Time.Before(significant[b].Time)
		})
	}

	return significant
}
