package trip

import (
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/models"
	"github.com/tripcast/tripcast-backend-go/internal/spatial"
)

// endMergeKm is the distance within which the final interval sample is merged
// into the route end point instead of appending a near-duplicate.
const endMergeKm = 2.0

// SampleRoutePoints walks the route polyline at fixed wall-clock intervals
// from startTime, producing one sample per interval positioned proportionally
// to distance travelled. The first sample is always the route start (IsStart),
// the last is always the exact route end (IsEnd), and interior samples are
// spaced exactly intervalMinutes apart; only the final gap may be shorter.
//
// Returns nil when the polyline has fewer than 2 points or the duration or
// interval is not positive.
func SampleRoutePoints(polyline []models.GeoPoint, totalDurationSec float64, startTime time.Time, intervalMinutes int) []models.SamplePoint {
	if len(polyline) < 2 || totalDurationSec <= 0 || intervalMinutes <= 0 {
		return nil
	}

	table := CumulativeDistances(polyline)
	totalDistance := table[len(table)-1]
	intervalSec := intervalMinutes * 60

	samples := []models.SamplePoint{{
		Position:      polyline[0],
		Time:          startTime,
		GeometryIndex: 0,
		IsStart:       true,
	}}

	steps := int(totalDurationSec / float64(intervalSec))
	for i := 1; i <= steps; i++ {
		elapsedSec := i * intervalSec
		progress := float64(elapsedSec) / totalDurationSec
		target := progress * totalDistance

		j := distanceIndex(table, target)
		if j == 0 {
			// Guarantee a valid bracketing pair [j-1, j].
			j = 1
		}

		frac := 0.0
		if span := table[j] - table[j-1]; span > 0 {
			frac = (target - table[j-1]) / span
		}
		lat, lon := spatial.Interpolate(
			polyline[j-1].Lat, polyline[j-1].Lon,
			polyline[j].Lat, polyline[j].Lon,
			frac,
		)

		samples = append(samples, models.SamplePoint{
			Position:      models.GeoPoint{Lat: lat, Lon: lon},
			Time:          startTime.Add(time.Duration(elapsedSec) * time.Second),
			GeometryIndex: j,
		})
	}

	end := models.SamplePoint{
		Position:      polyline[len(polyline)-1],
		Time:          startTime.Add(time.Duration(totalDurationSec * float64(time.Second))),
		GeometryIndex: len(polyline) - 1,
		IsEnd:         true,
	}

	last := &samples[len(samples)-1]
	if !last.IsStart && spatial.HaversineKm(last.Position.Lat, last.Position.Lon, end.Position.Lat, end.Position.Lon) < endMergeKm {
		*last = end
	} else {
		samples = append(samples, end)
	}

	return samples
}
