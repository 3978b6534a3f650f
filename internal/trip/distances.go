package trip

import (
	"github.com/tripcast/tripcast-backend-go/internal/models"
	"github.com/tripcast/tripcast-backend-go/internal/spatial"
)

// CumulativeDistances builds the cumulative great-circle distance table for a
// route polyline. table[0] is 0 and table[i] is the distance in kilometers
// from the start of the route to polyline[i], measured along the path.
// The table is monotonically non-decreasing and has the same length as the
// polyline; every distance-to-time mapping in this package derives from it.
func CumulativeDistances(polyline []models.GeoPoint) []float64 {
	if len(polyline) == 0 {
		return nil
	}

	table := make([]float64, len(polyline))
	for i := 1; i < len(polyline); i++ {
		table[i] = table[i-1] + spatial.HaversineKm(
			polyline[i-1].Lat, polyline[i-1].Lon,
			polyline[i].Lat, polyline[i].Lon,
		)
	}

	return table
}

// distanceIndex returns the first index whose cumulative distance is at or
// beyond target, or the last index when target exceeds the table. Preferring
// the earliest qualifying index keeps the result deterministic when
// coincident polyline points produce duplicate table entries.
func distanceIndex(table []float64, target float64) int {
	for i, d := range table {
		if d >= target {
			return i
		}
	}
	return len(table) - 1
}
