package spatial

const geohashBase32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// GeohashEncode encodes a coordinate pair into a geohash string of the given
// precision (number of characters). Precision 6 yields cells of roughly
// 1.2 km x 0.6 km, which is what the forecast cache keys on.
func GeohashEncode(lat, lon float64, precision int) string {
	if precision <= 0 {
		precision = 6
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	hash := make([]byte, 0, precision)
	bit := 0
	ch := 0
	even := true

	for len(hash) < precision {
		if even {
			mid := (lonMin + lonMax) / 2
			if lon >= mid {
				ch = ch<<1 | 1
				lonMin = mid
			} else {
				ch <<= 1
				lonMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if lat >= mid {
				ch = ch<<1 | 1
				latMin = mid
			} else {
				ch <<= 1
				latMax = mid
			}
		}
		even = !even

		bit++
		if bit == 5 {
			hash = append(hash, geohashBase32[ch])
			bit = 0
			ch = 0
		}
	}

	return string(hash)
}
