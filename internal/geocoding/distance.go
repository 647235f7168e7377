package geocoding

import "math"

const earthRadiusMiles = 3959.0

// LatLng is a geographic point in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// HaversineMiles calculates the great-circle distance in miles between
// two points.
func HaversineMiles(a, b LatLng) float64 {
	lat1Rad := a.Lat * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLng := (b.Lng - a.Lng) * math.Pi / 180

	x := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(x), math.Sqrt(1-x))

	return earthRadiusMiles * c
}
