package geocoding

// ZoomForRadiusMiles maps a search radius to a map zoom level that
// roughly fits the circle at Chicago latitude. Approximate: 1 mi fits
// zoom 14, 2 mi zoom 13, 5 mi zoom 12.
func ZoomForRadiusMiles(radiusMiles float64) int {
	switch {
	case radiusMiles <= 0.5:
		return 15
	case radiusMiles <= 1:
		return 14
	case radiusMiles <= 2:
		return 13
	case radiusMiles <= 5:
		return 12
	case radiusMiles <= 10:
		return 11
	default:
		return 10
	}
}
