package geocoding

import "testing"

func TestZoomForRadiusMiles(t *testing.T) {
	tests := []struct {
		radius float64
		want   int
	}{
		{0.25, 15},
		{0.5, 15},
		{1, 14},
		{2, 13},
		{5, 12},
		{10, 11},
		{25, 10},
	}

	for _, tt := range tests {
		if got := ZoomForRadiusMiles(tt.radius); got != tt.want {
			t.Errorf("ZoomForRadiusMiles(%v) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}
