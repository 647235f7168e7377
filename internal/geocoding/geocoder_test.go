package geocoding

import (
	"context"
	"errors"
	"testing"
)

// stubProvider records calls and returns a canned result.
type stubProvider struct {
	calls  int
	center *LatLng
	err    error
}

func (s *stubProvider) Geocode(ctx context.Context, query string) (*LatLng, error) {
	s.calls++
	return s.center, s.err
}

func TestResolve_KnownZipSkipsProvider(t *testing.T) {
	stub := &stubProvider{center: &LatLng{Lat: 1, Lng: 1}}
	g := NewGeocoder(stub)

	center := g.Resolve(context.Background(), "60637")
	if center == nil {
		t.Fatal("Resolve(60637) = nil, want local centroid")
	}
	if center.Lat != 41.781 || center.Lng != -87.604 {
		t.Errorf("Resolve(60637) = %+v, want {41.781 -87.604}", *center)
	}
	if stub.calls != 0 {
		t.Errorf("provider called %d times for a known ZIP, want 0", stub.calls)
	}
}

func TestResolve_EmptyQuery(t *testing.T) {
	stub := &stubProvider{center: &LatLng{Lat: 1, Lng: 1}}
	g := NewGeocoder(stub)

	for _, query := range []string{"", "   ", "\t\n"} {
		if center := g.Resolve(context.Background(), query); center != nil {
			t.Errorf("Resolve(%q) = %+v, want nil", query, center)
		}
	}
	if stub.calls != 0 {
		t.Errorf("provider called %d times for empty queries, want 0", stub.calls)
	}
}

func TestResolve_UnknownZipFallsThrough(t *testing.T) {
	stub := &stubProvider{center: &LatLng{Lat: 40.0, Lng: -88.0}}
	g := NewGeocoder(stub)

	center := g.Resolve(context.Background(), "61801")
	if center == nil || center.Lat != 40.0 {
		t.Errorf("Resolve(61801) = %v, want provider result", center)
	}
	if stub.calls != 1 {
		t.Errorf("provider called %d times for an unknown ZIP, want 1", stub.calls)
	}
}

func TestResolve_FreeTextUsesProvider(t *testing.T) {
	stub := &stubProvider{center: &LatLng{Lat: 41.92, Lng: -87.65}}
	g := NewGeocoder(stub)

	center := g.Resolve(context.Background(), "Lincoln Park, Chicago IL")
	if center == nil || center.Lat != 41.92 {
		t.Errorf("Resolve(free text) = %v, want provider result", center)
	}
	if stub.calls != 1 {
		t.Errorf("provider called %d times, want 1", stub.calls)
	}
}

func TestResolve_NoProvider(t *testing.T) {
	g := NewGeocoder(nil)

	if center := g.Resolve(context.Background(), "Lincoln Park, Chicago IL"); center != nil {
		t.Errorf("Resolve without provider = %+v, want nil", center)
	}
	// ZIP lookup still works without a provider.
	if center := g.Resolve(context.Background(), "60637"); center == nil {
		t.Error("Resolve(60637) without provider = nil, want local centroid")
	}
}

func TestResolve_ProviderFailureMeansNoMatch(t *testing.T) {
	tests := []struct {
		name string
		stub *stubProvider
	}{
		{"network error", &stubProvider{err: errors.New("connection refused")}},
		{"no match", &stubProvider{center: nil, err: nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeocoder(tt.stub)
			if center := g.Resolve(context.Background(), "nowhere in particular"); center != nil {
				t.Errorf("Resolve = %+v, want nil", center)
			}
			if tt.stub.calls != 1 {
				t.Errorf("provider called %d times, want 1 (no retry)", tt.stub.calls)
			}
		})
	}
}

func TestZipCenter(t *testing.T) {
	if _, ok := ZipCenter("60637"); !ok {
		t.Error("ZipCenter(60637) not found, want hit")
	}
	if _, ok := ZipCenter("99999"); ok {
		t.Error("ZipCenter(99999) found, want miss")
	}
}
