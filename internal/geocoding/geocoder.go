// Package geocoding resolves free-text location queries to coordinates
// and provides the distance math for radius search.
package geocoding

import (
	"context"
	"regexp"
	"strings"
)

// zipRegex matches a bare 5-digit ZIP query.
var zipRegex = regexp.MustCompile(`^\d{5}$`)

// Provider is the external geocoding collaborator. Implementations
// return nil with no error when the query has no match.
type Provider interface {
	Geocode(ctx context.Context, query string) (*LatLng, error)
}

// Geocoder resolves a search query to a coordinate: local ZIP-centroid
// lookup first, external provider fallback for everything else.
type Geocoder struct {
	provider Provider
}

// NewGeocoder creates a geocoder. provider may be nil, in which case
// only ZIP-shaped queries can be resolved.
func NewGeocoder(provider Provider) *Geocoder {
	return &Geocoder{provider: provider}
}

// Resolve turns a free-text query into a search center, or nil when the
// location cannot be determined. Provider failures (network errors,
// non-2xx, empty result set) are indistinguishable from "no match" and
// are not retried. ZIP-shaped queries found in the local table never
// touch the provider, even when one is configured.
func (g *Geocoder) Resolve(ctx context.Context, query string) *LatLng {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}

	if zipRegex.MatchString(trimmed) {
		if center, ok := ZipCenter(trimmed); ok {
			return &center
		}
		// Unknown ZIP falls through to the provider.
	}

	if g.provider == nil {
		return nil
	}

	center, err := g.provider.Geocode(ctx, trimmed)
	if err != nil {
		return nil
	}
	return center
}
