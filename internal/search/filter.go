// Package search turns the resource collection plus a resolved search
// center, radius, and secondary criteria into an ordered,
// distance-annotated result list.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/chicagofoodaccess/pantry-terminal/internal/geocoding"
	"github.com/chicagofoodaccess/pantry-terminal/internal/models"
)

// AllowedRadii is the fixed set of search radii, in miles.
var AllowedRadii = []float64{0.5, 1, 2, 5, 10}

// DefaultRadiusMiles is used when the criteria carry no valid radius.
const DefaultRadiusMiles = 1.0

// Criteria describes one filter pass. HasDelivery is tri-state: nil
// means don't filter, a non-nil value requires an exact match.
type Criteria struct {
	SearchCenter *geocoding.LatLng
	RadiusMiles  float64
	Type         string
	OpenToday    bool
	HasDelivery  *bool
	SearchText   string
}

// DefaultCriteria returns the initial filter state: no search center
// yet, so nothing is shown until a location search resolves.
func DefaultCriteria() Criteria {
	return Criteria{
		Type:        "all",
		RadiusMiles: DefaultRadiusMiles,
	}
}

// Result is a resource annotated with its distance from the search
// center. The distance exists only on search output, not on the
// canonical entity.
type Result struct {
	models.Resource
	DistanceMiles float64 `json:"distance_miles"`
}

// now is a test seam for the "open today" weekday check.
var now = time.Now

// Filter applies the search pipeline: nothing without a search center,
// geocoded resources only, inclusive radius cut, AND-combined secondary
// filters, then a stable sort by ascending distance.
func Filter(resources []models.Resource, criteria Criteria) []Result {
	center := criteria.SearchCenter
	if center == nil {
		return nil
	}

	radius := criteria.RadiusMiles
	if radius <= 0 {
		radius = DefaultRadiusMiles
	}

	todayKey := models.DayKeyFor(now().Weekday())
	term := strings.ToLower(criteria.SearchText)

	var results []Result
	for _, r := range resources {
		// Resources without coordinates can never appear in a
		// location-based result, whatever the other criteria say.
		if !r.Address.HasCoordinates() {
			continue
		}

		distance := geocoding.HaversineMiles(*center, geocoding.LatLng{
			Lat: r.Address.Coordinates.Lat,
			Lng: r.Address.Coordinates.Lng,
		})
		if distance > radius {
			continue
		}

		if !matchesSecondary(r, criteria, todayKey, term) {
			continue
		}

		results = append(results, Result{Resource: r, DistanceMiles: distance})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceMiles < results[j].DistanceMiles
	})

	return results
}

func matchesSecondary(r models.Resource, criteria Criteria, todayKey, term string) bool {
	if criteria.Type != "" && criteria.Type != "all" && r.Type != criteria.Type {
		return false
	}

	if strings.TrimSpace(criteria.SearchText) != "" {
		nameText := strings.ToLower(r.Name)
		addressText := strings.ToLower(joinNonEmpty(r.Address.Street, r.Address.City, r.Address.Zip))
		if !strings.Contains(nameText, term) && !strings.Contains(addressText, term) {
			return false
		}
	}

	if criteria.OpenToday {
		window, ok := r.Hours[todayKey]
		if !ok || !window.IsOpen {
			return false
		}
	}

	if criteria.HasDelivery != nil && r.HasDelivery != *criteria.HasDelivery {
		return false
	}

	return true
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
