// Package addresses extracts structured components from free-text
// address strings.
package addresses

import (
	"regexp"
	"strings"

	"github.com/chicagofoodaccess/pantry-terminal/internal/models"
)

// municipalities is the closed list of Chicagoland place names the
// relaxed pattern recognizes when the source text omits the comma
// before the city. Extend the list, not the regex, for new towns.
var municipalities = []string{
	"Chicago", "Skokie", "Evanston", "Maywood", "Melrose Park", "Cicero",
	"Berwyn", "Oak Park", "River Forest", "Bellwood", "Harvey", "Dolton",
	"Calumet City", "Blue Island", "Alsip", "Summit", "Elmwood Park",
	"Burbank", "Crestwood", "Evergreen Park", "Oak Lawn", "Bridgeview",
	"Bedford Park", "Niles", "Lincolnwood", "Des Plaines", "Park Ridge",
	"Morton Grove", "Rosemont", "Forest Park", "Lansing",
	"Country Club Hills", "Markham", "Homewood", "Hillside", "Hines",
	"La Grange", "La Grange Park", "Lyons", "North Riverside", "Riverside",
	"Westchester", "Broadview", "Stone Park", "Stickney", "Robbins",
	"Posen", "Phoenix", "River Grove", "Glenview", "Wheeling", "Palatine",
	"Arlington Heights", "Rolling Meadows", "Schaumburg",
}

// strictRegex matches the canonical "Street, City, ST 60601" form.
var strictRegex = regexp.MustCompile(`(?i)^(.*?),(?:\s*)([A-Za-z\s]+?),(?:\s*)(IL)\s+(\d{5})$`)

// relaxedRegex matches "Street City IL 60601" without a comma before a
// known municipality name. Built from the municipality list at init.
var relaxedRegex = regexp.MustCompile(
	`(?i)^(.*?)(?:\s+)(` + strings.Join(municipalities, "|") + `)\s*,?\s*(IL)\s+(\d{5})$`)

// Parse extracts (street, city, state, zip) from a free-text address.
// It never fails: when neither pattern matches, the entire input is
// kept as the street component. The original text is always preserved
// in FullAddress, and coordinates are never invented here.
func Parse(text string) models.Address {
	full := strings.TrimSpace(text)
	if full == "" {
		return models.Address{}
	}

	addr := models.Address{FullAddress: full}

	match := strictRegex.FindStringSubmatch(full)
	if match == nil {
		match = relaxedRegex.FindStringSubmatch(full)
	}
	if match == nil {
		addr.Street = full
		return addr
	}

	addr.Street = strings.TrimSpace(match[1])
	addr.City = strings.TrimSpace(match[2])
	addr.State = strings.ToUpper(strings.TrimSpace(match[3]))
	addr.Zip = strings.TrimSpace(match[4])
	return addr
}
