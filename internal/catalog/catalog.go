// Package catalog builds and holds the canonical resource collection
// derived from the raw pantry dataset.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/chicagofoodaccess/pantry-terminal/internal/models"
)

// The default dataset ships with the binary so searches work out of the
// box; PANTRY_DATA or --data points at a newer export when one exists.
//
//go:embed data/pantries.json
var embeddedDataset []byte

// Catalog is the immutable, in-memory resource collection. Built once
// at startup and never mutated; filter passes produce fresh slices.
type Catalog struct {
	resources []models.Resource
	byID      map[string]int
}

// Load reads and normalizes the pantry dataset. An empty path selects
// the embedded default dataset.
func Load(path string) (*Catalog, error) {
	data := embeddedDataset
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}
	}

	var raw models.RawDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	return FromRaw(raw), nil
}

// FromRaw normalizes an already-decoded dataset.
func FromRaw(raw models.RawDataset) *Catalog {
	resources := make([]models.Resource, len(raw.FoodPantries))
	byID := make(map[string]int, len(raw.FoodPantries))
	for i, org := range raw.FoodPantries {
		resources[i] = Normalize(org, i)
		byID[resources[i].ID] = i
	}
	return &Catalog{resources: resources, byID: byID}
}

// All returns every resource in dataset order. Callers must not mutate
// the returned slice.
func (c *Catalog) All() []models.Resource {
	return c.resources
}

// ByID returns the resource with the given id, or nil when unknown.
func (c *Catalog) ByID(id string) *models.Resource {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &c.resources[i]
}

// Len returns the number of resources in the catalog.
func (c *Catalog) Len() int {
	return len(c.resources)
}
