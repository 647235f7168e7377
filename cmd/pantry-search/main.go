// pantry-search runs a single headless search and prints the results,
// for scripting and for feeding map front ends.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/chicagofoodaccess/pantry-terminal/internal/catalog"
	"github.com/chicagofoodaccess/pantry-terminal/internal/config"
	"github.com/chicagofoodaccess/pantry-terminal/internal/geocoding"
	"github.com/chicagofoodaccess/pantry-terminal/internal/hours"
	"github.com/chicagofoodaccess/pantry-terminal/internal/search"
)

// searchEnvelope is the JSON output shape. Zoom is a display hint for
// map consumers recentering on the search.
type searchEnvelope struct {
	Query       string           `json:"query"`
	Center      geocoding.LatLng `json:"center"`
	RadiusMiles float64          `json:"radius_miles"`
	Zoom        int              `json:"zoom"`
	Results     []search.Result  `json:"results"`
}

func main() {
	location := flag.String("location", "", "Address or ZIP to search (required unless --id is given)")
	id := flag.String("id", "", "Print a single resource by id and exit")
	radius := flag.Float64("radius", 1, "Search radius in miles (0.5, 1, 2, 5, or 10)")
	openToday := flag.Bool("open-today", false, "Only resources with hours today")
	delivery := flag.Bool("delivery", false, "Only resources offering delivery")
	filterText := flag.String("filter", "", "Narrow by name or address substring")
	asJSON := flag.Bool("json", false, "Emit JSON instead of a table")
	dataPath := flag.String("data", "", "Path to a pantry dataset JSON file (default: embedded dataset)")
	flag.Parse()

	if *location == "" && *id == "" {
		fmt.Fprintln(os.Stderr, "Error: --location is required (e.g. --location 60637)")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Load()
	if *dataPath == "" {
		*dataPath = cfg.DataPath
	}

	cat, err := catalog.Load(*dataPath)
	if err != nil {
		log.Fatalf("loading pantry dataset: %v", err)
	}

	if *id != "" {
		resource := cat.ByID(*id)
		if resource == nil {
			fmt.Fprintf(os.Stderr, "No resource with id %q.\n", *id)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resource); err != nil {
			log.Fatalf("encoding resource: %v", err)
		}
		return
	}

	var provider geocoding.Provider
	if cfg.MapboxToken != "" {
		provider = geocoding.NewMapboxProvider(cfg.MapboxToken)
	}
	geocoder := geocoding.NewGeocoder(provider)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	center := geocoder.Resolve(ctx, *location)
	if center == nil {
		fmt.Fprintf(os.Stderr, "We couldn't find %q. Try a different address or ZIP.\n", *location)
		if cfg.MapboxToken == "" {
			fmt.Fprintln(os.Stderr, "Hint: set MAPBOX_ACCESS_TOKEN to search beyond known ZIP codes.")
		}
		os.Exit(1)
	}

	criteria := search.DefaultCriteria()
	criteria.SearchCenter = center
	criteria.RadiusMiles = *radius
	criteria.OpenToday = *openToday
	criteria.SearchText = *filterText
	if *delivery {
		yes := true
		criteria.HasDelivery = &yes
	}

	results := search.Filter(cat.All(), criteria)

	if *asJSON {
		envelope := searchEnvelope{
			Query:       *location,
			Center:      *center,
			RadiusMiles: criteria.RadiusMiles,
			Zoom:        geocoding.ZoomForRadiusMiles(criteria.RadiusMiles),
			Results:     results,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(envelope); err != nil {
			log.Fatalf("encoding results: %v", err)
		}
		return
	}

	if len(results) == 0 {
		fmt.Printf("No pantries within %g mile(s) of %q.\n", criteria.RadiusMiles, *location)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Miles", "Address", "Today", "Delivery", "Phone"})

	for _, r := range results {
		today := hours.TodayLabel(r.Hours)
		if today == "" {
			today = "—"
		}
		deliveryMark := ""
		if r.HasDelivery {
			deliveryMark = "yes"
		}
		t.AppendRow(table.Row{
			r.Name,
			fmt.Sprintf("%.1f", r.DistanceMiles),
			r.Address.FullAddress,
			today,
			deliveryMark,
			r.Contact.Phone,
		})
	}
	t.Render()
}
